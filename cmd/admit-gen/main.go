package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/someonegg/admitmatch/school"
)

func main() {
	app := &cli.App{
		Name:  "admit-gen",
		Usage: "Utility for admitting students to schools",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "verbose/debug output",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "json format for logging",
			},
		},
		Commands: []*cli.Command{
			allocateCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var allocateCmd = &cli.Command{
	Name:    "allocate",
	Usage:   "Admit the students of a batch to its schools",
	Aliases: []string{"a"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Required: true,
			Usage:    "specify the input batch (.json, .yaml or .yml)",
		},
		&cli.StringFlag{
			Name:  "output",
			Value: "output.json",
			Usage: "specify the output admissions json",
		},
		&cli.IntFlag{
			Name:  "workers",
			Value: 1,
			Usage: "specify the scoring goroutines",
		},
		&cli.BoolFlag{
			Name:  "zero-proximity",
			Usage: "score proximity as 0 for a school sharing its location with every student",
		},
		&cli.Float64Flag{
			Name:  "alumni",
			Value: school.DefaultAlumniWeight,
			Usage: "specify the alumni weight",
		},
		&cli.Float64Flag{
			Name:  "volunteer",
			Value: school.DefaultVolunteerWeight,
			Usage: "specify the volunteer weight",
		},
		&cli.Float64Flag{
			Name:  "proximity",
			Value: school.DefaultProximityWeight,
			Usage: "specify the proximity weight",
		},
	},
	Action: func(ctx *cli.Context) error {
		var (
			inputFile  = ctx.String("input")
			outputFile = ctx.String("output")
			workers    = ctx.Int("workers")
			alw        = ctx.Float64("alumni")
			vow        = ctx.Float64("volunteer")
			prw        = ctx.Float64("proximity")
		)
		if workers < 1 {
			return fmt.Errorf("invalid workers %d", workers)
		}
		if alw < 0 || vow < 0 || prw < 0 {
			return fmt.Errorf("invalid weights %v/%v/%v", alw, vow, prw)
		}

		logger, err := newLogger(ctx.Bool("json"), ctx.Bool("debug"))
		if err != nil {
			return fmt.Errorf("create logger failed: %w", err)
		}
		defer logger.Sync()

		matcher := &school.Matcher{
			AlumniWeight:    &alw,
			VolunteerWeight: &vow,
			ProximityWeight: &prw,
			ZeroProximity:   ctx.Bool("zero-proximity"),
			Workers:         workers,
		}
		return doAllocate(ctx.Context, logger, matcher, inputFile, outputFile)
	},
}
