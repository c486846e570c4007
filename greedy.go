// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admitmatch

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/someonegg/admitmatch/geo"
)

type greedyMatcher struct {
	scorer  Scorer
	workers int
	logger  *zap.Logger
}

// GreedyMatcher returns a Matcher that scores every (applicant, facility)
// pair, orders the pairs by score then applicant id, both descending, and
// commits them in a single pass. Scoring is spread over workers goroutines
// when workers > 1. A nil logger discards the trace.
func GreedyMatcher(scorer Scorer, workers int, logger *zap.Logger) Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return greedyMatcher{scorer, workers, logger}
}

type greedyCandidate struct {
	facility  *Facility
	applicant *Applicant

	score float64
}

// Normalize writes MaxDist of every facility.
func Normalize(facilities []Facility, applicants []Applicant) {
	homes := make([]geo.Point, len(applicants))
	for i := range applicants {
		homes[i] = applicants[i].Home
	}
	for i := range facilities {
		facilities[i].MaxDist = geo.MaxDistance(facilities[i].Location, homes)
	}
}

// Validate checks the records the matcher relies on. Name and id
// uniqueness is up to the caller.
func Validate(facilities []Facility, applicants []Applicant) error {
	known := make(map[string]bool, len(facilities))
	for i := range facilities {
		f := &facilities[i]
		if f.Name == "" {
			return &InputError{Record: "facility", Key: fmt.Sprintf("#%d", i), Reason: "missing name"}
		}
		if f.Capacity < 1 {
			return &InputError{Record: "facility", Key: f.Name, Reason: fmt.Sprintf("capacity %d is not positive", f.Capacity)}
		}
		known[f.Name] = true
	}

	for i := range applicants {
		a := &applicants[i]
		for _, aff := range []Affinity{a.PreferredA, a.PreferredB} {
			if name, ok := aff.Facility(); ok && !known[name] {
				return &InputError{Record: "applicant", Key: fmt.Sprint(a.ID), Reason: fmt.Sprintf("unknown facility %q", name)}
			}
		}
	}

	return nil
}

func (m greedyMatcher) Match(facilities []Facility, applicants []Applicant) (Admissions, error) {
	if err := Validate(facilities, applicants); err != nil {
		return nil, err
	}

	Normalize(facilities, applicants)

	cl, err := m.candidates(facilities, applicants)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(cl, func(i, j int) bool {
		if cl[i].score != cl[j].score {
			return cl[i].score > cl[j].score
		}
		return cl[i].applicant.ID > cl[j].applicant.ID
	})

	admissions := make(Admissions, len(facilities))
	for i := range facilities {
		admissions[facilities[i].Name] = []int{}
	}

	committed := make(map[int]bool, len(applicants))
	for _, c := range cl {
		if len(committed) == len(applicants) {
			break
		}
		if committed[c.applicant.ID] {
			continue
		}
		name := c.facility.Name
		if len(admissions[name]) >= c.facility.Capacity {
			continue
		}
		admissions[name] = append(admissions[name], c.applicant.ID)
		committed[c.applicant.ID] = true

		m.logger.Debug("commit",
			zap.Int("applicant", c.applicant.ID),
			zap.String("facility", name),
			zap.Float64("score", c.score),
			zap.Int("admitted", len(admissions[name])),
			zap.Int("capacity", c.facility.Capacity))
	}

	m.logger.Debug("matched",
		zap.Int("facilities", len(facilities)),
		zap.Int("applicants", len(applicants)),
		zap.Int("committed", len(committed)))

	return admissions, nil
}

// candidates scores every pair, facility major, so the stable sort keeps
// facility input order among otherwise equal pairs.
func (m greedyMatcher) candidates(facilities []Facility, applicants []Applicant) ([]greedyCandidate, error) {
	cl := make([]greedyCandidate, len(facilities)*len(applicants))

	row := func(i int) error {
		base := i * len(applicants)
		for j := range applicants {
			score, err := m.scorer.Score(&applicants[j], &facilities[i])
			if err != nil {
				return err
			}
			cl[base+j] = greedyCandidate{
				facility:  &facilities[i],
				applicant: &applicants[j],
				score:     score,
			}
		}
		return nil
	}

	if m.workers <= 1 {
		for i := range facilities {
			if err := row(i); err != nil {
				return nil, err
			}
		}
		return cl, nil
	}

	var g errgroup.Group
	g.SetLimit(m.workers)
	for i := range facilities {
		i := i
		g.Go(func() error { return row(i) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cl, nil
}
