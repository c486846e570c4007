// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package school

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/someonegg/admitmatch"
	"github.com/someonegg/admitmatch/geo"
)

func (m *Matcher) init() {
	if m.AlumniWeight == nil {
		m.alw = DefaultAlumniWeight
	} else {
		m.alw = *m.AlumniWeight
	}

	if m.VolunteerWeight == nil {
		m.vow = DefaultVolunteerWeight
	} else {
		m.vow = *m.VolunteerWeight
	}

	if m.ProximityWeight == nil {
		m.prw = DefaultProximityWeight
	} else {
		m.prw = *m.ProximityWeight
	}
}

// Match admits the batch students. Nothing is admitted if any record is
// malformed or the batch cannot be normalized.
func (m *Matcher) Match(batch *Batch, logger *zap.Logger) (admitmatch.Admissions, Summary, error) {
	m.init()
	if logger == nil {
		logger = zap.NewNop()
	}

	var summ Summary

	facilities, seats, err := genFacilities(batch.Schools)
	if err != nil {
		return nil, summ, err
	}
	applicants, err := genApplicants(batch.Students)
	if err != nil {
		return nil, summ, err
	}

	summ.SchoolsCount = len(facilities)
	summ.StudentsCount = len(applicants)
	summ.Seats = seats
	logger.Info("batch loaded",
		zap.Int("schools", summ.SchoolsCount),
		zap.Int("students", summ.StudentsCount),
		zap.Int("seats", summ.Seats))

	scorer := admitmatch.AffinityScorer{
		PreferredA:    m.alw,
		PreferredB:    m.vow,
		Proximity:     m.prw,
		ZeroProximity: m.ZeroProximity,
	}
	admissions, err := admitmatch.GreedyMatcher(scorer, m.Workers, logger).Match(facilities, applicants)
	if err != nil {
		return nil, summ, err
	}

	admitted := make(map[int]bool, len(applicants))
	for _, ids := range admissions {
		for _, id := range ids {
			admitted[id] = true
		}
	}
	summ.Admitted = len(admitted)
	summ.SeatsRemaining = seats - summ.Admitted
	summ.Unplaced = []int{}
	for i := range applicants {
		if id := applicants[i].ID; !admitted[id] {
			summ.Unplaced = append(summ.Unplaced, id)
		}
	}
	sort.Ints(summ.Unplaced)

	if len(summ.Unplaced) > 0 {
		logger.Info("students left unplaced", zap.Ints("ids", summ.Unplaced))
	}

	return admissions, summ, nil
}

func genFacilities(schools []*School) ([]admitmatch.Facility, int, error) {
	var seats int

	facilities := make([]admitmatch.Facility, len(schools))

	for i, school := range schools {
		key := fmt.Sprintf("#%d", i)
		if school == nil || school.Name == nil {
			return nil, 0, malformed("school", key, "missing name")
		}
		key = *school.Name
		location, err := point(school.Location)
		if err != nil {
			return nil, 0, malformed("school", key, "location: "+err.Error())
		}
		if school.MaxAllocation == nil {
			return nil, 0, malformed("school", key, "missing maxAllocation")
		}

		facilities[i].Name = *school.Name
		facilities[i].Location = location
		facilities[i].Capacity = *school.MaxAllocation
		seats += facilities[i].Capacity
	}

	return facilities, seats, nil
}

func genApplicants(students []*Student) ([]admitmatch.Applicant, error) {
	applicants := make([]admitmatch.Applicant, len(students))

	for i, student := range students {
		if student == nil || student.ID == nil {
			return nil, malformed("student", fmt.Sprintf("#%d", i), "missing id")
		}
		key := fmt.Sprint(*student.ID)
		home, err := point(student.HomeLocation)
		if err != nil {
			return nil, malformed("student", key, "homeLocation: "+err.Error())
		}

		applicants[i].ID = *student.ID
		applicants[i].Home = home
		applicants[i].PreferredA = affinity(student.Alumni)
		applicants[i].PreferredB = affinity(student.Volunteer)
	}

	return applicants, nil
}

func point(coords []float64) (geo.Point, error) {
	switch len(coords) {
	case 0:
		return geo.Point{}, errors.New("missing")
	case 2:
		return geo.Point{X: coords[0], Y: coords[1]}, nil
	default:
		return geo.Point{}, fmt.Errorf("expected 2 coordinates, got %d", len(coords))
	}
}

// An empty name counts as unset.
func affinity(name *string) admitmatch.Affinity {
	if name == nil || *name == "" {
		return admitmatch.Affinity{}
	}
	return admitmatch.Prefer(*name)
}

func malformed(record, key, reason string) error {
	return &admitmatch.InputError{Record: record, Key: key, Reason: reason}
}
