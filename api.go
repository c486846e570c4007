// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package admitmatch matches applicants to capacity-limited facilities
// by committing the best scored pairs first.
package admitmatch

import (
	"errors"
	"fmt"

	"github.com/someonegg/admitmatch/geo"
)

type Matcher interface {
	Match(facilities []Facility, applicants []Applicant) (Admissions, error)
}

type Facility struct {
	Name     string
	Location geo.Point
	Capacity int

	// MaxDist is the distance to the farthest applicant of the batch,
	// written once by Normalize.
	MaxDist float64
}

type Applicant struct {
	ID         int
	Home       geo.Point
	PreferredA Affinity
	PreferredB Affinity
}

// Affinity optionally names one facility. The zero value is unset.
type Affinity struct {
	facility string
	set      bool
}

func Prefer(facility string) Affinity {
	return Affinity{facility: facility, set: true}
}

func (a Affinity) Facility() (string, bool) {
	return a.facility, a.set
}

// Is reports whether the affinity is set and names facility.
func (a Affinity) Is(facility string) bool {
	return a.set && a.facility == facility
}

func (a Affinity) String() string {
	if !a.set {
		return "<unset>"
	}
	return a.facility
}

// Admissions maps facility name to the applicant ids committed there,
// in commit order.
type Admissions map[string][]int

type Scorer interface {
	Score(applicant *Applicant, facility *Facility) (float64, error)
}

var (
	ErrMalformedInput         = errors.New("malformed input")
	ErrUndefinedNormalization = errors.New("undefined normalization")
)

// InputError reports an invalid facility or applicant record.
type InputError struct {
	Record string // record kind, e.g. "facility"
	Key    string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("malformed input: %s %s: %s", e.Record, e.Key, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrMalformedInput }

// NormalizationError reports a facility whose max distance is zero or not
// finite.
type NormalizationError struct {
	Facility string
	MaxDist  float64
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("undefined normalization: facility %s has max distance %v", e.Facility, e.MaxDist)
}

func (e *NormalizationError) Unwrap() error { return ErrUndefinedNormalization }
