// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package school uses admitmatch to admit students to schools.
package school

type School struct {
	Name          *string   `json:"name" yaml:"name"`
	Location      []float64 `json:"location" yaml:"location"` // [x, y]
	MaxAllocation *int      `json:"maxAllocation" yaml:"maxAllocation"`
}

type Student struct {
	ID           *int      `json:"id" yaml:"id"`
	HomeLocation []float64 `json:"homeLocation" yaml:"homeLocation"` // [x, y]
	Alumni       *string   `json:"alumni,omitempty" yaml:"alumni,omitempty"`
	Volunteer    *string   `json:"volunteer,omitempty" yaml:"volunteer,omitempty"`
}

type Batch struct {
	Schools  []*School  `json:"schools" yaml:"schools"`
	Students []*Student `json:"students" yaml:"students"`
}

const (
	DefaultAlumniWeight    = 0.3
	DefaultVolunteerWeight = 0.2
	DefaultProximityWeight = 0.5
)

type Matcher struct {
	AlumniWeight    *float64 `json:"alw"`
	VolunteerWeight *float64 `json:"vow"`
	ProximityWeight *float64 `json:"prw"`

	// When set, a school sharing its location with every student scores
	// proximity as 0 instead of failing the run.
	ZeroProximity bool `json:"zp"`

	// Scoring goroutines, <= 1 scores inline.
	Workers int `json:"workers"`

	alw float64
	vow float64
	prw float64
}

type Summary struct {
	SchoolsCount   int   `json:"schools"`
	StudentsCount  int   `json:"students"`
	Seats          int   `json:"seats"`
	Admitted       int   `json:"admitted"`
	SeatsRemaining int   `json:"seats_remaining"`
	Unplaced       []int `json:"unplaced"`
}
