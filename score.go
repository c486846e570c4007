// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admitmatch

import (
	"math"

	"github.com/someonegg/admitmatch/geo"
)

const (
	DefaultPreferredAWeight = 0.3
	DefaultPreferredBWeight = 0.2
	DefaultProximityWeight  = 0.5
)

// AffinityScorer rewards preference matches and proximity:
//
//	PreferredA, if the applicant's first affinity names the facility
//	PreferredB, if the applicant's second affinity names the facility
//	Proximity * (1 - distance / facility.MaxDist)
type AffinityScorer struct {
	PreferredA float64
	PreferredB float64
	Proximity  float64

	// When set, a facility with zero MaxDist contributes no proximity
	// term instead of failing with ErrUndefinedNormalization.
	ZeroProximity bool
}

func DefaultScorer() AffinityScorer {
	return AffinityScorer{
		PreferredA: DefaultPreferredAWeight,
		PreferredB: DefaultPreferredBWeight,
		Proximity:  DefaultProximityWeight,
	}
}

func (s AffinityScorer) Score(applicant *Applicant, facility *Facility) (float64, error) {
	score := 0.0
	if applicant.PreferredA.Is(facility.Name) {
		score += s.PreferredA
	}
	if applicant.PreferredB.Is(facility.Name) {
		score += s.PreferredB
	}

	// Overflowing coordinates make MaxDist +Inf and every proximity NaN.
	if math.IsInf(facility.MaxDist, 0) || math.IsNaN(facility.MaxDist) {
		return 0, &NormalizationError{Facility: facility.Name, MaxDist: facility.MaxDist}
	}
	if facility.MaxDist == 0 {
		if s.ZeroProximity {
			return score, nil
		}
		return 0, &NormalizationError{Facility: facility.Name}
	}

	score += s.Proximity * (1 - geo.Distance(applicant.Home, facility.Location)/facility.MaxDist)
	if math.IsInf(score, 0) || math.IsNaN(score) {
		return 0, &NormalizationError{Facility: facility.Name, MaxDist: facility.MaxDist}
	}
	return score, nil
}
