// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo provides points on a 2D cartesian plane and the distance
// metric the matcher normalizes against.
package geo

import "math"

type Point struct {
	X float64
	Y float64
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// MaxDistance returns the largest distance from "from" to any point of to,
// or 0 when to is empty.
func MaxDistance(from Point, to []Point) float64 {
	farthest := 0.0
	for _, p := range to {
		if d := Distance(from, p); d > farthest {
			farthest = d
		}
	}
	return farthest
}
