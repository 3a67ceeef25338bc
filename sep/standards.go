// sep/standards.go
// Copyright(c) 2026 deconflict contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package sep implements the separation standards: pairwise conflict
// classification between aircraft and closest-point-of-approach
// prediction, parameterized by configurable thresholds.
package sep

import (
	"github.com/avhart/deconflict/aviation"
	"github.com/avhart/deconflict/math"
	"github.com/avhart/deconflict/util"
)

// Standards carries the separation thresholds, all in feet. The
// low-altitude variants apply near airports, where tighter geometry is
// tolerated operationally.
type Standards struct {
	LateralMinimum      float32
	VerticalMinimum     float32
	LongitudinalMinimum float32
	CrossingMinimum     float32

	LowAltitudeLateral  float32
	LowAltitudeVertical float32
}

// DefaultStandards returns the nominal enroute thresholds.
func DefaultStandards() Standards {
	return Standards{
		LateralMinimum:      500,
		VerticalMinimum:     1000,
		LongitudinalMinimum: 1000,
		CrossingMinimum:     500,
		LowAltitudeLateral:  300,
		LowAltitudeVertical: 500,
	}
}

// Check validates the thresholds, reporting problems via the given
// ErrorLogger: all must be strictly positive and the low-altitude
// variants must not exceed their nominal counterparts.
func (s Standards) Check(e *util.ErrorLogger) {
	e.Push("separation standards")
	defer e.Pop()

	for _, th := range []struct {
		name string
		v    float32
	}{
		{"lateral minimum", s.LateralMinimum},
		{"vertical minimum", s.VerticalMinimum},
		{"longitudinal minimum", s.LongitudinalMinimum},
		{"crossing minimum", s.CrossingMinimum},
		{"low-altitude lateral", s.LowAltitudeLateral},
		{"low-altitude vertical", s.LowAltitudeVertical},
	} {
		if th.v <= 0 {
			e.ErrorString("%s %v must be positive", th.name, th.v)
		}
	}
	if s.LowAltitudeLateral > s.LateralMinimum {
		e.ErrorString("low-altitude lateral %v exceeds lateral minimum %v",
			s.LowAltitudeLateral, s.LateralMinimum)
	}
	if s.LowAltitudeVertical > s.VerticalMinimum {
		e.ErrorString("low-altitude vertical %v exceeds vertical minimum %v",
			s.LowAltitudeVertical, s.VerticalMinimum)
	}
}

// lateral and vertical return the thresholds in effect for the given
// altitude regime.
func (s Standards) lateral(lowAltitude bool) float32 {
	return util.Select(lowAltitude, s.LowAltitudeLateral, s.LateralMinimum)
}

func (s Standards) vertical(lowAltitude bool) float32 {
	return util.Select(lowAltitude, s.LowAltitudeVertical, s.VerticalMinimum)
}

// ConflictType categorizes the geometry of a pair of aircraft that are in
// proximity. The classifier returns the first applicable category under a
// fixed priority order; categories are never combined.
type ConflictType int

const (
	ConflictNone ConflictType = iota
	ConflictHeadOn
	ConflictParallel
	ConflictCrossing
	ConflictSameAltitude
	ConflictVertical
	ConflictConverging
	ConflictOvertaking
)

func (c ConflictType) String() string {
	switch c {
	case ConflictNone:
		return "none"
	case ConflictHeadOn:
		return "head-on"
	case ConflictParallel:
		return "parallel"
	case ConflictCrossing:
		return "crossing"
	case ConflictSameAltitude:
		return "same altitude"
	case ConflictVertical:
		return "vertical"
	case ConflictConverging:
		return "converging"
	case ConflictOvertaking:
		return "overtaking"
	default:
		return "unhandled conflict type"
	}
}

// Angular windows for the heading-geometry categories, in degrees.
const (
	headOnWindow   = 30 // of the reciprocal heading
	parallelWindow = 15 // of the same heading
	crossingWindow = 30 // of perpendicular
)

// convergingRange is the horizontal distance, in feet, inside of which a
// closing pair with no other matching geometry is reported as converging.
const convergingRange = 2000

// Classify categorizes the conflict geometry between the two aircraft at
// their current states. The heading-based categories are checked first,
// then altitude proximity, then closure; the first match wins.
func (s Standards) Classify(a, b aviation.AircraftState, lowAltitude bool) ConflictType {
	horiz := math.Distance2f(a.Position, b.Position)
	vert := math.Abs(a.Altitude - b.Altitude)
	hdgDiff := math.HeadingDifference(a.Heading, b.Heading)

	switch {
	case hdgDiff >= 180-headOnWindow && horiz < s.CrossingMinimum:
		return ConflictHeadOn

	case hdgDiff < parallelWindow && horiz < s.lateral(lowAltitude):
		return ConflictParallel

	case math.Abs(hdgDiff-90) < crossingWindow && horiz < s.CrossingMinimum:
		return ConflictCrossing

	case vert < s.vertical(lowAltitude) && horiz < s.lateral(lowAltitude):
		return ConflictSameAltitude
	}

	// Closing but in none of the geometric categories above: report the
	// pair as converging if they're close.
	closingRate := math.Dot(math.Normalize2f(math.Sub2f(b.Position, a.Position)),
		math.Sub2f(b.Velocity, a.Velocity))
	if closingRate < 0 && horiz < convergingRange && horiz < s.lateral(lowAltitude) {
		return ConflictConverging
	}

	return ConflictNone
}
