// math/heading.go
// Copyright(c) 2026 deconflict contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

///////////////////////////////////////////////////////////////////////////
// headings and directions

// VectorHeading returns the true heading, in degrees, that corresponds to
// the direction of the given vector. A zero vector gives heading 0.
func VectorHeading(v [2]float32) float32 {
	// Note that atan2() normally measures w.r.t. the +x axis and angles
	// are positive for counter-clockwise. We want to measure w.r.t. +y and
	// to have positive angles be clockwise. Happily, swapping the order of
	// values passed to atan2()--passing (x,y)--gives what we want.
	return NormalizeHeading(Degrees(Atan2(v[0], v[1])))
}

// HeadingVector returns the unit vector pointing along the given true
// heading, in local tangent-plane coordinates with +y north.
func HeadingVector(heading float32) [2]float32 {
	return [2]float32{Sin(Radians(heading)), Cos(Radians(heading))}
}

// HeadingDifference returns the minimum difference between two
// headings. (i.e., the result is always in the range [0,180].)
func HeadingDifference(a float32, b float32) float32 {
	var d float32
	if a > b {
		d = a - b
	} else {
		d = b - a
	}
	if d > 180 {
		d = 360 - d
	}
	return d
}

// HeadingSignedTurn returns the signed turn, in degrees, that takes cur to
// target; the result is positive for right turns and negative for left
// turns. Figure out which way is closest: first find the angle to rotate
// the target heading by so that it's aligned with 180 degrees. This lets
// us not worry about the complexities of the wrap around at 0/360.
func HeadingSignedTurn(cur, target float32) float32 {
	rot := NormalizeHeading(180 - target)
	return 180 - NormalizeHeading(cur+rot) // w.r.t. 180 target
}

// NormalizeHeading reduces h to [0,360).
func NormalizeHeading(h float32) float32 {
	if h < 0 {
		return NormalizeHeading(h + 360)
	}
	return Mod(h, 360)
}

func OppositeHeading(h float32) float32 {
	return NormalizeHeading(h + 180)
}
