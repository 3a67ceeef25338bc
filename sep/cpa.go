// sep/cpa.go
// Copyright(c) 2026 deconflict contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sep

import (
	"github.com/avhart/deconflict/aviation"
	"github.com/avhart/deconflict/math"
)

// relVelocityEpsilon guards the closed-form CPA solve against division by
// a near-zero squared relative speed.
const relVelocityEpsilon = 1e-6

// ClosestPointOfApproach returns the minimum separation, in feet, that
// the two aircraft will reach under constant-velocity extrapolation, and
// the time in seconds at which it occurs. If the relative velocity is
// (near-)zero the separation never changes, so the present separation at
// time zero is returned. A closest approach in the past is clamped to
// time zero for the same reason: the pair is already diverging and the
// present separation is the minimum from here on.
func ClosestPointOfApproach(a, b aviation.AircraftState) (distance, time float32) {
	dp := math.Sub2f(b.Position, a.Position)
	dv := math.Sub2f(b.Velocity, a.Velocity)

	dv2 := math.Dot(dv, dv)
	if dv2 < relVelocityEpsilon {
		return math.Length2f(dp), 0
	}

	// Minimize |dp + t*dv|^2: the derivative is linear in t, giving the
	// single critical point below.
	t := -math.Dot(dp, dv) / dv2
	t = math.Max(t, 0)

	return math.Length2f(math.Add2f(dp, math.Scale2f(dv, t))), t
}

// PredictCollision reports whether the two aircraft are predicted to lose
// lateral separation within the given time horizon, in seconds, and if so
// when. Closest approaches beyond the horizon are not actionable and are
// never reported, regardless of how close they come.
func (s Standards) PredictCollision(a, b aviation.AircraftState, horizon float32) (bool, float32) {
	dist, t := ClosestPointOfApproach(a, b)
	if t > horizon {
		return false, 0
	}
	return dist < s.LateralMinimum, t
}
