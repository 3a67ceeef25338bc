// aviation/aviation.go
// Copyright(c) 2026 deconflict contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package aviation holds the aircraft state and performance types shared
// by the separation, conflict prediction, and resolution packages.
package aviation

import (
	"fmt"

	"github.com/avhart/deconflict/geom"
	"github.com/avhart/deconflict/math"
	"github.com/avhart/deconflict/util"
)

// Callsign uniquely identifies a tracked aircraft.
type Callsign string

// AircraftState is a snapshot of one aircraft as reported by the host's
// state-tracking layer. Updates replace the whole record; there is no
// partial merge.
type AircraftState struct {
	Callsign Callsign

	// Position in feet on a local flat tangent-plane projection, +y north.
	Position [2]float32
	// Velocity over the ground in feet per second.
	Velocity [2]float32

	Altitude    float32 // feet
	Heading     float32 // degrees true, [0,360)
	Groundspeed float32 // knots

	Wingspan float32 // feet
	Length   float32 // feet
}

// Extrapolate returns the aircraft's position t seconds ahead under the
// constant-velocity assumption.
func (ac AircraftState) Extrapolate(t float32) [2]float32 {
	return math.Add2f(ac.Position, math.Scale2f(ac.Velocity, t))
}

// ProtectedRadius returns the radius, in feet, of the circle used as the
// aircraft's protected-zone proxy: its largest physical dimension.
func (ac AircraftState) ProtectedRadius() float32 {
	return math.Max(ac.Wingspan, ac.Length)
}

// ProtectedZone returns the circle centered at the aircraft's current
// position used for overlap tests against infrastructure footprints.
func (ac AircraftState) ProtectedZone() geom.Circle {
	return geom.Circle{Center: ac.Position, Radius: ac.ProtectedRadius()}
}

func (ac AircraftState) String() string {
	return fmt.Sprintf("%s: pos (%.0f, %.0f) alt %.0f hdg %03.0f gs %.0f",
		ac.Callsign, ac.Position[0], ac.Position[1], ac.Altitude, ac.Heading, ac.Groundspeed)
}

// PerformanceLimits bounds the maneuvers the selector will consider for
// an aircraft.
type PerformanceLimits struct {
	MaxTurnRate    float32 // degrees per second
	MaxClimbRate   float32 // feet per minute
	MaxDescentRate float32 // feet per minute
	MaxSpeedChange float32 // knots per second
}

// DefaultPerformanceLimits returns limits representative of a light
// transport aircraft.
func DefaultPerformanceLimits() PerformanceLimits {
	return PerformanceLimits{
		MaxTurnRate:    3,
		MaxClimbRate:   1500,
		MaxDescentRate: 1000,
		MaxSpeedChange: 1.5,
	}
}

// Check validates the limits, reporting problems via the given
// ErrorLogger.
func (p PerformanceLimits) Check(e *util.ErrorLogger) {
	e.Push("performance limits")
	defer e.Pop()

	if p.MaxTurnRate <= 0 {
		e.ErrorString("max turn rate %v must be positive", p.MaxTurnRate)
	}
	if p.MaxClimbRate <= 0 {
		e.ErrorString("max climb rate %v must be positive", p.MaxClimbRate)
	}
	if p.MaxDescentRate <= 0 {
		e.ErrorString("max descent rate %v must be positive", p.MaxDescentRate)
	}
	if p.MaxSpeedChange <= 0 {
		e.ErrorString("max speed change %v must be positive", p.MaxSpeedChange)
	}
}
