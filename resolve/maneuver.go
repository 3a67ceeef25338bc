// resolve/maneuver.go
// Copyright(c) 2026 deconflict contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package resolve selects avoidance maneuvers for individual aircraft and
// assembles multi-aircraft resolution plans from a batch of conflict
// alerts.
package resolve

import (
	"fmt"

	"github.com/avhart/deconflict/aviation"
	"github.com/avhart/deconflict/math"
)

// ManeuverType identifies the kind of avoidance maneuver; fields of
// Maneuver beyond Type are only meaningful for the types that use them.
type ManeuverType int

const (
	ManeuverNone ManeuverType = iota
	ManeuverTurnLeft
	ManeuverTurnRight
	ManeuverClimbTo
	ManeuverDescendTo
	ManeuverSpeedUp
	ManeuverSlowDown
	ManeuverGoAround
	ManeuverHoldingPattern
)

func (m ManeuverType) String() string {
	switch m {
	case ManeuverNone:
		return "none"
	case ManeuverTurnLeft:
		return "turn left"
	case ManeuverTurnRight:
		return "turn right"
	case ManeuverClimbTo:
		return "climb"
	case ManeuverDescendTo:
		return "descend"
	case ManeuverSpeedUp:
		return "speed up"
	case ManeuverSlowDown:
		return "slow down"
	case ManeuverGoAround:
		return "go around"
	case ManeuverHoldingPattern:
		return "holding pattern"
	default:
		return "unhandled maneuver type"
	}
}

// Maneuver is a single avoidance instruction for one aircraft.
type Maneuver struct {
	Type ManeuverType

	NewHeading  float32 // degrees true; turns only
	NewAltitude float32 // feet; climbs, descents, go-arounds only
	NewSpeed    float32 // knots; speed changes only

	Duration float32 // seconds to complete the maneuver
	Workload float32 // pilot workload, 0-100

	Description string
}

// Selector enumerates and scores candidate avoidance maneuvers for an
// ownship/intruder pair within the ownship's performance limits.
type Selector struct {
	Limits aviation.PerformanceLimits
}

// Candidate enumeration constants.
const (
	altitudeStep  = 500  // feet up or down
	altitudeFloor = 500  // feet; no altitude maneuvers at or below
	speedStep     = 15   // knots
	speedFloor    = 5    // knots; never slow below
	goAroundClimb = 1000 // feet
	goAroundBelow = 2000 // feet; go-around only offered below
)

// score ranks a candidate maneuver. The +20 term stands in for a
// separation-improvement estimate that isn't modeled yet; until it is,
// ranking is purely workload-driven.
// TODO: simulate the candidate forward and rescore from the resulting CPA.
func score(m Maneuver) float32 {
	return 50 - 0.2*m.Workload + 20
}

// Select enumerates the avoidance maneuvers available to the ownship
// against the given intruder and returns the highest-scoring one. Ties go
// to the earliest-enumerated candidate (turns, then altitude, then speed,
// then go-around).
func (s Selector) Select(ownship, intruder aviation.AircraftState, isDeparture, isArrival bool) Maneuver {
	best := Maneuver{Type: ManeuverNone}
	for _, m := range s.candidates(ownship, intruder, isDeparture, isArrival) {
		if best.Type == ManeuverNone || score(m) > score(best) {
			best = m
		}
	}
	return best
}

// candidates enumerates the maneuvers available to the ownship, in
// scoring tie-break order: turns, altitude changes, speed changes,
// go-around.
func (s Selector) candidates(ownship, intruder aviation.AircraftState, isDeparture, isArrival bool) []Maneuver {
	var ms []Maneuver
	consider := func(m Maneuver) { ms = append(ms, m) }

	// Turns: pick the side that takes the ownship away from the bearing
	// to the intruder. Note that this is a directional convention only;
	// nothing here verifies that the chosen side actually increases
	// separation.
	bearing := math.VectorHeading(math.Sub2f(intruder.Position, ownship.Position))
	turnLeft := math.HeadingSignedTurn(ownship.Heading, bearing) > 0

	for _, angle := range []float32{15, 30, 45} {
		m := Maneuver{
			Duration: angle / s.Limits.MaxTurnRate,
			Workload: 40 + 0.5*angle,
		}
		if turnLeft {
			m.Type = ManeuverTurnLeft
			m.NewHeading = math.NormalizeHeading(ownship.Heading - angle)
		} else {
			m.Type = ManeuverTurnRight
			m.NewHeading = math.NormalizeHeading(ownship.Heading + angle)
		}
		m.Description = fmt.Sprintf("%s %.0f degrees to heading %03.0f", m.Type, angle, m.NewHeading)
		consider(m)
	}

	// Altitude changes, unless too low for them to be safe.
	if ownship.Altitude > altitudeFloor {
		consider(Maneuver{
			Type:        ManeuverClimbTo,
			NewAltitude: ownship.Altitude + altitudeStep,
			Duration:    altitudeStep / (s.Limits.MaxClimbRate / 60),
			Workload:    35,
			Description: fmt.Sprintf("climb %d feet", altitudeStep),
		})
		consider(Maneuver{
			Type:        ManeuverDescendTo,
			NewAltitude: ownship.Altitude - altitudeStep,
			Duration:    altitudeStep / (s.Limits.MaxDescentRate / 60),
			Workload:    35,
			Description: fmt.Sprintf("descend %d feet", altitudeStep),
		})
	}

	// Speed changes.
	consider(Maneuver{
		Type:        ManeuverSpeedUp,
		NewSpeed:    ownship.Groundspeed + speedStep,
		Duration:    speedStep / s.Limits.MaxSpeedChange,
		Workload:    30,
		Description: fmt.Sprintf("increase speed %d knots", speedStep),
	})
	if ownship.Groundspeed > speedFloor {
		consider(Maneuver{
			Type:        ManeuverSlowDown,
			NewSpeed:    math.Max(ownship.Groundspeed-speedStep, speedFloor),
			Duration:    speedStep / s.Limits.MaxSpeedChange,
			Workload:    30,
			Description: fmt.Sprintf("reduce speed %d knots", speedStep),
		})
	}

	// Go-around for arrivals still low enough for one to make sense.
	if isArrival && ownship.Altitude < goAroundBelow {
		consider(Maneuver{
			Type:        ManeuverGoAround,
			NewAltitude: ownship.Altitude + goAroundClimb,
			Duration:    60,
			Workload:    80,
			Description: "go around",
		})
	}

	return ms
}
