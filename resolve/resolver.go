// resolve/resolver.go
// Copyright(c) 2026 deconflict contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package resolve

import (
	"log/slog"

	"github.com/avhart/deconflict/aviation"
	"github.com/avhart/deconflict/conflict"
	"github.com/avhart/deconflict/log"
)

// planEffectiveness is a fixed placeholder until plans are rescored
// against the post-maneuver geometry.
const planEffectiveness = 0.7

const resolutionStrategy = "greedy earliest-conflict-first"

// Plan assigns at most one avoidance maneuver per aircraft across a whole
// conflict set.
type Plan struct {
	// Maneuvers maps each aircraft to its assigned maneuver; no aircraft
	// ever has more than one.
	Maneuvers map[aviation.Callsign]Maneuver

	// Effectiveness is a coarse quality estimate of the plan, 0-1.
	Effectiveness float32

	// ResolvesAll reports whether both aircraft of every alert received a
	// maneuver. It is a coverage heuristic, not a geometric verification
	// that the maneuvers actually resolve the conflicts.
	ResolvesAll bool

	Strategy string
}

// Resolver assembles resolution plans from batches of conflict alerts.
type Resolver struct {
	Selector Selector

	// Phase, if non-nil, reports whether an aircraft is currently a
	// departure or an arrival; the flags feed maneuver selection (e.g.
	// go-arounds are only offered to arrivals). With a nil Phase every
	// aircraft is treated as neither.
	Phase func(aviation.Callsign) (isDeparture, isArrival bool)

	Lg *log.Logger
}

// Resolve walks the alerts in the order given (expected pre-sorted by
// urgency) and greedily assigns a maneuver to each aircraft that doesn't
// have one yet; the earliest alert touching an aircraft wins. Alerts
// referencing a callsign missing from states are skipped.
func (r *Resolver) Resolve(alerts []conflict.Alert, states map[aviation.Callsign]aviation.AircraftState) Plan {
	plan := Plan{
		Maneuvers:     make(map[aviation.Callsign]Maneuver),
		Effectiveness: planEffectiveness,
		Strategy:      resolutionStrategy,
	}

	for _, alert := range alerts {
		cs0, cs1 := alert.Callsigns[0], alert.Callsigns[1]
		ac0, ok0 := states[cs0]
		ac1, ok1 := states[cs1]
		if !ok0 || !ok1 {
			r.Lg.Warn("alert references untracked aircraft",
				slog.String("aircraft1", string(cs0)), slog.String("aircraft2", string(cs1)))
			continue
		}

		r.assign(&plan, cs0, ac0, ac1)
		r.assign(&plan, cs1, ac1, ac0)
	}

	plan.ResolvesAll = len(plan.Maneuvers) == 2*len(alerts)

	return plan
}

func (r *Resolver) assign(plan *Plan, cs aviation.Callsign, ownship, intruder aviation.AircraftState) {
	if _, ok := plan.Maneuvers[cs]; ok {
		return
	}

	var isDeparture, isArrival bool
	if r.Phase != nil {
		isDeparture, isArrival = r.Phase(cs)
	}

	if m := r.Selector.Select(ownship, intruder, isDeparture, isArrival); m.Type != ManeuverNone {
		plan.Maneuvers[cs] = m
		r.Lg.Debug("assigned maneuver", slog.String("callsign", string(cs)),
			slog.String("maneuver", m.Description))
	}
}
