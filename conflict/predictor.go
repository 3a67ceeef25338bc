// conflict/predictor.go
// Copyright(c) 2026 deconflict contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package conflict tracks the live set of aircraft states and predicts
// losses of separation between them within a configurable time horizon.
package conflict

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/avhart/deconflict/aviation"
	"github.com/avhart/deconflict/log"
	"github.com/avhart/deconflict/math"
	"github.com/avhart/deconflict/sep"
	"github.com/avhart/deconflict/util"
)

// DefaultHorizon is the forward prediction window, in seconds, used when
// the host doesn't configure one.
const DefaultHorizon = 30

// Alert reports a predicted loss of separation between a pair of
// aircraft. Alerts are transient: they are recomputed on every sweep and
// never persisted.
type Alert struct {
	// Callsigns of the conflicting pair, with the lower-ordered callsign
	// first.
	Callsigns [2]aviation.Callsign

	TimeToConflict float32 // seconds from now
	MinSeparation  float32 // feet, at closest approach

	Type sep.ConflictType

	// Position is the midpoint of the two aircraft's extrapolated
	// positions at TimeToConflict.
	Position [2]float32
}

// Predictor owns the tracked-aircraft map and runs the pairwise
// conflict-prediction sweep over it. All methods serialize on a single
// coarse mutex, so the host may call them from multiple goroutines.
type Predictor struct {
	mu util.LoggingMutex
	lg *log.Logger

	aircraft     map[aviation.Callsign]aviation.AircraftState
	standards    sep.Standards
	horizon      float32
	lowAltitude  bool
	inhibited    map[pair]interface{}
	obstructions []Obstruction
}

// pair is a canonically ordered callsign pair.
type pair [2]aviation.Callsign

func makePair(a, b aviation.Callsign) pair {
	if b < a {
		a, b = b, a
	}
	return pair{a, b}
}

// NewPredictor returns a Predictor using the given separation standards.
// The logger may be nil.
func NewPredictor(standards sep.Standards, lg *log.Logger) *Predictor {
	return &Predictor{
		lg:        lg,
		aircraft:  make(map[aviation.Callsign]aviation.AircraftState),
		standards: standards,
		horizon:   DefaultHorizon,
		inhibited: make(map[pair]interface{}),
	}
}

// SetHorizon sets the forward prediction window in seconds.
func (p *Predictor) SetHorizon(seconds float32) {
	p.mu.Lock(p.lg)
	defer p.mu.Unlock(p.lg)
	p.horizon = seconds
}

// SetLowAltitude selects the reduced near-airport separation thresholds
// for classification.
func (p *Predictor) SetLowAltitude(low bool) {
	p.mu.Lock(p.lg)
	defer p.mu.Unlock(p.lg)
	p.lowAltitude = low
}

// Update upserts the state for the aircraft identified by its callsign,
// replacing any previous record.
func (p *Predictor) Update(state aviation.AircraftState) {
	p.mu.Lock(p.lg)
	defer p.mu.Unlock(p.lg)

	p.aircraft[state.Callsign] = state
	p.lg.Debug("updated aircraft state", slog.String("callsign", string(state.Callsign)))
}

// Remove drops the aircraft with the given callsign from the tracked set;
// removing an unknown callsign is a no-op.
func (p *Predictor) Remove(cs aviation.Callsign) {
	p.mu.Lock(p.lg)
	defer p.mu.Unlock(p.lg)

	delete(p.aircraft, cs)
	p.lg.Debug("removed aircraft", slog.String("callsign", string(cs)))
}

// TrackedCount returns the number of aircraft currently tracked.
func (p *Predictor) TrackedCount() int {
	p.mu.Lock(p.lg)
	defer p.mu.Unlock(p.lg)
	return len(p.aircraft)
}

// TrackedStates returns a copy of the tracked-aircraft map, suitable for
// handing to the resolver.
func (p *Predictor) TrackedStates() map[aviation.Callsign]aviation.AircraftState {
	p.mu.Lock(p.lg)
	defer p.mu.Unlock(p.lg)
	return util.DuplicateMap(p.aircraft)
}

// InhibitPair suppresses conflict alerts for the given pair of aircraft
// in both orders, until UninhibitPair is called for it.
func (p *Predictor) InhibitPair(a, b aviation.Callsign) {
	p.mu.Lock(p.lg)
	defer p.mu.Unlock(p.lg)
	p.inhibited[makePair(a, b)] = nil
}

// UninhibitPair re-enables conflict alerts for the given pair.
func (p *Predictor) UninhibitPair(a, b aviation.Callsign) {
	p.mu.Lock(p.lg)
	defer p.mu.Unlock(p.lg)
	delete(p.inhibited, makePair(a, b))
}

// PredictConflicts sweeps all unordered pairs of tracked aircraft and
// returns an alert for each predicted loss of separation within the
// configured horizon, sorted by increasing time to conflict with ties
// broken by callsign for determinism. The sweep is a pure read of the
// tracked set: calling it repeatedly returns the same result.
func (p *Predictor) PredictConflicts() []Alert {
	p.mu.Lock(p.lg)
	defer p.mu.Unlock(p.lg)

	var alerts []Alert
	callsigns := util.SortedMapKeys(p.aircraft)
	for i, cs0 := range callsigns {
		for _, cs1 := range callsigns[i+1:] {
			if _, ok := p.inhibited[makePair(cs0, cs1)]; ok {
				continue
			}

			a, b := p.aircraft[cs0], p.aircraft[cs1]
			predicted, t := p.standards.PredictCollision(a, b, p.horizon)
			if !predicted {
				continue
			}

			minSep, _ := sep.ClosestPointOfApproach(a, b)

			// The type reflects the pair's geometry now, not at the
			// predicted conflict; a distant closing pair may be None until
			// it gets close.
			alerts = append(alerts, Alert{
				Callsigns:      [2]aviation.Callsign{cs0, cs1},
				TimeToConflict: t,
				MinSeparation:  minSep,
				Type:           p.standards.Classify(a, b, p.lowAltitude),
				Position:       math.Mid2f(a.Extrapolate(t), b.Extrapolate(t)),
			})
		}
	}

	slices.SortFunc(alerts, func(a, b Alert) int {
		if c := cmp.Compare(a.TimeToConflict, b.TimeToConflict); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Callsigns[0], b.Callsigns[0]); c != 0 {
			return c
		}
		return cmp.Compare(a.Callsigns[1], b.Callsigns[1])
	})

	p.lg.Debug("conflict sweep", slog.Int("tracked", len(p.aircraft)),
		slog.Int("alerts", len(alerts)))

	return alerts
}
