// conflict/obstruction.go
// Copyright(c) 2026 deconflict contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package conflict

import (
	"log/slog"

	"github.com/avhart/deconflict/aviation"
	"github.com/avhart/deconflict/geom"
	"github.com/avhart/deconflict/util"

	"github.com/brunoga/deep"
)

// Obstruction is a static infrastructure footprint (a building, antenna
// farm, construction crane area, ...) with a ceiling altitude below which
// it matters.
type Obstruction struct {
	Name      string
	Footprint geom.Polygon
	Ceiling   float32 // feet; aircraft above this are clear
}

// ObstructionAlert reports an aircraft whose protected zone overlaps an
// obstruction footprint at or below its ceiling.
type ObstructionAlert struct {
	Callsign    aviation.Callsign
	Obstruction string
}

// AddObstruction registers a static footprint to be checked by
// ObstructionConflicts.
func (p *Predictor) AddObstruction(o Obstruction) {
	p.mu.Lock(p.lg)
	defer p.mu.Unlock(p.lg)
	p.obstructions = append(p.obstructions, o)
}

// Obstructions returns a copy of the registered obstructions, in
// registration order. The footprint vertices are copied as well, so the
// caller can't corrupt the predictor's state through the result.
func (p *Predictor) Obstructions() []Obstruction {
	p.mu.Lock(p.lg)
	defer p.mu.Unlock(p.lg)
	return deep.MustCopy(p.obstructions)
}

// ObstructionConflicts checks every tracked aircraft's protected zone
// against the registered obstruction footprints and reports the overlaps.
// Results are ordered by callsign, then by obstruction registration
// order.
func (p *Predictor) ObstructionConflicts() []ObstructionAlert {
	p.mu.Lock(p.lg)
	defer p.mu.Unlock(p.lg)

	var alerts []ObstructionAlert
	for _, cs := range util.SortedMapKeys(p.aircraft) {
		ac := p.aircraft[cs]
		zone := ac.ProtectedZone()
		below := util.FilterSlice(p.obstructions,
			func(o Obstruction) bool { return ac.Altitude <= o.Ceiling })
		for _, o := range below {
			if geom.CirclePolygonIntersect(zone, o.Footprint) {
				alerts = append(alerts, ObstructionAlert{Callsign: cs, Obstruction: o.Name})
				p.lg.Debug("obstruction conflict", slog.String("callsign", string(cs)),
					slog.String("obstruction", o.Name))
			}
		}
	}
	return alerts
}
