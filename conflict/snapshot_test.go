// conflict/snapshot_test.go
// Copyright(c) 2026 deconflict contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package conflict

import (
	"bytes"
	"testing"

	"github.com/avhart/deconflict/geom"
	"github.com/avhart/deconflict/sep"
)

func TestSnapshotRoundTrip(t *testing.T) {
	p := NewPredictor(sep.DefaultStandards(), nil)
	p.SetHorizon(45)
	p.SetLowAltitude(true)

	p.Update(ac("AAL1", 0, 0, 5000, 90, 100))
	p.Update(ac("UAL2", 2000, 0, 5000, 270, 100))
	p.InhibitPair("AAL1", "UAL2")
	p.AddObstruction(Obstruction{
		Name: "crane",
		Footprint: geom.Polygon{Vertices: [][2]float32{
			{0, 0}, {0, 100}, {100, 100}, {100, 0}}},
		Ceiling: 500,
	})

	var buf bytes.Buffer
	if err := p.SaveState(&buf); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	q := NewPredictor(sep.Standards{}, nil)
	if err := q.LoadState(&buf); err != nil {
		t.Fatalf("LoadState: %v", err)
	}

	if q.TrackedCount() != 2 {
		t.Errorf("restored tracked count %d, expected 2", q.TrackedCount())
	}
	if got, want := q.TrackedStates(), p.TrackedStates(); len(got) != len(want) {
		t.Errorf("restored states %v, expected %v", got, want)
	} else {
		for cs, st := range want {
			if got[cs] != st {
				t.Errorf("restored state for %s = %+v, expected %+v", cs, got[cs], st)
			}
		}
	}

	// The inhibited pair survives the round trip.
	if alerts := q.PredictConflicts(); len(alerts) != 0 {
		t.Errorf("got %d alerts from restored predictor, expected the pair to stay inhibited",
			len(alerts))
	}
	q.UninhibitPair("UAL2", "AAL1")
	if alerts := q.PredictConflicts(); len(alerts) != 1 {
		t.Errorf("got %d alerts after uninhibiting, expected 1", len(alerts))
	}

	// So do the obstructions.
	low := ac("AAL1", 50, 50, 300, 90, 100)
	low.Wingspan, low.Length = 118, 125
	q.Update(low)
	if alerts := q.ObstructionConflicts(); len(alerts) != 1 || alerts[0].Obstruction != "crane" {
		t.Errorf("obstruction alerts after restore: %+v", alerts)
	}
}
