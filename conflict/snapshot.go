// conflict/snapshot.go
// Copyright(c) 2026 deconflict contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package conflict

import (
	"io"

	"github.com/avhart/deconflict/aviation"
	"github.com/avhart/deconflict/sep"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// snapshot is the serialized form of a Predictor's state. The engine
// itself does no file I/O; the host passes whatever reader/writer it
// likes.
type snapshot struct {
	Aircraft     map[aviation.Callsign]aviation.AircraftState
	Standards    sep.Standards
	Horizon      float32
	LowAltitude  bool
	Inhibited    [][2]aviation.Callsign
	Obstructions []Obstruction
}

// SaveState writes the predictor's tracked aircraft and configuration to
// w as a zstd-compressed msgpack stream, for host-side checkpointing.
func (p *Predictor) SaveState(w io.Writer) error {
	p.mu.Lock(p.lg)
	defer p.mu.Unlock(p.lg)

	sn := snapshot{
		Aircraft:     p.aircraft,
		Standards:    p.standards,
		Horizon:      p.horizon,
		LowAltitude:  p.lowAltitude,
		Obstructions: p.obstructions,
	}
	for pr := range p.inhibited {
		sn.Inhibited = append(sn.Inhibited, pr)
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(zw).Encode(sn); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// LoadState replaces the predictor's tracked aircraft and configuration
// with a state previously written by SaveState.
func (p *Predictor) LoadState(r io.Reader) error {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return err
	}
	defer zr.Close()

	var sn snapshot
	if err := msgpack.NewDecoder(zr).Decode(&sn); err != nil {
		return err
	}

	p.mu.Lock(p.lg)
	defer p.mu.Unlock(p.lg)

	p.aircraft = sn.Aircraft
	if p.aircraft == nil {
		p.aircraft = make(map[aviation.Callsign]aviation.AircraftState)
	}
	p.standards = sn.Standards
	p.horizon = sn.Horizon
	p.lowAltitude = sn.LowAltitude
	p.obstructions = sn.Obstructions
	p.inhibited = make(map[pair]interface{})
	for _, pr := range sn.Inhibited {
		p.inhibited[pr] = nil
	}
	return nil
}
