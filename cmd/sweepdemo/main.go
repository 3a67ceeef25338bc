// cmd/sweepdemo/main.go
// Copyright(c) 2026 deconflict contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// sweepdemo runs a canned two-aircraft head-on scenario through the
// conflict predictor and resolver for a few decision cycles, standing in
// for the simulator bridge that a real host would provide.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/avhart/deconflict/aviation"
	"github.com/avhart/deconflict/conflict"
	"github.com/avhart/deconflict/log"
	"github.com/avhart/deconflict/resolve"
	"github.com/avhart/deconflict/sep"
	"github.com/avhart/deconflict/util"

	"golang.org/x/sync/errgroup"
)

var (
	logLevel = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir   = flag.String("logdir", "", "log directory (default: user config dir)")
	cycles   = flag.Int("cycles", 10, "number of decision cycles to run")
)

func main() {
	flag.Parse()
	lg := log.New(*logLevel, *logDir)

	standards := sep.DefaultStandards()
	var e util.ErrorLogger
	standards.Check(&e)
	if e.HaveErrors() {
		e.PrintErrors(lg)
		return
	}

	pred := conflict.NewPredictor(standards, lg)
	res := &resolve.Resolver{
		Selector: resolve.Selector{Limits: aviation.DefaultPerformanceLimits()},
		Lg:       lg,
	}

	// Two aircraft closing head-on at 5000 ft, 200 ft/s closure.
	scenario := []aviation.AircraftState{
		{
			Callsign: "AAL1", Position: [2]float32{0, 0}, Velocity: [2]float32{100, 0},
			Altitude: 5000, Heading: 90, Groundspeed: 300, Wingspan: 118, Length: 125,
		},
		{
			Callsign: "UAL2", Position: [2]float32{4000, 0}, Velocity: [2]float32{-100, 0},
			Altitude: 5000, Heading: 270, Groundspeed: 300, Wingspan: 118, Length: 125,
		},
	}

	const tick = 100 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	// Feeder: extrapolate the scenario forward and upsert state each
	// tick, the way the simulator bridge would.
	eg.Go(func() error {
		start := time.Now()
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				t := float32(time.Since(start).Seconds())
				for _, ac := range scenario {
					ac.Position = ac.Extrapolate(t)
					pred.Update(ac)
				}
			}
		}
	})

	// Decision cycle: sweep, then plan.
	eg.Go(func() error {
		defer cancel()
		ticker := time.NewTicker(5 * tick)
		defer ticker.Stop()
		for i := 0; i < *cycles; i++ {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}

			alerts := pred.PredictConflicts()
			for _, a := range alerts {
				fmt.Printf("%s / %s: %s conflict in %.1fs, min separation %.0f ft\n",
					a.Callsigns[0], a.Callsigns[1], a.Type, a.TimeToConflict, a.MinSeparation)
			}

			plan := res.Resolve(alerts, pred.TrackedStates())
			for _, cs := range util.SortedMapKeys(plan.Maneuvers) {
				fmt.Printf("  %s: %s\n", cs, plan.Maneuvers[cs].Description)
			}
			if len(alerts) > 0 {
				workloads := util.MapSlice(util.SortedMapKeys(plan.Maneuvers),
					func(cs aviation.Callsign) float32 { return plan.Maneuvers[cs].Workload })
				total := util.ReduceSlice(workloads,
					func(w, sum float32) float32 { return sum + w }, 0)
				fmt.Printf("  resolves all: %v, total workload: %.0f\n", plan.ResolvesAll, total)
			}
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		lg.Errorf("demo: %v", err)
	}
}
