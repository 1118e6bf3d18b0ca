// Command memong-soak drives the simulation headless with random input and
// prints a markdown report of what happened.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/memong/engine"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The longest the soak should run for.")
	ticks := flag.Uint64("ticks", 0, "Stop after this many ticks. Zero runs for the full duration.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the random input source.")
	inputRate := flag.Float64("input-rate", 0.1, "Probability of a key press on each tick.")
	verbose := flag.Bool("verbose", false, "Log every contact and reset.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *inputRate < 0 || *inputRate > 1 {
		fmt.Fprintf(os.Stderr, "memong-soak: -input-rate must be within [0, 1], got %v\n", *inputRate)
		os.Exit(1)
	}

	runID := uuid.New()
	log.Printf("Starting soak run %s (seed %d)...", runID, *seed)

	src := newRandomSource(*seed, *inputRate)
	loop := engine.NewLoop(nil, engine.WithVerbose(*verbose))

	report := &Report{
		RunID:          runID.String(),
		Seed:           *seed,
		Duration:       *duration,
		TickLimit:      *ticks,
		InputRate:      *inputRate,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for *ticks == 0 || report.TotalUpdates < *ticks {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		events := src.Poll()
		updateStart := time.Now()
		loop.Tick(events)
		report.UpdateTime.Record(time.Since(updateStart))
		report.TotalUpdates++

		if err := checkState(loop.State()); err != nil {
			report.Violations = append(report.Violations, fmt.Sprintf("tick %d: %v", report.TotalUpdates, err))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Counters = loop.Counters()
	report.Systems = loop.Stats().Systems
	report.KeyPresses = src.presses
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if len(report.Violations) > 0 {
		os.Exit(1)
	}
}
