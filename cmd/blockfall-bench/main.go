package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/piece"
)

// Every simulated frame lasts exactly one gravity interval.
const frameTime = 0.1

var playable = []game.Intent{
	game.IntentNone,
	game.IntentLeft,
	game.IntentRight,
	game.IntentDown,
	game.IntentRotate,
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the benchmark should run for.")
	width := flag.Int("width", 10, "Field width.")
	height := flag.Int("height", 20, "Field height.")
	seed := flag.Uint64("seed", 1, "Seed for pieces and simulated input.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatalf("field size %dx%d must be positive", *width, *height)
	}

	log.Println("Starting blockfall benchmark...")

	blueprints := piece.DefaultBlueprints()
	rng := game.NewRand(*seed)

	report := &Report{
		Duration:       *duration,
		Width:          *width,
		Height:         *height,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}

	var input loop.IntentQueue
	newSession := func() *loop.Session {
		controller, err := game.New(game.Config{
			Field:      field.New(*width, *height),
			Blueprints: blueprints,
			Rand:       rng,
		})
		if err != nil {
			log.Fatalf("Failed to start game: %v", err)
		}
		return loop.NewSession(controller, loop.Options{
			Input:    &input,
			Interval: time.Duration(frameTime * float64(time.Second)),
		})
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	session := newSession()
	deadline := time.Now().Add(*duration)
	startTime := time.Now()

	for time.Now().Before(deadline) {
		if intent := playable[rng.IntN(len(playable))]; intent != game.IntentNone {
			input.Push(intent)
		}

		updateStart := time.Now()
		running := session.Once(frameTime)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.TotalUpdates++

		if !running {
			report.add(session.Controller().Stats())
			session = newSession()
		}
	}
	report.add(session.Controller().Stats())

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
