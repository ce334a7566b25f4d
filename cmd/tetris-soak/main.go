package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/arcade/input"
	"github.com/plus3/arcade/menu"
	"github.com/plus3/arcade/scene"
	"github.com/plus3/arcade/tetris"
)

const (
	menuID scene.ID = iota + 1
	tetrisID
)

// Keys the bot may hold. Escape is left out so the bot never quits from the
// menu.
var botKeys = []input.Key{
	input.KeyLeft,
	input.KeyRight,
	input.KeyDown,
	input.KeyUp,
	input.KeySpace,
	input.KeyEnter,
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total wall-clock duration the soak should run for.")
	seed := flag.Uint64("seed", 1, "Seed for both the piece sequence and the bot's inputs.")
	tps := flag.Int("tps", 60, "Simulated updates per second of game time.")
	ghost := flag.Bool("ghost", true, "Render the ghost piece on every frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn or error.")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("Invalid log level %q: %v", *logLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	log.Println("Starting Tetris soak test...")

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		TPS:            *tps,
		GCPauseMetrics: *gcPauseMetrics,
		Events:         map[string]int{},
	}

	host := scene.NewHost(logger)
	ts := tetris.NewScene(tetris.SceneConfig{
		MenuID: menuID,
		Seed:   *seed,
		Ghost:  *ghost,
		Logger: logger,
		Observers: []tetris.Observer{
			tetris.ObserverFunc(report.Observe),
		},
	})
	host.Register(menuID, "Menu", menu.New(host, menu.Config{Self: menuID, Logger: logger}))
	host.Register(tetrisID, "Tetris", ts)
	if err := host.Start(tetrisID); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	bot := rand.New(rand.NewPCG(*seed, *seed+1))
	surface := &discardSurface{}
	dt := 1.0 / float64(*tps)

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running soak for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var held input.State

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			held = nextInput(bot, held)

			frameStart := time.Now()
			host.Once(dt, held)
			host.Render(surface)
			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))

			report.SimulatedTime += time.Duration(dt * float64(time.Second))
			if host.Done() {
				break Loop
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.FrameTime.Finalize()
	report.Host = *host.Stats()
	report.DrawCalls = surface.calls
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// nextInput flips each bot key with a small probability, so keys stay held
// for several frames and exercise auto-repeat.
func nextInput(rng *rand.Rand, held input.State) input.State {
	for _, k := range botKeys {
		if rng.IntN(8) == 0 {
			if held.Held(k) {
				held = held.Without(k)
			} else {
				held = held.With(k)
			}
		}
	}
	return held
}
