package main

import (
	"flag"
	"log"
	"os"

	"github.com/plus3/arcade/debugui"
	"github.com/plus3/arcade/host/ebitenhost"
	"github.com/plus3/arcade/internal/app"
)

func main() {
	cfg := app.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	arcade, err := app.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to build arcade: %v", err)
	}
	defer arcade.Close()

	hostCfg := ebitenhost.DefaultConfig()
	hostCfg.Scale = cfg.Scale
	hostCfg.TPS = cfg.TickRate
	hostCfg.Logger = logger

	var perf *debugui.PerformanceWindow
	if cfg.Debug {
		overlay := debugui.NewOverlay()
		perf = debugui.NewPerformanceWindow(arcade.Host, 120)
		overlay.Add(perf.Item())
		overlay.Add(debugui.NewTetrisInspector(arcade.Tetris).Item())
		hostCfg.Overlay = overlay
	}

	game := ebitenhost.New(arcade.Host, hostCfg)
	if perf != nil {
		game.OnFrame(perf.Record)
	}

	if err := arcade.Start(); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	if err := game.Run(); err != nil {
		log.Fatalf("Arcade exited: %v", err)
	}
}
