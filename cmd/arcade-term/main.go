package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/plus3/arcade/host/termhost"
	"github.com/plus3/arcade/internal/app"
)

func main() {
	cfg := app.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	logFile := flag.String("log-file", "", "Write logs to this file; the terminal itself is taken by the game.")
	hold := flag.Duration("hold", 120*time.Millisecond, "How long a key counts as held after its last press.")
	flag.Parse()

	logOut := os.Stderr
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}

	logger, err := cfg.NewLogger(logOut)
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}
	if *logFile == "" {
		logger = slog.New(slog.DiscardHandler)
	}

	arcade, err := app.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to build arcade: %v", err)
	}
	defer arcade.Close()

	screen, err := termhost.OpenScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	defer screen.Fini()

	if err := arcade.Start(); err != nil {
		screen.Fini()
		log.Fatalf("Failed to start: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	term := termhost.New(screen, termhost.Config{
		Interval:   time.Second / time.Duration(cfg.TickRate),
		HoldWindow: *hold,
		Logger:     logger,
	})
	term.Run(ctx, arcade.Host)
}
