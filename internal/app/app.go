// Package app wires the arcade's scenes, audio and logging together for the
// command-line front ends.
package app

import (
	"fmt"
	"log/slog"

	"github.com/plus3/arcade/audio"
	"github.com/plus3/arcade/menu"
	"github.com/plus3/arcade/scene"
	"github.com/plus3/arcade/tetris"
)

// Registered scene ids.
const (
	MenuID scene.ID = iota + 1
	TetrisID
)

// Arcade is a host with the menu and every game registered.
type Arcade struct {
	Host   *scene.Host
	Menu   *menu.Scene
	Tetris *tetris.Scene
	Audio  *audio.Player

	logger *slog.Logger
}

// New builds the arcade. Audio is not opened until Start.
func New(cfg Config, logger *slog.Logger) (*Arcade, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	player := audio.NewPlayer(audio.Config{
		Mute:   cfg.Mute,
		Volume: cfg.Volume,
		Logger: logger.With(slog.String("component", "audio")),
	})

	host := scene.NewHost(logger.With(slog.String("component", "host")))
	m := menu.New(host, menu.Config{
		Self:   MenuID,
		Title:  "ARCADE",
		Logger: logger.With(slog.String("component", "menu")),
	})
	ts := tetris.NewScene(tetris.SceneConfig{
		MenuID:    MenuID,
		Seed:      cfg.Seed,
		Ghost:     cfg.Ghost,
		Logger:    logger.With(slog.String("component", "tetris")),
		Observers: []tetris.Observer{player},
	})

	host.Register(MenuID, "Menu", m)
	host.Register(TetrisID, "Tetris", ts)

	return &Arcade{
		Host:   host,
		Menu:   m,
		Tetris: ts,
		Audio:  player,
		logger: logger,
	}, nil
}

// Start opens audio and shows the menu. An audio failure is logged and the
// arcade continues muted.
func (a *Arcade) Start() error {
	if err := a.Audio.Init(); err != nil {
		a.logger.Warn("audio unavailable, running muted", slog.String("error", err.Error()))
	}
	if err := a.Host.Start(MenuID); err != nil {
		return fmt.Errorf("start menu: %w", err)
	}
	return nil
}

// Close releases audio.
func (a *Arcade) Close() {
	a.Audio.Close()
}
