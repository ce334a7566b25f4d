// Package menu implements the arcade's main menu scene.
package menu

import (
	"log/slog"

	"github.com/plus3/arcade/input"
	"github.com/plus3/arcade/scene"
)

// Lister supplies the scenes the menu can switch to. *scene.Host satisfies
// it.
type Lister interface {
	Entries() []scene.Entry
}

// Config configures the menu scene.
type Config struct {
	// Self is the id the menu is registered under. It is left out of the
	// listing.
	Self   scene.ID
	Title  string
	Logger *slog.Logger
}

// Scene lists every other registered scene. Up and Down move the selection,
// Enter switches to it and Escape quits the arcade.
type Scene struct {
	cfg      Config
	scenes   Lister
	logger   *slog.Logger
	entries  []scene.Entry
	selected int
	prev     input.State
}

// New creates the menu. The listing is refreshed on every Initialize, so
// scenes registered after New still show up.
func New(scenes Lister, cfg Config) *Scene {
	if cfg.Title == "" {
		cfg.Title = "ARCADE"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scene{
		cfg:    cfg,
		scenes: scenes,
		logger: logger,
	}
}

func (m *Scene) Initialize() {
	m.entries = m.entries[:0]
	for _, e := range m.scenes.Entries() {
		if e.ID != m.cfg.Self {
			m.entries = append(m.entries, e)
		}
	}
	if m.selected >= len(m.entries) {
		m.selected = 0
	}
	// Keys still held from the previous scene must be released first.
	m.prev = input.Of(input.Keys()...)
}

func (m *Scene) Update(frame *scene.Frame) {
	in := frame.Input
	defer func() { m.prev = in }()

	if in.Pressed(m.prev, input.KeyEscape) {
		m.logger.Info("quit requested from menu")
		frame.Commands.Quit()
		return
	}

	n := len(m.entries)
	if n == 0 {
		return
	}
	if in.Pressed(m.prev, input.KeyUp) {
		m.selected = (m.selected - 1 + n) % n
	}
	if in.Pressed(m.prev, input.KeyDown) {
		m.selected = (m.selected + 1) % n
	}
	if in.Pressed(m.prev, input.KeyEnter) {
		e := m.entries[m.selected]
		m.logger.Info("scene selected", slog.String("title", e.Title))
		frame.Commands.Switch(e.ID)
	}
}

// Selected returns the highlighted entry.
func (m *Scene) Selected() (scene.Entry, bool) {
	if len(m.entries) == 0 {
		return scene.Entry{}, false
	}
	return m.entries[m.selected], true
}

// Entries returns the listed scenes.
func (m *Scene) Entries() []scene.Entry {
	return m.entries
}
