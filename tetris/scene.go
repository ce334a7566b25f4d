package tetris

import (
	"log/slog"
	"math/rand/v2"

	"github.com/plus3/arcade/input"
	"github.com/plus3/arcade/scene"
)

// SceneConfig configures the Tetris scene.
type SceneConfig struct {
	// MenuID is the scene to return to on Escape or after game over.
	MenuID scene.ID
	// Seed makes piece sequences reproducible. Zero picks a random seed.
	Seed uint64
	// Ghost draws the hard-drop landing outline of the falling piece.
	Ghost     bool
	Logger    *slog.Logger
	Observers []Observer
}

// Scene hosts a Tetris session inside the arcade scene framework.
type Scene struct {
	cfg    SceneConfig
	seeds  *rand.Rand
	logger *slog.Logger
	game   *Game
}

// NewScene creates the Tetris scene. The session itself starts on
// Initialize.
func NewScene(cfg SceneConfig) *Scene {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scene{
		cfg:    cfg,
		seeds:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		logger: logger,
	}
}

// AddObserver registers o to receive engine events.
func (s *Scene) AddObserver(o Observer) {
	s.cfg.Observers = append(s.cfg.Observers, o)
}

// Initialize starts a fresh session.
func (s *Scene) Initialize() {
	rng := rand.New(rand.NewPCG(s.seeds.Uint64(), s.seeds.Uint64()))
	s.game = NewGame(rng, s.logger)
	s.game.Start()
	s.dispatch()
}

// Update handles the scene-level keys and advances the session.
func (s *Scene) Update(frame *scene.Frame) {
	if s.game == nil {
		return
	}
	in := frame.Input

	if in.Held(input.KeyEscape) {
		frame.Commands.Switch(s.cfg.MenuID)
		return
	}
	if s.game.IsOver() {
		if in.Held(input.KeyEnter) {
			frame.Commands.Switch(s.cfg.MenuID)
		}
		return
	}

	s.game.Update(frame.DeltaTime, in)
	s.dispatch()
}

// Game returns the running session, or nil before Initialize.
func (s *Scene) Game() *Game {
	return s.game
}

func (s *Scene) dispatch() {
	events := s.game.DrainEvents()
	for _, e := range events {
		for _, o := range s.cfg.Observers {
			o.OnEvent(e)
		}
	}
}
