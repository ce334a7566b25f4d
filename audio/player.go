// Package audio plays short synthesized cues for Tetris engine events.
package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/arcade/tetris"
)

// SampleRate used for the speaker and every cue.
const SampleRate = beep.SampleRate(44100)

// Config configures a Player.
type Config struct {
	Mute   bool
	Volume float64
	Logger *slog.Logger
}

// DefaultConfig returns an unmuted player at half volume.
func DefaultConfig() Config {
	return Config{Volume: 0.5}
}

// Player mixes cues into the speaker. It implements tetris.Observer, so it
// can be attached straight to a Tetris scene. A Player that failed to
// initialize, or was muted, drops every cue.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	logger      *slog.Logger
}

func NewPlayer(cfg Config) *Player {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker. Muted players never touch the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.cfg.Mute {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all cues and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

func (p *Player) OnEvent(e tetris.Event) {
	notes := CueFor(e)
	if notes == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	s, err := Render(notes, SampleRate, p.cfg.Volume)
	if err != nil {
		p.logger.Warn("audio cue dropped",
			slog.String("event", e.Kind.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
