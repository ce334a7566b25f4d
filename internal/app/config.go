package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
)

// Config holds the settings shared by every arcade front end.
type Config struct {
	// Seed for the piece sequence. Zero picks a random seed per run.
	Seed     uint64
	LogLevel string
	Mute     bool
	Volume   float64
	Ghost    bool
	// Debug enables the Dear ImGui overlay where the host supports it.
	Debug bool
	// Scale multiplies the 800x600 logical space into the window size.
	Scale    float64
	TickRate int
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Volume:   0.5,
		Ghost:    true,
		Scale:    1,
		TickRate: 60,
	}
}

// RegisterFlags binds the config fields to fs, using the current values as
// defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Seed for the piece sequence; 0 picks one at random.")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn or error.")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "Disable audio cues.")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "Audio cue volume between 0 and 1.")
	fs.BoolVar(&c.Ghost, "ghost", c.Ghost, "Show where the falling piece will land.")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Show the debug overlay.")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "Window scale factor.")
	fs.IntVar(&c.TickRate, "tps", c.TickRate, "Updates per second.")
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %.2f out of range [0, 1]", c.Volume)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %.2f", c.Scale)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	return nil
}

// NewLogger builds a text logger writing to w at the configured level.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
