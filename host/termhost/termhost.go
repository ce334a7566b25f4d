// Package termhost runs a scene host in a terminal using tcell.
package termhost

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/arcade/input"
	"github.com/plus3/arcade/scene"
)

// Config configures the terminal host.
type Config struct {
	// Interval between frames.
	Interval time.Duration
	// HoldWindow is how long a key counts as held after its last press
	// event. It should exceed the terminal's auto-repeat interval.
	HoldWindow time.Duration
	Logger     *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		Interval:   16 * time.Millisecond,
		HoldWindow: 120 * time.Millisecond,
	}
}

// Terminal drives a scene.Host on a tcell screen. Key events arrive on a
// separate goroutine and are latched into held-key state that the frame
// loop reads.
type Terminal struct {
	screen tcell.Screen
	cfg    Config
	canvas *Canvas
	logger *slog.Logger

	mu    sync.Mutex
	latch *input.Latch
}

// New wraps an initialized screen. The caller keeps ownership and calls
// Fini.
func New(screen tcell.Screen, cfg Config) *Terminal {
	def := DefaultConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.HoldWindow <= 0 {
		cfg.HoldWindow = def.HoldWindow
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Terminal{
		screen: screen,
		cfg:    cfg,
		canvas: NewCanvas(),
		logger: logger,
		latch:  input.NewLatch(cfg.HoldWindow),
	}
}

// OpenScreen creates and initializes the terminal screen.
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}

// Run drives host until the context is cancelled, a scene quits, or Ctrl-C
// is pressed.
func (t *Terminal) Run(ctx context.Context, host *scene.Host) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-events:
				if !t.handleEvent(ev) {
					cancel()
					return
				}
			}
		}
	}()

	t.logger.Info("terminal host started", slog.Duration("interval", t.cfg.Interval))
	host.Run(ctx, t.cfg.Interval, t.poll, t.present)
}

func (t *Terminal) poll(dt float64) input.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latch.Advance(dt)
}

func (t *Terminal) present(h *scene.Host) {
	t.canvas.Clear()
	h.Render(t.canvas)

	w, hgt := t.screen.Size()
	ox := max((w-Cols)/2, 0)
	oy := max((hgt-Rows)/2, 0)

	t.screen.Clear()
	t.canvas.Blit(t.screen, ox, oy)
	t.screen.Show()
}

// handleEvent latches key presses. It returns false when the user asked to
// leave.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if k, ok := MapKey(ev); ok {
			t.mu.Lock()
			t.latch.Press(k)
			t.mu.Unlock()
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// MapKey translates a terminal key event into an arcade key.
func MapKey(ev *tcell.EventKey) (input.Key, bool) {
	return mapKey(ev.Key(), ev.Rune())
}

func mapKey(k tcell.Key, r rune) (input.Key, bool) {
	switch k {
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyEscape:
		return input.KeyEscape, true
	case tcell.KeyEnter:
		return input.KeyEnter, true
	case tcell.KeyRune:
		if r == ' ' {
			return input.KeySpace, true
		}
	}
	return 0, false
}
