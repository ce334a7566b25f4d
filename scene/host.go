package scene

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/arcade/input"
)

// Entry describes a registered scene.
type Entry struct {
	ID    ID
	Title string
}

type registered struct {
	id    ID
	title string
	scene Scene
	stats *sceneStatsInternal
}

// Host owns the registered scenes and drives the active one.
type Host struct {
	scenes *intmap.Map[ID, *registered]
	order  []ID
	active *registered
	done   bool
	frames int64
	logger *slog.Logger
}

// NewHost creates a host with no scenes.
func NewHost(logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Host{
		scenes: intmap.New[ID, *registered](8),
		logger: logger,
	}
}

// Register adds a scene under id. Registering the same id twice panics.
func (h *Host) Register(id ID, title string, s Scene) {
	if _, exists := h.scenes.Get(id); exists {
		panic(fmt.Sprintf("scene: id %d already registered", id))
	}
	h.scenes.Put(id, &registered{
		id:    id,
		title: title,
		scene: s,
		stats: &sceneStatsInternal{minDuration: time.Duration(1<<63 - 1)},
	})
	h.order = append(h.order, id)
}

// Entries returns the registered scenes in registration order.
func (h *Host) Entries() []Entry {
	entries := make([]Entry, 0, len(h.order))
	for _, id := range h.order {
		r, _ := h.scenes.Get(id)
		entries = append(entries, Entry{ID: r.id, Title: r.title})
	}
	return entries
}

// Start makes the scene registered under id active and initializes it.
func (h *Host) Start(id ID) error {
	r, ok := h.scenes.Get(id)
	if !ok {
		return fmt.Errorf("scene: unknown id %d", id)
	}
	h.active = r
	r.scene.Initialize()
	h.logger.Debug("scene started", slog.Int("id", int(id)), slog.String("title", r.title))
	return nil
}

// Active returns the id of the active scene.
func (h *Host) Active() (ID, bool) {
	if h.active == nil {
		return 0, false
	}
	return h.active.id, true
}

// Done reports whether a scene has asked the host to quit.
func (h *Host) Done() bool {
	return h.done
}

// Once advances the active scene by dt seconds with the given held keys and
// then applies the commands it queued.
func (h *Host) Once(dt float64, in input.State) {
	if h.active == nil {
		return
	}

	frame := newFrame(dt, in)
	r := h.active

	start := time.Now()
	r.scene.Update(frame)
	r.stats.record(time.Since(start))
	h.frames++

	frame.Commands.Flush(h)
}

// Render draws the active scene onto s.
func (h *Host) Render(s Surface) {
	if h.active == nil {
		return
	}
	h.active.scene.Render(s)
}

// Run advances the host at the given interval until the context is cancelled
// or a scene quits. poll supplies the held keys for each frame and present,
// when set, is called after every update.
func (h *Host) Run(ctx context.Context, interval time.Duration, poll func(dt float64) input.State, present func(*Host)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now

			var in input.State
			if poll != nil {
				in = poll(dt)
			}
			h.Once(dt, in)
			if present != nil {
				present(h)
			}
			if h.done {
				return
			}
		}
	}
}
