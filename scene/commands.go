package scene

import "log/slog"

// Commands buffers requests made during an update pass. The host applies them
// after the active scene's Update returns, so a scene never gets swapped out
// from under itself.
type Commands struct {
	switchTo *ID
	quit     bool
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Switch queues a switch to the scene registered under id. The last request
// in a frame wins.
func (c *Commands) Switch(id ID) {
	c.switchTo = &id
}

// Quit asks the host to stop after this frame.
func (c *Commands) Quit() {
	c.quit = true
}

// Defer queues fn to run once the frame's switch has been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies all queued commands to h and resets the buffer.
func (c *Commands) Flush(h *Host) {
	if c.switchTo != nil {
		if err := h.Start(*c.switchTo); err != nil {
			h.logger.Error("scene switch failed", slog.String("error", err.Error()))
		}
	}
	if c.quit {
		h.done = true
	}
	for _, fn := range c.defers {
		fn()
	}

	c.switchTo = nil
	c.quit = false
	c.defers = c.defers[:0]
}
