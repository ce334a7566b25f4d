// Package scene provides the frame-driven scene framework shared by every
// arcade game. A Host owns the active scene, advances it once per frame with
// the elapsed time and the held input, and applies deferred scene switches
// once the update pass has finished.
package scene

import "github.com/plus3/arcade/input"

// ID identifies a registered scene.
type ID uint32

// Scene is a full-screen mode driven by the Host. Implementations keep all of
// their state to themselves; switching away simply abandons it.
type Scene interface {
	// Initialize is called every time the host switches to the scene.
	Initialize()
	// Update advances the scene by frame.DeltaTime seconds.
	Update(frame *Frame)
	// Render draws the scene in the logical coordinate space.
	Render(s Surface)
}

// Frame carries everything a scene may read or request during one update.
type Frame struct {
	DeltaTime float64
	Input     input.State
	Commands  *Commands
}

func newFrame(dt float64, in input.State) *Frame {
	return &Frame{
		DeltaTime: dt,
		Input:     in,
		Commands:  newCommands(),
	}
}
