// Package debugui provides a Dear ImGui overlay for inspecting the arcade
// while it runs.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Item holds a Dear ImGui render function drawn every frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Hosts use it to keep keystrokes typed into the overlay away from scenes.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay collects items and renders them between the backend's BeginFrame
// and EndFrame.
type Overlay struct {
	items []Item
	input InputState
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

// Add registers an item. Items render in the order they were added.
func (o *Overlay) Add(item Item) {
	o.items = append(o.items, item)
}

// Frame updates the input capture state and renders every item.
func (o *Overlay) Frame() {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.items {
		item.Render()
	}
}

// Input returns the capture state recorded by the last Frame.
func (o *Overlay) Input() InputState {
	return o.input
}
