// Package scenetest provides a Surface that records draw calls so scenes can
// be rendered in tests without a window.
package scenetest

import (
	"image/color"
	"strings"
)

// Op names a recorded drawing primitive.
type Op string

const (
	OpFillRect   Op = "fill"
	OpStrokeRect Op = "stroke"
	OpLine       Op = "line"
	OpText       Op = "text"
)

// Call is one recorded draw call. X1/Y1 hold the end point for lines and the
// size for rectangles.
type Call struct {
	Op     Op
	X, Y   float32
	X1, Y1 float32
	Text   string
	Color  color.RGBA
}

// Recorder implements scene.Surface.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) FillRect(x, y, w, h float32, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillRect, X: x, Y: y, X1: w, Y1: h, Color: rgba(c)})
}

func (r *Recorder) StrokeRect(x, y, w, h float32, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeRect, X: x, Y: y, X1: w, Y1: h, Color: rgba(c)})
}

func (r *Recorder) Line(x0, y0, x1, y1 float32, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpLine, X: x0, Y: y0, X1: x1, Y1: y1, Color: rgba(c)})
}

func (r *Recorder) Text(s string, x, y float32, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpText, X: x, Y: y, Text: s, Color: rgba(c)})
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Filter returns the calls with the given op.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// HasText reports whether any text call contains substr.
func (r *Recorder) HasText(substr string) bool {
	for _, c := range r.Filter(OpText) {
		if strings.Contains(c.Text, substr) {
			return true
		}
	}
	return false
}

// FilledAt returns the fill calls whose rectangle starts at (x, y).
func (r *Recorder) FilledAt(x, y float32) []Call {
	var out []Call
	for _, c := range r.Filter(OpFillRect) {
		if c.X == x && c.Y == y {
			out = append(out, c)
		}
	}
	return out
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
