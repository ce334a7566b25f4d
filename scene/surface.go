package scene

import "image/color"

// Logical drawing space every scene renders into. Hosts scale it to their
// actual output.
const (
	Width  = 800
	Height = 600
)

// Surface is a drawing target accepting axis-aligned rectangles, lines and
// text in logical units. Text is anchored at its baseline.
type Surface interface {
	FillRect(x, y, w, h float32, c color.Color)
	StrokeRect(x, y, w, h float32, c color.Color)
	Line(x0, y0, x1, y1 float32, c color.Color)
	Text(s string, x, y float32, c color.Color)
}
