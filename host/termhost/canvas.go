package termhost

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/arcade/scene"
)

// Logical units covered by one terminal cell. Terminal cells are roughly
// twice as tall as wide, so one 30-unit Tetris block maps to two columns.
const (
	UnitsPerCol = 15
	UnitsPerRow = 30

	Cols = scene.Width / UnitsPerCol
	Rows = scene.Height / UnitsPerRow
)

const (
	blankRune = ' '
	lineRune  = '·'
)

// Cell is one rasterized terminal cell.
type Cell struct {
	Ch rune
	FG color.RGBA
	BG color.RGBA
}

var blank = Cell{Ch: blankRune, FG: color.RGBA{0xff, 0xff, 0xff, 0xff}, BG: color.RGBA{0, 0, 0, 0xff}}

// Canvas rasterizes the logical drawing space into a grid of terminal cells.
// It implements scene.Surface.
type Canvas struct {
	cells [Rows][Cols]Cell
}

func NewCanvas() *Canvas {
	c := &Canvas{}
	c.Clear()
	return c
}

// Clear resets every cell to a black blank.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = blank
		}
	}
}

// At returns the cell at column x, row y. Out of range reads return a blank.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return blank
	}
	return c.cells[y][x]
}

// FillRect paints the background of every cell whose center lies inside the
// rectangle, blending translucent colors over what is already there.
func (c *Canvas) FillRect(x, y, w, h float32, col color.Color) {
	src := color.NRGBAModel.Convert(col).(color.NRGBA)
	c.covered(x, y, w, h, func(cx, cy int) {
		cell := &c.cells[cy][cx]
		cell.BG = blend(cell.BG, src)
		if src.A == 0xff {
			cell.Ch = blankRune
		}
	})
}

// StrokeRect outlines the rectangle. Rectangles spanning a single row are
// drawn as brackets around the cells they cover.
func (c *Canvas) StrokeRect(x, y, w, h float32, col color.Color) {
	fg := opaque(col)
	x0, y0, x1, y1, ok := c.span(x, y, w, h)
	if !ok {
		return
	}

	if y0 == y1 {
		for cx := x0; cx <= x1; cx++ {
			cell := &c.cells[y0][cx]
			cell.FG = fg
			switch {
			case x0 == x1:
				cell.Ch = '□'
			case cx == x0:
				cell.Ch = '['
			case cx == x1:
				cell.Ch = ']'
			}
		}
		return
	}

	for cx := x0; cx <= x1; cx++ {
		c.setRune(cx, y0, '─', fg)
		c.setRune(cx, y1, '─', fg)
	}
	for cy := y0; cy <= y1; cy++ {
		c.setRune(x0, cy, '│', fg)
		c.setRune(x1, cy, '│', fg)
	}
	c.setRune(x0, y0, '┌', fg)
	c.setRune(x1, y0, '┐', fg)
	c.setRune(x0, y1, '└', fg)
	c.setRune(x1, y1, '┘', fg)
}

// Line marks blank cells along the line with a dot, excluding the end point.
// Cells already showing a glyph keep it.
func (c *Canvas) Line(x0, y0, x1, y1 float32, col color.Color) {
	fg := opaque(col)
	steps := int(math.Max(math.Abs(float64(x1-x0))/UnitsPerCol, math.Abs(float64(y1-y0))/UnitsPerRow)) + 1
	for i := range steps {
		t := float32(i) / float32(steps)
		cx, cy := cellOf(x0+(x1-x0)*t, y0+(y1-y0)*t)
		if cx < 0 || cx >= Cols || cy < 0 || cy >= Rows {
			continue
		}
		cell := &c.cells[cy][cx]
		if cell.Ch == blankRune {
			cell.Ch = lineRune
			cell.FG = fg
		}
	}
}

// Text writes s starting at the cell holding (x, y - ascent), where y is the
// baseline.
func (c *Canvas) Text(s string, x, y float32, col color.Color) {
	fg := opaque(col)
	cx, cy := cellOf(x, y-10)
	for _, r := range s {
		c.setRune(cx, cy, r, fg)
		cx++
	}
}

// Blit copies the canvas onto screen with its top-left corner at (ox, oy).
func (c *Canvas) Blit(screen tcell.Screen, ox, oy int) {
	for y := range c.cells {
		for x, cell := range c.cells[y] {
			style := tcell.StyleDefault.
				Foreground(tcellColor(cell.FG)).
				Background(tcellColor(cell.BG))
			screen.SetContent(ox+x, oy+y, cell.Ch, nil, style)
		}
	}
}

func (c *Canvas) setRune(x, y int, r rune, fg color.RGBA) {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return
	}
	c.cells[y][x].Ch = r
	c.cells[y][x].FG = fg
}

// covered calls fn for every in-range cell whose center lies inside the
// rectangle.
func (c *Canvas) covered(x, y, w, h float32, fn func(cx, cy int)) {
	x0, y0, x1, y1, ok := c.span(x, y, w, h)
	if !ok {
		return
	}
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			fn(cx, cy)
		}
	}
}

// span returns the inclusive cell range whose centers lie inside the
// rectangle, clipped to the canvas.
func (c *Canvas) span(x, y, w, h float32) (x0, y0, x1, y1 int, ok bool) {
	x0 = max(int(math.Ceil(float64(x)/UnitsPerCol-0.5)), 0)
	y0 = max(int(math.Ceil(float64(y)/UnitsPerRow-0.5)), 0)
	x1 = min(int(math.Ceil(float64(x+w)/UnitsPerCol-0.5))-1, Cols-1)
	y1 = min(int(math.Ceil(float64(y+h)/UnitsPerRow-0.5))-1, Rows-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

func cellOf(x, y float32) (int, int) {
	return int(math.Floor(float64(x) / UnitsPerCol)), int(math.Floor(float64(y) / UnitsPerRow))
}

func blend(dst color.RGBA, src color.NRGBA) color.RGBA {
	a := float64(src.A) / 0xff
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(d)*(1-a) + float64(s)*a))
	}
	return color.RGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 0xff}
}

func opaque(col color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
