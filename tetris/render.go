package tetris

import (
	"fmt"
	"image/color"

	"github.com/plus3/arcade/scene"
)

// CellSize is the side of one grid cell in logical units.
const CellSize = 30

var (
	backgroundColor = color.RGBA{0x00, 0x00, 0x00, 0xff}
	fieldColor      = color.RGBA{0x11, 0x11, 0x11, 0xff}
	gridLineColor   = color.RGBA{0x33, 0x33, 0x33, 0xff}
	textColor       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	hintColor       = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	highlightColor  = color.NRGBA{0xff, 0xff, 0xff, 0x33}
	ghostColor      = color.NRGBA{0xff, 0xff, 0xff, 0x50}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0xbf}
)

// Panel positions to the right of the field.
const (
	previewX = 570
	previewY = 130
	infoX    = 500
)

// Render draws the field, the falling piece, the side panel and, when the
// game is over, the overlay.
func (s *Scene) Render(surface scene.Surface) {
	surface.FillRect(0, 0, scene.Width, scene.Height, backgroundColor)
	if s.game == nil {
		return
	}
	g := s.game

	drawField(surface, g.grid)

	// At game over the piece that failed to spawn stays visible under the
	// overlay.
	if cur := g.current; cur != nil {
		if s.cfg.Ghost && !g.IsOver() {
			ghost := cur.copy()
			ghost.Y = g.GhostY()
			for _, c := range ghost.AbsoluteCells() {
				if c.Y >= 0 {
					surface.StrokeRect(float32(c.X*CellSize), float32(c.Y*CellSize), CellSize, CellSize, ghostColor)
				}
			}
		}
		drawPiece(surface, cur, 0, 0)
	}

	surface.Text("NEXT", previewX, previewY-30, textColor)
	if g.next != nil {
		preview := g.next.copy()
		preview.X, preview.Y = 0, 0
		drawPiece(surface, preview, previewX, previewY)
	}

	surface.Text(fmt.Sprintf("SCORE %d", g.score), infoX, 200, textColor)
	surface.Text(fmt.Sprintf("LEVEL %d", g.level), infoX, 240, textColor)
	surface.Text(fmt.Sprintf("LINES %d", g.lines), infoX, 280, textColor)

	if g.IsOver() {
		surface.FillRect(0, 0, scene.Width, scene.Height, overlayColor)
		surface.Text("GAME OVER", 350, 250, textColor)
		surface.Text(fmt.Sprintf("FINAL SCORE %d", g.score), 330, 300, textColor)
		surface.Text("ENTER: menu", 345, 350, textColor)
	}

	surface.Text("ESC: menu", 665, 580, hintColor)
}

func drawField(surface scene.Surface, grid *Grid) {
	const w, h = Columns * CellSize, Rows * CellSize

	surface.FillRect(0, 0, w, h, fieldColor)
	for x := 0; x <= Columns; x++ {
		surface.Line(float32(x*CellSize), 0, float32(x*CellSize), h, gridLineColor)
	}
	for y := 0; y <= Rows; y++ {
		surface.Line(0, float32(y*CellSize), w, float32(y*CellSize), gridLineColor)
	}

	for y := range Rows {
		for x := range Columns {
			if c := grid.cells[y][x]; c.Filled {
				drawBlock(surface, float32(x*CellSize), float32(y*CellSize), c.Color)
			}
		}
	}
}

// drawPiece draws p with its origin offset by (ox, oy) logical units. Cells
// above the field are skipped.
func drawPiece(surface scene.Surface, p *Piece, ox, oy float32) {
	c := p.Kind.Color()
	for _, pt := range p.AbsoluteCells() {
		if pt.Y < 0 {
			continue
		}
		drawBlock(surface, ox+float32(pt.X*CellSize), oy+float32(pt.Y*CellSize), c)
	}
}

func drawBlock(surface scene.Surface, x, y float32, c color.RGBA) {
	surface.FillRect(x, y, CellSize, CellSize, c)
	surface.StrokeRect(x, y, CellSize, CellSize, darken(c, 50))
	surface.FillRect(x+2, y+2, CellSize-4, 4, highlightColor)
}

func darken(c color.RGBA, amount uint8) color.RGBA {
	sub := func(v uint8) uint8 {
		if v < amount {
			return 0
		}
		return v - amount
	}
	return color.RGBA{R: sub(c.R), G: sub(c.G), B: sub(c.B), A: c.A}
}
