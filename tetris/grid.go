package tetris

import (
	"fmt"
	"image/color"
)

const (
	Columns = 10
	Rows    = 20
)

// EmptyColor is the color carried by cells that are not filled.
var EmptyColor = color.RGBA{0x00, 0x00, 0x00, 0xff}

// Cell is one square of the playfield.
type Cell struct {
	Filled bool
	Color  color.RGBA
}

var emptyCell = Cell{Color: EmptyColor}

// Grid is the fixed 10x20 playfield. Row 0 is the top row.
type Grid struct {
	cells [Rows][Columns]Cell
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	g := &Grid{}
	g.Reset()
	return g
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for y := range g.cells {
		g.clearRow(y)
	}
}

// At returns the cell at column x, row y. It panics when out of range.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= Columns || y < 0 || y >= Rows {
		panic(fmt.Sprintf("tetris: grid access out of range (%d,%d)", x, y))
	}
	return g.cells[y][x]
}

// Set overwrites the cell at column x, row y. It panics when out of range.
func (g *Grid) Set(x, y int, c Cell) {
	if x < 0 || x >= Columns || y < 0 || y >= Rows {
		panic(fmt.Sprintf("tetris: grid access out of range (%d,%d)", x, y))
	}
	g.cells[y][x] = c
}

// Collides reports whether any cell of p lies outside the left, right or
// bottom bounds, or overlaps a filled cell. Cells above the top row only take
// part in the side checks, so pieces may spawn partially hidden.
func (g *Grid) Collides(p *Piece) bool {
	for _, c := range p.AbsoluteCells() {
		if c.X < 0 || c.X >= Columns || c.Y >= Rows {
			return true
		}
		if c.Y >= 0 && g.cells[c.Y][c.X].Filled {
			return true
		}
	}
	return false
}

// Lock writes the cells of p into the grid with the given color. Cells above
// the top row are dropped. It returns the number of cells written.
func (g *Grid) Lock(p *Piece, c color.RGBA) int {
	written := 0
	for _, pt := range p.AbsoluteCells() {
		if pt.Y < 0 {
			continue
		}
		g.Set(pt.X, pt.Y, Cell{Filled: true, Color: c})
		written++
	}
	return written
}

// RowComplete reports whether every column of row y is filled.
func (g *Grid) RowComplete(y int) bool {
	for x := range Columns {
		if !g.cells[y][x].Filled {
			return false
		}
	}
	return true
}

// ClearCompletedLines removes every complete row, shifting the rows above it
// down and inserting empty rows at the top. It returns the number of rows
// removed.
func (g *Grid) ClearCompletedLines() int {
	// Compact surviving rows towards the bottom in a single pass, then blank
	// whatever is left at the top.
	write := Rows - 1
	for read := Rows - 1; read >= 0; read-- {
		if g.RowComplete(read) {
			continue
		}
		if write != read {
			g.cells[write] = g.cells[read]
		}
		write--
	}

	cleared := write + 1
	for y := 0; y < cleared; y++ {
		g.clearRow(y)
	}
	return cleared
}

// FilledCount returns the number of filled cells.
func (g *Grid) FilledCount() int {
	n := 0
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x].Filled {
				n++
			}
		}
	}
	return n
}

// Snapshot returns a copy of the cells, indexed [row][column].
func (g *Grid) Snapshot() [Rows][Columns]Cell {
	return g.cells
}

func (g *Grid) clearRow(y int) {
	for x := range g.cells[y] {
		g.cells[y][x] = emptyCell
	}
}
