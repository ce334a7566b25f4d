// Package tetris implements the Tetris playfield engine: tetromino pieces, the
// 10x20 grid with its collision and line-clear rules, the frame-driven drop
// scheduler and the game controller that ties them together. The engine is
// advanced purely by the caller's elapsed time and never blocks.
package tetris

import (
	"fmt"
	"image/color"
)

// Kind is one of the seven tetromino shapes.
type Kind int

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L

	kindCount
)

// Kinds lists every shape in spawn-table order.
var Kinds = [kindCount]Kind{I, O, T, S, Z, J, L}

// Point is a (column, row) pair. Rows grow downwards.
type Point struct {
	X, Y int
}

type shape struct {
	name  string
	cells [4]Point
	color color.RGBA
}

// Canonical orientation of every shape. The second cell is the rotation pivot.
var shapes = [kindCount]shape{
	I: {"I", [4]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, color.RGBA{0x00, 0xf0, 0xf0, 0xff}},
	O: {"O", [4]Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, color.RGBA{0xf0, 0xf0, 0x00, 0xff}},
	T: {"T", [4]Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, color.RGBA{0xa0, 0x00, 0xf0, 0xff}},
	S: {"S", [4]Point{{1, 0}, {2, 0}, {0, 1}, {1, 1}}, color.RGBA{0x00, 0xf0, 0x00, 0xff}},
	Z: {"Z", [4]Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, color.RGBA{0xf0, 0x00, 0x00, 0xff}},
	J: {"J", [4]Point{{0, 0}, {0, 1}, {1, 1}, {2, 1}}, color.RGBA{0x00, 0x00, 0xf0, 0xff}},
	L: {"L", [4]Point{{2, 0}, {0, 1}, {1, 1}, {2, 1}}, color.RGBA{0xf0, 0xa0, 0x00, 0xff}},
}

func (k Kind) valid() bool {
	return k >= 0 && k < kindCount
}

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return shapes[k].name
}

// Color returns the color the shape is drawn and locked with.
func (k Kind) Color() color.RGBA {
	if !k.valid() {
		panic(fmt.Sprintf("tetris: invalid piece kind %d", int(k)))
	}
	return shapes[k].color
}

// Piece is a tetromino on the playfield: a shape, its four cell offsets in
// the current orientation and the grid position of its origin.
type Piece struct {
	Kind  Kind
	Cells [4]Point
	X, Y  int
}

// NewPiece creates a piece of the given kind in its canonical orientation
// with its origin at (x, y). It panics on an unknown kind.
func NewPiece(kind Kind, x, y int) *Piece {
	if !kind.valid() {
		panic(fmt.Sprintf("tetris: invalid piece kind %d", int(kind)))
	}
	return &Piece{
		Kind:  kind,
		Cells: shapes[kind].cells,
		X:     x,
		Y:     y,
	}
}

// Move translates the origin. No bounds checks are made.
func (p *Piece) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Rotate turns the piece a quarter turn around its pivot cell. The O piece
// ignores the call.
func (p *Piece) Rotate() {
	if p.Kind == O {
		return
	}

	pivot := p.Cells[1]
	for i, c := range p.Cells {
		dx := c.X - pivot.X
		dy := c.Y - pivot.Y
		p.Cells[i] = Point{X: pivot.X - dy, Y: pivot.Y + dx}
	}
}

// AbsoluteCells returns the grid coordinates of the piece's four cells.
func (p *Piece) AbsoluteCells() [4]Point {
	var out [4]Point
	for i, c := range p.Cells {
		out[i] = Point{X: p.X + c.X, Y: p.Y + c.Y}
	}
	return out
}

func (p *Piece) copy() *Piece {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
