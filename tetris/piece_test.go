package tetris_test

import (
	"testing"

	"github.com/plus3/arcade/tetris"
	"github.com/stretchr/testify/assert"
)

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, kind := range tetris.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			p := tetris.NewPiece(kind, 3, 0)
			want := p.Cells

			for range 4 {
				p.Rotate()
			}

			assert.Equal(t, want, p.Cells)
			assert.Equal(t, 3, p.X)
			assert.Equal(t, 0, p.Y)
		})
	}
}

func TestRotateO(t *testing.T) {
	p := tetris.NewPiece(tetris.O, 4, 2)
	want := p.Cells
	p.Rotate()
	assert.Equal(t, want, p.Cells)
}

func TestRotateAroundPivot(t *testing.T) {
	// T spawns as
	//
	//	. X .
	//	P X X
	//
	// with the pivot P being the second cell of the shape.
	p := tetris.NewPiece(tetris.T, 0, 0)
	p.Rotate()

	assert.Equal(t, [4]tetris.Point{{1, 2}, {0, 1}, {0, 2}, {0, 3}}, p.Cells)
	assert.Equal(t, tetris.Point{0, 1}, p.Cells[1], "pivot stays put")
}

func TestRotatePreservesCellCount(t *testing.T) {
	for _, kind := range tetris.Kinds {
		p := tetris.NewPiece(kind, 0, 0)
		for range 3 {
			p.Rotate()
			seen := make(map[tetris.Point]bool)
			for _, c := range p.Cells {
				seen[c] = true
			}
			assert.Len(t, seen, 4, "%s has overlapping cells", kind)
		}
	}
}

func TestMoveAndAbsoluteCells(t *testing.T) {
	p := tetris.NewPiece(tetris.I, 3, 0)
	assert.Equal(t, [4]tetris.Point{{3, 0}, {4, 0}, {5, 0}, {6, 0}}, p.AbsoluteCells())

	p.Move(-5, -2)
	assert.Equal(t, [4]tetris.Point{{-2, -2}, {-1, -2}, {0, -2}, {1, -2}}, p.AbsoluteCells())

	// relative cells are untouched by moves
	assert.Equal(t, [4]tetris.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, p.Cells)
}

func TestInvalidKind(t *testing.T) {
	assert.Panics(t, func() { tetris.NewPiece(tetris.Kind(7), 0, 0) })
	assert.Panics(t, func() { tetris.Kind(-1).Color() })
	assert.Equal(t, "Kind(9)", tetris.Kind(9).String())
}

func TestKindColors(t *testing.T) {
	tests := []struct {
		kind    tetris.Kind
		r, g, b uint8
	}{
		{tetris.I, 0x00, 0xf0, 0xf0},
		{tetris.O, 0xf0, 0xf0, 0x00},
		{tetris.T, 0xa0, 0x00, 0xf0},
		{tetris.S, 0x00, 0xf0, 0x00},
		{tetris.Z, 0xf0, 0x00, 0x00},
		{tetris.J, 0x00, 0x00, 0xf0},
		{tetris.L, 0xf0, 0xa0, 0x00},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			c := tt.kind.Color()
			assert.Equal(t, tt.r, c.R)
			assert.Equal(t, tt.g, c.G)
			assert.Equal(t, tt.b, c.B)
		})
	}
}
