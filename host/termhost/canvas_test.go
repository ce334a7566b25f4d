package termhost

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/arcade/input"
	"github.com/plus3/arcade/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{0xff, 0x00, 0x00, 0xff}
	green = color.RGBA{0x00, 0xff, 0x00, 0xff}
	black = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

func TestCanvasSize(t *testing.T) {
	assert.Equal(t, 53, Cols)
	assert.Equal(t, 20, Rows)
}

func TestFillRect(t *testing.T) {
	t.Run("block covers two columns", func(t *testing.T) {
		c := NewCanvas()
		c.FillRect(30, 60, 30, 30, red)

		assert.Equal(t, red, c.At(2, 2).BG)
		assert.Equal(t, red, c.At(3, 2).BG)
		assert.Equal(t, black, c.At(1, 2).BG)
		assert.Equal(t, black, c.At(4, 2).BG)
		assert.Equal(t, black, c.At(2, 1).BG)
		assert.Equal(t, black, c.At(2, 3).BG)
	})

	t.Run("thin rect misses every center", func(t *testing.T) {
		c := NewCanvas()
		c.FillRect(32, 62, 26, 4, red)
		for x := range Cols {
			for y := range Rows {
				require.Equal(t, black, c.At(x, y).BG)
			}
		}
	})

	t.Run("full screen", func(t *testing.T) {
		c := NewCanvas()
		c.FillRect(0, 0, scene.Width, scene.Height, green)
		assert.Equal(t, green, c.At(0, 0).BG)
		assert.Equal(t, green, c.At(Cols-1, Rows-1).BG)
	})

	t.Run("translucent fill blends", func(t *testing.T) {
		c := NewCanvas()
		c.FillRect(0, 0, 30, 30, red)
		c.FillRect(0, 0, 30, 30, color.NRGBA{0x00, 0x00, 0x00, 0x80})

		got := c.At(0, 0).BG
		assert.InDelta(t, 0x7f, int(got.R), 1)
		assert.Equal(t, uint8(0xff), got.A)
	})

	t.Run("translucent white lightens", func(t *testing.T) {
		c := NewCanvas()
		c.FillRect(0, 0, 30, 30, color.NRGBA{0xff, 0xff, 0xff, 0x33})
		assert.Equal(t, color.RGBA{0x33, 0x33, 0x33, 0xff}, c.At(0, 0).BG)
	})

	t.Run("opaque fill clears glyphs", func(t *testing.T) {
		c := NewCanvas()
		c.Text("X", 0, 20, red)
		require.Equal(t, 'X', c.At(0, 0).Ch)

		c.FillRect(0, 0, 30, 30, green)
		assert.Equal(t, ' ', c.At(0, 0).Ch)
	})
}

func TestStrokeRect(t *testing.T) {
	t.Run("cell sized rect gets brackets", func(t *testing.T) {
		c := NewCanvas()
		c.StrokeRect(60, 0, 30, 30, red)

		assert.Equal(t, '[', c.At(4, 0).Ch)
		assert.Equal(t, ']', c.At(5, 0).Ch)
		assert.Equal(t, red, c.At(4, 0).FG)
		assert.Equal(t, ' ', c.At(6, 0).Ch)
	})

	t.Run("translucent stroke keeps its hue", func(t *testing.T) {
		white := color.RGBA{0xff, 0xff, 0xff, 0xff}
		for _, col := range []color.Color{
			color.NRGBA{0xff, 0xff, 0xff, 0x50},
			color.RGBA{0x50, 0x50, 0x50, 0x50},
		} {
			c := NewCanvas()
			c.StrokeRect(60, 0, 30, 30, col)
			assert.Equal(t, white, c.At(4, 0).FG, "%#v", col)
			assert.Equal(t, '[', c.At(4, 0).Ch)
		}
	})

	t.Run("large rect gets a box", func(t *testing.T) {
		c := NewCanvas()
		c.StrokeRect(0, 0, 60, 90, red)

		assert.Equal(t, '┌', c.At(0, 0).Ch)
		assert.Equal(t, '┐', c.At(3, 0).Ch)
		assert.Equal(t, '└', c.At(0, 2).Ch)
		assert.Equal(t, '┘', c.At(3, 2).Ch)
		assert.Equal(t, '─', c.At(1, 0).Ch)
		assert.Equal(t, '│', c.At(0, 1).Ch)
		assert.Equal(t, ' ', c.At(1, 1).Ch)
	})
}

func TestLine(t *testing.T) {
	c := NewCanvas()
	c.Text("A", 0, 20, red)
	c.Line(0, 0, 90, 0, green)

	assert.Equal(t, 'A', c.At(0, 0).Ch, "existing glyphs are kept")
	assert.Equal(t, lineRune, c.At(1, 0).Ch)
	assert.Equal(t, lineRune, c.At(5, 0).Ch)
	assert.Equal(t, green, c.At(5, 0).FG)
	assert.Equal(t, ' ', c.At(6, 0).Ch, "the end point is excluded")
	assert.Equal(t, ' ', c.At(1, 1).Ch)
}

func TestText(t *testing.T) {
	c := NewCanvas()
	c.FillRect(0, 0, scene.Width, scene.Height, green)
	c.Text("SCORE 10", 500, 200, red)

	row := 6
	col := 500 / UnitsPerCol
	got := make([]rune, 0, 8)
	for x := col; x < col+8; x++ {
		got = append(got, c.At(x, row).Ch)
		assert.Equal(t, green, c.At(x, row).BG, "text keeps the background")
	}
	assert.Equal(t, "SCORE 10", string(got))
}

func TestTextClipsAtEdge(t *testing.T) {
	c := NewCanvas()
	c.Text("abcdef", float32((Cols-2)*UnitsPerCol), 20, red)
	assert.Equal(t, 'a', c.At(Cols-2, 0).Ch)
	assert.Equal(t, 'b', c.At(Cols-1, 0).Ch)
}

func TestAtOutOfRange(t *testing.T) {
	c := NewCanvas()
	assert.Equal(t, blank, c.At(-1, 0))
	assert.Equal(t, blank, c.At(0, Rows))
}

func TestBlit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 25)

	c := NewCanvas()
	c.FillRect(0, 0, 30, 30, red)
	c.Blit(screen, 2, 1)
	screen.Show()
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		key    tcell.Key
		r      rune
		want   input.Key
		wantOK bool
	}{
		{tcell.KeyLeft, 0, input.KeyLeft, true},
		{tcell.KeyRight, 0, input.KeyRight, true},
		{tcell.KeyDown, 0, input.KeyDown, true},
		{tcell.KeyUp, 0, input.KeyUp, true},
		{tcell.KeyEscape, 0, input.KeyEscape, true},
		{tcell.KeyEnter, 0, input.KeyEnter, true},
		{tcell.KeyRune, ' ', input.KeySpace, true},
		{tcell.KeyRune, 'q', 0, false},
		{tcell.KeyTab, 0, 0, false},
	}

	for _, tt := range tests {
		got, ok := mapKey(tt.key, tt.r)
		assert.Equal(t, tt.wantOK, ok, "key %v rune %q", tt.key, tt.r)
		if tt.wantOK {
			assert.Equal(t, tt.want, got)
		}
	}
}
