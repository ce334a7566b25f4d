package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// The debug font is 6x16 pixels; text is drawn at twice that size.
const (
	textScale   = 2
	glyphWidth  = 6
	glyphHeight = 16
	ascent      = 12
)

// Surface draws onto an ebiten image. The image is expected to have the
// logical size; ebiten scales it to the window.
type Surface struct {
	img     *ebiten.Image
	scratch *ebiten.Image
}

func NewSurface(img *ebiten.Image) *Surface {
	return &Surface{img: img}
}

// Reset points the surface at a new target, keeping the text scratch image.
func (s *Surface) Reset(img *ebiten.Image) {
	s.img = img
}

func (s *Surface) FillRect(x, y, w, h float32, c color.Color) {
	vector.DrawFilledRect(s.img, x, y, w, h, c, false)
}

func (s *Surface) StrokeRect(x, y, w, h float32, c color.Color) {
	vector.StrokeRect(s.img, x, y, w, h, 1, c, false)
}

func (s *Surface) Line(x0, y0, x1, y1 float32, c color.Color) {
	vector.StrokeLine(s.img, x0, y0, x1, y1, 1, c, false)
}

// Text renders white debug glyphs into a scratch image and copies them
// scaled and tinted with c.
func (s *Surface) Text(str string, x, y float32, c color.Color) {
	if str == "" {
		return
	}
	w, h := len(str)*glyphWidth, glyphHeight
	if s.scratch == nil || s.scratch.Bounds().Dx() < w {
		s.scratch = ebiten.NewImage(max(w, 256), h)
	}
	s.scratch.Clear()
	ebitenutil.DebugPrintAt(s.scratch, str, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(float64(x), float64(y)-ascent*textScale)
	op.ColorScale.ScaleWithColor(c)
	s.img.DrawImage(s.scratch, op)
}
