package menu

import (
	"image/color"

	"github.com/plus3/arcade/scene"
)

// Approximate advance of one glyph, used to center text.
const glyphWidth = 12

var (
	backgroundTop    = color.RGBA{0x23, 0x25, 0x26, 0xff}
	backgroundBottom = color.RGBA{0x41, 0x43, 0x45, 0xff}
	titleColor       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	optionColor      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	selectedColor    = color.RGBA{0x00, 0xff, 0x00, 0xff}
	hintColor        = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
)

const (
	titleY     = 130
	firstItemY = 300
	itemStep   = 60
	hintY      = 520
	bands      = 12
)

func (m *Scene) Render(s scene.Surface) {
	drawGradient(s)

	centered(s, m.cfg.Title, titleY, titleColor)

	if len(m.entries) == 0 {
		centered(s, "no games registered", firstItemY, hintColor)
	}
	for i, e := range m.entries {
		y := float32(firstItemY + i*itemStep)
		if i == m.selected {
			centered(s, "> "+e.Title+" <", y, selectedColor)
			continue
		}
		centered(s, e.Title, y, optionColor)
	}

	centered(s, "UP/DOWN: select  ENTER: play  ESC: quit", hintY, hintColor)
}

// drawGradient approximates a vertical gradient with horizontal bands.
func drawGradient(s scene.Surface) {
	const h = float32(scene.Height) / bands
	for i := range bands {
		t := float64(i) / float64(bands-1)
		s.FillRect(0, float32(i)*h, scene.Width, h, lerp(backgroundTop, backgroundBottom, t))
	}
}

func centered(s scene.Surface, text string, y float32, c color.Color) {
	x := float32(scene.Width)/2 - float32(len(text)*glyphWidth)/2
	s.Text(text, x, y, c)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}
