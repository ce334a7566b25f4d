package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/arcade/input"
)

var keymap = map[input.Key][]ebiten.Key{
	input.KeyLeft:   {ebiten.KeyArrowLeft},
	input.KeyRight:  {ebiten.KeyArrowRight},
	input.KeyDown:   {ebiten.KeyArrowDown},
	input.KeyUp:     {ebiten.KeyArrowUp},
	input.KeySpace:  {ebiten.KeySpace},
	input.KeyEscape: {ebiten.KeyEscape},
	input.KeyEnter:  {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
}

// PollInput returns the arcade keys currently held.
func PollInput() input.State {
	return stateFrom(ebiten.IsKeyPressed)
}

func stateFrom(pressed func(ebiten.Key) bool) input.State {
	var s input.State
	for k, keys := range keymap {
		for _, ek := range keys {
			if pressed(ek) {
				s = s.With(k)
				break
			}
		}
	}
	return s
}
