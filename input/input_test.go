package input_test

import (
	"testing"
	"time"

	"github.com/plus3/arcade/input"
	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	s := input.Of(input.KeyLeft, input.KeySpace)

	assert.True(t, s.Held(input.KeyLeft))
	assert.True(t, s.Held(input.KeySpace))
	assert.False(t, s.Held(input.KeyRight))

	s = s.Without(input.KeyLeft).With(input.KeyEnter)
	assert.False(t, s.Held(input.KeyLeft))
	assert.True(t, s.Held(input.KeyEnter))
	assert.Equal(t, "[space enter]", s.String())
}

func TestStatePressed(t *testing.T) {
	prev := input.Of(input.KeyUp)
	cur := input.Of(input.KeyUp, input.KeyDown)

	assert.False(t, cur.Pressed(prev, input.KeyUp), "held across frames is not a press")
	assert.True(t, cur.Pressed(prev, input.KeyDown))
	assert.False(t, prev.Pressed(cur, input.KeyDown), "release is not a press")
}

func TestKeys(t *testing.T) {
	keys := input.Keys()
	assert.Len(t, keys, 7)
	assert.Equal(t, input.KeyLeft, keys[0])
	assert.Equal(t, "enter", keys[len(keys)-1].String())
	assert.Equal(t, "unknown", input.Key(99).String())
}

func TestLatch(t *testing.T) {
	latch := input.NewLatch(100 * time.Millisecond)

	latch.Press(input.KeyLeft)
	s := latch.Advance(0.05)
	assert.True(t, s.Held(input.KeyLeft))

	// a repeat event refreshes the hold window
	latch.Press(input.KeyLeft)
	s = latch.Advance(0.08)
	assert.True(t, s.Held(input.KeyLeft))

	s = latch.Advance(0.05)
	assert.False(t, s.Held(input.KeyLeft))

	latch.Press(input.KeyEnter)
	latch.Release(input.KeyEnter)
	assert.Equal(t, input.State(0), latch.Advance(0))
}
