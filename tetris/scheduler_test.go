package tetris_test

import (
	"testing"

	"github.com/plus3/arcade/input"
	"github.com/plus3/arcade/tetris"
	"github.com/stretchr/testify/assert"
)

func TestDropInterval(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{1, 1.0},
		{2, 0.9},
		{5, 0.6},
		{10, 0.1},
		{11, 0.1},
		{30, 0.1},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, tetris.DropInterval(tt.level), 1e-9, "level %d", tt.level)
	}
}

func TestGravity(t *testing.T) {
	var g tetris.Gravity
	g.SetInterval(1.0)

	assert.False(t, g.Advance(0.5))
	assert.True(t, g.Advance(0.5))
	assert.False(t, g.Advance(0.25), "accumulator resets after firing")

	// a huge delta still fires only once and leaves no backlog
	assert.True(t, g.Advance(10))
	assert.False(t, g.Advance(0))
}

func TestRepeater(t *testing.T) {
	var r tetris.Repeater

	assert.True(t, r.Update(true, 0.016), "fires on the first active frame")
	assert.True(t, r.Held())
	assert.False(t, r.Update(true, 0.1))
	assert.False(t, r.Update(true, 0.05))
	assert.True(t, r.Update(true, 0.06), "fires once the initial delay has elapsed")

	assert.False(t, r.Update(true, 0.1))
	assert.True(t, r.Update(true, 0.06), "then every repeat delay")

	assert.False(t, r.Update(false, 0.016))
	assert.False(t, r.Held())
	assert.True(t, r.Update(true, 0.016), "pressing again fires immediately")
}

func TestDropSchedulerStep(t *testing.T) {
	t.Run("order of actions", func(t *testing.T) {
		d := tetris.NewDropScheduler(1)
		in := input.Of(input.KeyLeft, input.KeyRight, input.KeyDown, input.KeyUp, input.KeySpace)

		d.Step(0, 0)
		actions := d.Step(1.0, in)
		assert.Equal(t, []tetris.Action{
			tetris.ActionLeft,
			tetris.ActionRight,
			tetris.ActionDown,
			tetris.ActionRotate,
			tetris.ActionHardDrop,
			tetris.ActionGravity,
		}, actions)
	})

	t.Run("rotate and hard drop are edge triggered", func(t *testing.T) {
		d := tetris.NewDropScheduler(1)
		in := input.Of(input.KeyUp, input.KeySpace)

		d.Step(0, 0)
		assert.Equal(t, []tetris.Action{tetris.ActionRotate, tetris.ActionHardDrop}, d.Step(0.016, in))
		assert.Empty(t, d.Step(0.016, in))

		d.Step(0.016, 0)
		assert.Equal(t, []tetris.Action{tetris.ActionRotate}, d.Step(0.016, input.Of(input.KeyUp)))
	})

	t.Run("keys held at reset wait for a release", func(t *testing.T) {
		d := tetris.NewDropScheduler(1)
		in := input.Of(input.KeyUp, input.KeySpace)
		assert.Empty(t, d.Step(0.016, in))

		d.Step(0.016, 0)
		d.Reset(1)
		assert.Empty(t, d.Step(0.016, in))
		assert.Empty(t, d.Step(0.016, in))

		d.Step(0.016, 0)
		assert.Equal(t, []tetris.Action{tetris.ActionRotate, tetris.ActionHardDrop}, d.Step(0.016, in))
	})

	t.Run("held direction repeats", func(t *testing.T) {
		d := tetris.NewDropScheduler(1)
		in := input.Of(input.KeyRight)

		var fired int
		for range 10 {
			for _, a := range d.Step(0.0625, in) {
				if a == tetris.ActionRight {
					fired++
				}
			}
		}
		// immediately, once the initial delay runs out and once more after
		// the repeat delay
		assert.Equal(t, 3, fired)
	})

	t.Run("gravity follows the level", func(t *testing.T) {
		d := tetris.NewDropScheduler(10)
		assert.InDelta(t, 0.1, d.Gravity.Interval(), 1e-9)
		assert.Equal(t, []tetris.Action{tetris.ActionGravity}, d.Step(0.1, 0))

		d.Reset(1)
		assert.InDelta(t, 1.0, d.Gravity.Interval(), 1e-9)
		assert.Empty(t, d.Step(0.5, 0))
	})
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "harddrop", tetris.ActionHardDrop.String())
	assert.Equal(t, "unknown", tetris.Action(42).String())
}
