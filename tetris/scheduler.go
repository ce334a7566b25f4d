package tetris

import "github.com/plus3/arcade/input"

// Auto-repeat timings, in seconds.
const (
	InitialRepeatDelay = 0.2
	RepeatDelay        = 0.15
)

// DropInterval returns the gravity interval in seconds for a level.
func DropInterval(level int) float64 {
	return max(0.1, 1.0-float64(level-1)*0.1)
}

// Gravity accumulates elapsed time and fires one drop per elapsed interval.
type Gravity struct {
	accumulated float64
	interval    float64
}

func (g *Gravity) SetInterval(seconds float64) {
	g.interval = seconds
}

func (g *Gravity) Interval() float64 {
	return g.interval
}

// Advance adds dt and reports whether a drop is due. At most one drop fires
// per call no matter how far dt overshoots the interval.
func (g *Gravity) Advance(dt float64) bool {
	g.accumulated += dt
	if g.accumulated >= g.interval {
		g.accumulated = 0
		return true
	}
	return false
}

func (g *Gravity) Reset() {
	g.accumulated = 0
}

// Repeater implements delayed auto-repeat for one held direction.
type Repeater struct {
	held      bool
	remaining float64
}

// Update reports whether the direction fires this frame. It fires on the
// first active frame, again after InitialRepeatDelay and then every
// RepeatDelay while active. Releasing re-arms the immediate fire.
func (r *Repeater) Update(active bool, dt float64) bool {
	if !active {
		r.held = false
		return false
	}
	if !r.held {
		r.held = true
		r.remaining = InitialRepeatDelay
		return true
	}
	r.remaining -= dt
	if r.remaining <= 0 {
		r.remaining = RepeatDelay
		return true
	}
	return false
}

func (r *Repeater) Held() bool {
	return r.held
}

// Action is a move request emitted by the scheduler.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionDown
	ActionRotate
	ActionHardDrop
	ActionGravity
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionDown:
		return "down"
	case ActionRotate:
		return "rotate"
	case ActionHardDrop:
		return "harddrop"
	case ActionGravity:
		return "gravity"
	default:
		return "unknown"
	}
}

// DropScheduler turns elapsed time and held keys into an ordered list of
// actions for a frame. It holds no reference to the grid or the pieces.
type DropScheduler struct {
	Gravity Gravity

	left, right, down Repeater
	prev              input.State
}

// NewDropScheduler creates a scheduler with the gravity interval of level.
func NewDropScheduler(level int) *DropScheduler {
	d := &DropScheduler{}
	d.Reset(level)
	return d
}

// Step advances all timers by dt and returns the actions due this frame, in
// the order left, right, down, rotate, hard drop, gravity. Rotate and hard
// drop fire only on the frame their key goes down.
func (d *DropScheduler) Step(dt float64, in input.State) []Action {
	actions := make([]Action, 0, 6)

	if d.left.Update(in.Held(input.KeyLeft), dt) {
		actions = append(actions, ActionLeft)
	}
	if d.right.Update(in.Held(input.KeyRight), dt) {
		actions = append(actions, ActionRight)
	}
	if d.down.Update(in.Held(input.KeyDown), dt) {
		actions = append(actions, ActionDown)
	}
	if in.Pressed(d.prev, input.KeyUp) {
		actions = append(actions, ActionRotate)
	}
	if in.Pressed(d.prev, input.KeySpace) {
		actions = append(actions, ActionHardDrop)
	}
	d.prev = in

	if d.Gravity.Advance(dt) {
		actions = append(actions, ActionGravity)
	}

	return actions
}

// Reset clears every timer. Every key counts as held until it is first seen
// released, so rotate and hard drop ignore keys carried over from before.
func (d *DropScheduler) Reset(level int) {
	d.left = Repeater{}
	d.right = Repeater{}
	d.down = Repeater{}
	d.prev = input.Of(input.Keys()...)
	d.Gravity.Reset()
	d.Gravity.SetInterval(DropInterval(level))
}
