// Package input describes the logical keys the arcade reacts to and the
// per-frame snapshot of which of them are held. Hosts build a State once per
// frame and hand it to the active scene by value.
package input

import "strings"

// Key is a logical key. Hosts map their physical keys onto these.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyDown
	KeyUp
	KeySpace
	KeyEscape
	KeyEnter

	keyCount
)

var keyNames = [keyCount]string{
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyDown:   "down",
	KeyUp:     "up",
	KeySpace:  "space",
	KeyEscape: "escape",
	KeyEnter:  "enter",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Keys returns every logical key in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// State is the set of keys held during a single frame.
type State uint16

// Of builds a State with the given keys held.
func Of(keys ...Key) State {
	var s State
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

func (s State) Held(k Key) bool {
	return s&bit(k) != 0
}

func (s State) With(k Key) State {
	return s | bit(k)
}

func (s State) Without(k Key) State {
	return s &^ bit(k)
}

// Pressed reports whether k is held in s but was not held in prev.
func (s State) Pressed(prev State, k Key) bool {
	return s.Held(k) && !prev.Held(k)
}

func (s State) String() string {
	var held []string
	for k := Key(0); k < keyCount; k++ {
		if s.Held(k) {
			held = append(held, k.String())
		}
	}
	return "[" + strings.Join(held, " ") + "]"
}

func bit(k Key) State {
	if k < 0 || k >= keyCount {
		panic("input: key out of range")
	}
	return 1 << uint(k)
}
