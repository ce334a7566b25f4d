package tetris

// EventKind classifies engine events.
type EventKind int

const (
	EventSpawn EventKind = iota
	EventLock
	EventLineClear
	EventLevelUp
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventLock:
		return "lock"
	case EventLineClear:
		return "lineclear"
	case EventLevelUp:
		return "levelup"
	case EventGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Event records a state transition of interest. Score and Level are the
// values after the transition.
type Event struct {
	Kind  EventKind
	Piece Kind
	Lines int
	Score int
	Level int
}

// Observer receives engine events after each update.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) OnEvent(e Event) { f(e) }
