package tetris

import (
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/plus3/arcade/input"
)

// Spawn origin of every new piece.
const (
	SpawnX = 3
	SpawnY = 0
)

// Points awarded per lock by number of lines cleared, before the level
// multiplier.
var linePoints = [5]int{0, 100, 300, 500, 800}

// State is the controller's position in the piece lifecycle.
type State int

const (
	StateSpawning State = iota
	StateFalling
	StateLocking
	StateLineClear
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateLineClear:
		return "lineclear"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Game is the Tetris controller. It exclusively owns the grid and the current
// and next pieces, and drives spawn, fall, lock, clear and respawn.
type Game struct {
	id      uuid.UUID
	grid    *Grid
	current *Piece
	next    *Piece
	sched   *DropScheduler
	rng     *rand.Rand
	logger  *slog.Logger

	score int
	level int
	lines int
	state State

	events []Event
}

// NewGame creates a session drawing pieces from rng. Call Start before the
// first Update.
func NewGame(rng *rand.Rand, logger *slog.Logger) *Game {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	id := uuid.New()
	return &Game{
		id:     id,
		grid:   NewGrid(),
		sched:  NewDropScheduler(1),
		rng:    rng,
		logger: logger.With(slog.String("session", id.String())),
		level:  1,
	}
}

// Start resets the session and spawns the first piece.
func (g *Game) Start() {
	g.grid.Reset()
	g.current = nil
	g.next = nil
	g.score = 0
	g.level = 1
	g.lines = 0
	g.events = g.events[:0]
	g.sched.Reset(g.level)

	g.logger.Info("tetris session started")
	g.spawn()
}

// Update advances the session by dt seconds with the given held keys. It does
// nothing once the game is over.
func (g *Game) Update(dt float64, in input.State) {
	if g.state == StateGameOver {
		return
	}

	for _, a := range g.sched.Step(dt, in) {
		if g.state == StateGameOver {
			return
		}
		switch a {
		case ActionLeft:
			g.MoveLeft()
		case ActionRight:
			g.MoveRight()
		case ActionDown, ActionGravity:
			g.MoveDown()
		case ActionRotate:
			g.Rotate()
		case ActionHardDrop:
			g.HardDrop()
		}
	}
}

// MoveLeft shifts the current piece one column left if it fits.
func (g *Game) MoveLeft() bool {
	return g.shift(-1)
}

// MoveRight shifts the current piece one column right if it fits.
func (g *Game) MoveRight() bool {
	return g.shift(1)
}

func (g *Game) shift(dx int) bool {
	if g.state != StateFalling {
		return false
	}
	g.current.Move(dx, 0)
	if g.grid.Collides(g.current) {
		g.current.Move(-dx, 0)
		return false
	}
	return true
}

// MoveDown moves the current piece one row down. When the piece cannot move
// it is locked, lines are cleared and the next piece spawns; MoveDown then
// returns false.
func (g *Game) MoveDown() bool {
	if g.state != StateFalling {
		return false
	}
	g.current.Move(0, 1)
	if g.grid.Collides(g.current) {
		g.current.Move(0, -1)
		g.lock()
		return false
	}
	return true
}

// Rotate turns the current piece a quarter turn. If the rotated piece
// collides it tries one column left, then one column right of the original
// position; if neither fits the piece is restored exactly.
func (g *Game) Rotate() bool {
	if g.state != StateFalling {
		return false
	}
	p := g.current

	p.Rotate()
	if !g.grid.Collides(p) {
		return true
	}
	p.Move(-1, 0)
	if !g.grid.Collides(p) {
		return true
	}
	p.Move(2, 0)
	if !g.grid.Collides(p) {
		return true
	}

	p.Move(-1, 0)
	p.Rotate()
	p.Rotate()
	p.Rotate()
	return false
}

// HardDrop moves the current piece down until it rests and locks it at once.
// It returns the number of rows the piece fell.
func (g *Game) HardDrop() int {
	if g.state != StateFalling {
		return 0
	}
	rows := g.dropDistance(g.current)
	g.current.Move(0, rows)
	g.lock()
	return rows
}

// GhostY returns the row the current piece's origin would land on after a
// hard drop.
func (g *Game) GhostY() int {
	if g.current == nil {
		return 0
	}
	return g.current.Y + g.dropDistance(g.current)
}

func (g *Game) dropDistance(p *Piece) int {
	probe := p.copy()
	rows := 0
	for {
		probe.Move(0, 1)
		if g.grid.Collides(probe) {
			return rows
		}
		rows++
	}
}

func (g *Game) lock() {
	g.state = StateLocking
	g.grid.Lock(g.current, g.current.Kind.Color())
	g.emit(EventLock, 0)

	g.state = StateLineClear
	if n := g.grid.ClearCompletedLines(); n > 0 {
		g.award(n)
	}

	g.spawn()
}

func (g *Game) award(lines int) {
	g.score += linePoints[min(lines, 4)] * g.level
	g.lines += lines
	g.emit(EventLineClear, lines)
	g.logger.Debug("lines cleared",
		slog.Int("lines", lines),
		slog.Int("score", g.score),
	)

	if level := g.score/1000 + 1; level > g.level {
		g.level = level
		g.sched.Gravity.SetInterval(DropInterval(level))
		g.emit(EventLevelUp, 0)
		g.logger.Debug("level up",
			slog.Int("level", level),
			slog.Float64("interval", g.sched.Gravity.Interval()),
		)
	}
}

func (g *Game) spawn() {
	g.state = StateSpawning
	if g.next == nil {
		g.next = g.randomPiece()
	}
	g.current = g.next
	g.next = g.randomPiece()
	g.emit(EventSpawn, 0)

	if g.grid.Collides(g.current) {
		g.state = StateGameOver
		g.emit(EventGameOver, 0)
		g.logger.Info("tetris session over",
			slog.Int("score", g.score),
			slog.Int("level", g.level),
			slog.Int("lines", g.lines),
		)
		return
	}
	g.state = StateFalling
}

func (g *Game) randomPiece() *Piece {
	return NewPiece(Kinds[g.rng.IntN(len(Kinds))], SpawnX, SpawnY)
}

func (g *Game) emit(kind EventKind, lines int) {
	e := Event{
		Kind:  kind,
		Lines: lines,
		Score: g.score,
		Level: g.level,
	}
	if g.current != nil {
		e.Piece = g.current.Kind
	}
	g.events = append(g.events, e)
}

// DrainEvents returns the events recorded since the last call.
func (g *Game) DrainEvents() []Event {
	if len(g.events) == 0 {
		return nil
	}
	out := make([]Event, len(g.events))
	copy(out, g.events)
	g.events = g.events[:0]
	return out
}

func (g *Game) ID() uuid.UUID         { return g.id }
func (g *Game) Grid() *Grid           { return g.grid }
func (g *Game) Score() int            { return g.score }
func (g *Game) Level() int            { return g.level }
func (g *Game) Lines() int            { return g.lines }
func (g *Game) State() State          { return g.state }
func (g *Game) IsOver() bool          { return g.state == StateGameOver }
func (g *Game) DropInterval() float64 { return g.sched.Gravity.Interval() }

// Current returns a copy of the falling piece.
func (g *Game) Current() *Piece { return g.current.copy() }

// Next returns a copy of the lookahead piece.
func (g *Game) Next() *Piece { return g.next.copy() }
