package tetris

import (
	"fmt"
	"time"
)

// Status is the state machine's current state.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Engine owns a single game: the board, the falling and next pieces, the
// session counters and the drop scheduler. Every mutation goes through its
// methods, and a lock applies completely before the method returns.
//
// Engine is not safe for concurrent use. Drive it from one goroutine; both
// timer ticks (Advance) and player commands must be delivered there.
type Engine struct {
	board   Board
	current Piece
	next    Piece
	spawned bool

	gen     *Generator
	timing  Timing
	scoring Scoring
	sched   *Scheduler

	status      Status
	score       int
	level       int
	lines       int
	speedFactor float64
	lastLock    LockResult

	onEvent EventHandler
}

// Option configures an Engine.
type Option func(*Engine)

// WithGenerator sets the piece source.
func WithGenerator(g *Generator) Option {
	return func(e *Engine) { e.gen = g }
}

// WithTiming replaces the gravity curve.
func WithTiming(t Timing) Option {
	return func(e *Engine) { e.timing = t }
}

// WithScoring replaces the score table and level pace.
func WithScoring(s Scoring) Option {
	return func(e *Engine) { e.scoring = s }
}

// WithSpeedFactor sets the initial speed factor.
func WithSpeedFactor(f float64) Option {
	return func(e *Engine) { e.speedFactor = f }
}

// WithEventHandler registers a listener for lock events.
func WithEventHandler(h EventHandler) Option {
	return func(e *Engine) { e.onEvent = h }
}

// NewEngine creates an idle engine. Call Start to begin playing.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		timing:      DefaultTiming(),
		scoring:     DefaultScoring(),
		speedFactor: 1,
		level:       1,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.timing.Min <= 0 || e.timing.Base < e.timing.Min || e.timing.Decrement < 0 {
		return nil, fmt.Errorf("tetris: invalid timing %+v", e.timing)
	}
	if err := e.timing.CheckSpeedFactor(e.speedFactor); err != nil {
		return nil, err
	}
	if e.gen == nil {
		e.gen = NewSeededGenerator(time.Now().UnixNano())
	}

	e.sched = NewScheduler(e.timing.Interval(1, e.speedFactor))
	return e, nil
}

// Start begins a fresh game. It is equivalent to Reset.
func (e *Engine) Start() {
	e.Reset()
}

// Reset clears the board and counters, spawns a current and next piece and
// enters StatusPlaying. It is valid from any state.
func (e *Engine) Reset() {
	e.board = Board{}
	e.score = 0
	e.level = 1
	e.lines = 0
	e.lastLock = LockResult{}

	e.current = e.gen.Next()
	e.next = e.gen.Next()
	e.spawned = true

	e.sched.SetInterval(e.timing.Interval(e.level, e.speedFactor))
	e.sched.Arm()
	e.status = StatusPlaying
}

// Stop cancels the drop timer and returns to StatusIdle. The board, pieces
// and counters stay as they were so the last frame can still be drawn.
func (e *Engine) Stop() {
	e.sched.Disarm()
	e.status = StatusIdle
}

// MoveLeft shifts the piece one column left if the destination is free.
func (e *Engine) MoveLeft() bool {
	return e.shift(-1)
}

// MoveRight shifts the piece one column right if the destination is free.
func (e *Engine) MoveRight() bool {
	return e.shift(1)
}

func (e *Engine) shift(dx int) bool {
	if e.status != StatusPlaying {
		return false
	}
	moved := e.current.Moved(dx, 0)
	if !IsValidMove(&e.board, moved.Shape, moved.Pos) {
		return false
	}
	e.current = moved
	return true
}

// MoveDown moves the piece one row down. When the row below is blocked the
// piece locks instead and MoveDown returns false.
func (e *Engine) MoveDown() bool {
	if e.status != StatusPlaying {
		return false
	}
	moved := e.current.Moved(0, 1)
	if IsValidMove(&e.board, moved.Shape, moved.Pos) {
		e.current = moved
		return true
	}
	e.lock()
	return false
}

// Rotate turns the piece clockwise in place. A rotation that would overlap
// the walls, floor or stack is discarded.
func (e *Engine) Rotate() bool {
	if e.status != StatusPlaying {
		return false
	}
	rotated := e.current.Rotated()
	if !IsValidMove(&e.board, rotated.Shape, rotated.Pos) {
		return false
	}
	e.current = rotated
	return true
}

// HardDrop moves the piece to its lowest legal row and locks it there.
func (e *Engine) HardDrop() bool {
	if e.status != StatusPlaying {
		return false
	}
	e.current.Pos.Y += DropDistance(&e.board, e.current.Shape, e.current.Pos)
	e.MoveDown()
	return true
}

// TogglePause switches between StatusPlaying and StatusPaused. Pausing
// cancels the pending drop; resuming starts a fresh interval.
func (e *Engine) TogglePause() bool {
	switch e.status {
	case StatusPlaying:
		e.status = StatusPaused
		e.sched.Disarm()
	case StatusPaused:
		e.status = StatusPlaying
		e.sched.Arm()
	default:
		return false
	}
	return true
}

// SetSpeedFactor changes the speed multiplier. The new interval applies to
// the ticks that follow; the falling piece is not touched.
func (e *Engine) SetSpeedFactor(f float64) error {
	if err := e.timing.CheckSpeedFactor(f); err != nil {
		return err
	}
	e.speedFactor = f
	e.sched.SetInterval(e.timing.Interval(e.level, f))
	return nil
}

// Advance feeds elapsed time to the drop timer and runs every gravity tick
// that fell due. It does nothing unless the game is playing.
func (e *Engine) Advance(dt time.Duration) {
	if e.status != StatusPlaying {
		return
	}
	due := e.sched.Advance(dt)
	for i := 0; i < due && e.status == StatusPlaying; i++ {
		e.MoveDown()
	}
}

// lock merges the current piece, clears rows, updates score and level,
// promotes the next piece and checks for game over.
func (e *Engine) lock() {
	Merge(&e.board, e.current)
	cleared := ClearLines(&e.board)

	res := LockResult{Cleared: cleared, Level: e.level}
	if cleared > 0 {
		res.Points = e.scoring.Points(cleared, e.level)
		e.score += res.Points
		e.lines += cleared

		if lvl := e.scoring.LevelFor(e.lines); lvl > e.level {
			e.level = lvl
			res.LevelUp = true
			e.sched.SetInterval(e.timing.Interval(e.level, e.speedFactor))
		}
		res.Level = e.level
	}

	e.current = e.next
	e.current.Pos = SpawnPoint
	e.next = e.gen.Next()

	if !IsValidMove(&e.board, e.current.Shape, e.current.Pos) {
		e.status = StatusGameOver
		e.sched.Disarm()
		res.GameOver = true
	}
	e.lastLock = res

	if res.Cleared > 0 {
		e.emit(EventLinesCleared, res)
	}
	if res.LevelUp {
		e.emit(EventLevelUp, res)
	}
	if res.GameOver {
		e.emit(EventGameOver, res)
	}
}

func (e *Engine) emit(kind EventKind, res LockResult) {
	if e.onEvent == nil {
		return
	}
	e.onEvent(Event{
		Kind:    kind,
		Cleared: res.Cleared,
		Points:  res.Points,
		Score:   e.score,
		Level:   e.level,
		Lines:   e.lines,
	})
}

// Status returns the current state.
func (e *Engine) Status() Status { return e.status }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// Lines returns the total number of cleared rows.
func (e *Engine) Lines() int { return e.lines }

// SpeedFactor returns the current speed multiplier.
func (e *Engine) SpeedFactor() float64 { return e.speedFactor }

// Interval returns the current drop interval.
func (e *Engine) Interval() time.Duration { return e.sched.Interval() }

// LastLock returns the outcome of the most recent lock.
func (e *Engine) LastLock() LockResult { return e.lastLock }

// Board returns a copy of the locked cells.
func (e *Engine) Board() Board { return e.board }

// Current returns a copy of the falling piece.
func (e *Engine) Current() Piece { return e.current.Clone() }
