package tetris

import (
	"time"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// PieceView is a detached copy of a piece for rendering.
type PieceView struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// Snapshot is a frozen copy of everything a renderer needs. Nothing in it
// aliases engine state, so it can be read after the engine moves on.
type Snapshot struct {
	Board       Board
	Current     *PieceView // nil before the first Start
	Next        *PieceView // nil before the first Start
	Score       int
	Level       int
	Lines       int
	Paused      bool
	GameOver    bool
	SpeedFactor float64
	Status      Status
	Interval    time.Duration
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Board:       e.board,
		Score:       e.score,
		Level:       e.level,
		Lines:       e.lines,
		Paused:      e.status == StatusPaused,
		GameOver:    e.status == StatusGameOver,
		SpeedFactor: e.speedFactor,
		Status:      e.status,
		Interval:    e.sched.Interval(),
	}
	if e.spawned {
		s.Current = viewOf(e.current)
		s.Next = viewOf(e.next)
	}
	return s
}

func viewOf(p Piece) *PieceView {
	return &PieceView{Kind: p.Kind, Shape: p.Shape.Clone(), X: p.Pos.X, Y: p.Pos.Y}
}

// GhostY returns the row the current piece would rest on after a hard drop.
// The second result is false when there is no current piece.
func (s Snapshot) GhostY() (int, bool) {
	if s.Current == nil {
		return 0, false
	}
	pos := core.Point{X: s.Current.X, Y: s.Current.Y}
	return pos.Y + DropDistance(&s.Board, s.Current.Shape, pos), true
}
