package tetris

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

func newTestEngine(t *testing.T, kinds []Kind, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithGenerator(NewGenerator(&seqSource{kinds: kinds}))}, opts...)
	e, err := NewEngine(opts...)
	require.NoError(t, err)
	return e
}

func TestNewEngineIsIdle(t *testing.T) {
	e := newTestEngine(t, []Kind{KindO})

	assert.Equal(t, StatusIdle, e.Status())
	assert.Equal(t, 1, e.Level())
	assert.Equal(t, 800*time.Millisecond, e.Interval())

	snap := e.Snapshot()
	assert.Nil(t, snap.Current)
	assert.Nil(t, snap.Next)

	assert.False(t, e.MoveLeft())
	assert.False(t, e.MoveDown())
	assert.False(t, e.HardDrop())
	assert.False(t, e.TogglePause())
}

func TestNewEngineRejectsInvalidSettings(t *testing.T) {
	for _, f := range []float64{0, -0.5, math.NaN(), math.Inf(1), 1e10, 1e-11} {
		_, err := NewEngine(WithSpeedFactor(f))
		assert.ErrorIs(t, err, ErrInvalidSpeedFactor, "%v", f)
	}

	_, err := NewEngine(WithTiming(Timing{Base: 50 * time.Millisecond, Min: 100 * time.Millisecond}))
	assert.Error(t, err)
}

func TestStartSpawnsCurrentAndNext(t *testing.T) {
	e := newTestEngine(t, []Kind{KindT, KindI, KindZ})
	e.Start()

	assert.Equal(t, StatusPlaying, e.Status())
	assert.Equal(t, KindT, e.Current().Kind)
	assert.Equal(t, SpawnPoint, e.Current().Pos)

	snap := e.Snapshot()
	require.NotNil(t, snap.Next)
	assert.Equal(t, KindI, snap.Next.Kind)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 0, snap.Lines)
	assert.Equal(t, 1, snap.Level)
}

func TestOPieceFallsThenLocks(t *testing.T) {
	e := newTestEngine(t, []Kind{KindO})
	e.Start()

	for i := 0; i < Height-2; i++ {
		require.True(t, e.MoveDown(), "move %d", i+1)
	}
	assert.Equal(t, Height-2, e.Current().Pos.Y, "bottom row of the piece sits on row 19")
	assert.Equal(t, 0, e.Board().Filled(), "nothing locked yet")

	assert.False(t, e.MoveDown(), "the blocked move locks")

	b := e.Board()
	assert.Equal(t, 4, b.Filled())
	for _, c := range []core.Point{{X: 4, Y: 18}, {X: 5, Y: 18}, {X: 4, Y: 19}, {X: 5, Y: 19}} {
		assert.Equal(t, int(KindO), b[c.Y][c.X], "cell %v", c)
	}
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 0, e.Lines())
	assert.Equal(t, SpawnPoint, e.Current().Pos, "next piece spawned")
	assert.Equal(t, StatusPlaying, e.Status())
}

func TestHardDropMatchesRepeatedMoveDown(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			seq := []Kind{k, KindO, KindI}
			a := newTestEngine(t, seq)
			b := newTestEngine(t, seq)
			a.Start()
			b.Start()

			obstacle := func(e *Engine) {
				e.board[15][3] = int(KindS)
				fillRow(&e.board, 19, int(KindJ), 0)
			}
			obstacle(a)
			obstacle(b)

			a.MoveLeft()
			b.MoveLeft()

			assert.True(t, a.HardDrop())
			for b.MoveDown() {
			}

			assert.Equal(t, b.Board(), a.Board())
			assert.Equal(t, b.Score(), a.Score())
			assert.Equal(t, b.Lines(), a.Lines())
			assert.Equal(t, b.LastLock(), a.LastLock())
		})
	}
}

func TestShiftBlockedByWalls(t *testing.T) {
	e := newTestEngine(t, []Kind{KindO})
	e.Start()

	for i := 0; i < SpawnPoint.X; i++ {
		require.True(t, e.MoveLeft())
	}
	assert.False(t, e.MoveLeft())
	assert.Equal(t, 0, e.Current().Pos.X)

	for i := 0; i < Width-2; i++ {
		require.True(t, e.MoveRight())
	}
	assert.False(t, e.MoveRight())
	assert.Equal(t, Width-2, e.Current().Pos.X)
}

func TestShiftBlockedByStack(t *testing.T) {
	e := newTestEngine(t, []Kind{KindO})
	e.Start()
	e.board[1][3] = int(KindT)

	assert.False(t, e.MoveLeft())
	assert.Equal(t, SpawnPoint, e.Current().Pos)
}

func TestRotate(t *testing.T) {
	e := newTestEngine(t, []Kind{KindI})
	e.Start()

	orig := e.Current().Shape
	require.True(t, e.Rotate())
	assert.True(t, Rotate(orig).Equal(e.Current().Shape))
	assert.Equal(t, SpawnPoint, e.Current().Pos)
}

func TestRotateRejectedOnCollision(t *testing.T) {
	e := newTestEngine(t, []Kind{KindI})
	e.Start()
	// The vertical I would cover column SpawnPoint.X+2, rows 0-3.
	e.board[3][SpawnPoint.X+2] = int(KindZ)

	orig := e.Current().Shape
	assert.False(t, e.Rotate())
	assert.True(t, orig.Equal(e.Current().Shape))
}

func TestRotateRejectedAtWall(t *testing.T) {
	e := newTestEngine(t, []Kind{KindI})
	e.Start()
	require.True(t, e.Rotate())
	// Vertical I sits in matrix column 2; push the matrix so that column
	// touches the right wall, where rotating back to horizontal overflows.
	for e.MoveRight() {
	}
	assert.Equal(t, Width-3, e.Current().Pos.X)

	before := e.Current()
	assert.False(t, e.Rotate())
	assert.Equal(t, before, e.Current())
}

func TestLineClearScoresWithLevelBeforeLock(t *testing.T) {
	var events []Event
	e := newTestEngine(t, []Kind{KindO}, WithEventHandler(func(ev Event) { events = append(events, ev) }))
	e.Start()
	e.level = 3
	e.lines = 20
	fillRow(&e.board, 18, int(KindL), 4, 5)
	fillRow(&e.board, 19, int(KindL), 4, 5)

	e.HardDrop()

	assert.Equal(t, 900, e.Score())
	assert.Equal(t, 22, e.Lines())
	assert.Equal(t, 3, e.Level())
	assert.Equal(t, 0, e.Board().Filled())
	assert.Equal(t, LockResult{Cleared: 2, Points: 900, Level: 3}, e.LastLock())

	require.Len(t, events, 1)
	assert.Equal(t, EventLinesCleared, events[0].Kind)
	assert.Equal(t, 2, events[0].Cleared)
	assert.Equal(t, 900, events[0].Score)
}

func TestLevelUpShortensInterval(t *testing.T) {
	var kinds []EventKind
	e := newTestEngine(t, []Kind{KindO}, WithEventHandler(func(ev Event) { kinds = append(kinds, ev.Kind) }))
	e.Start()
	e.lines = 9
	fillRow(&e.board, 19, int(KindL), 4, 5)

	e.HardDrop()

	assert.Equal(t, 10, e.Lines())
	assert.Equal(t, 2, e.Level())
	assert.Equal(t, 100, e.Score(), "points use the level before the lock")
	assert.Equal(t, 750*time.Millisecond, e.Interval())
	assert.True(t, e.LastLock().LevelUp)
	assert.Equal(t, []EventKind{EventLinesCleared, EventLevelUp}, kinds)

	// The upper half of the O drops into the cleared row.
	b := e.Board()
	assert.Equal(t, int(KindO), b[19][4])
	assert.Equal(t, int(KindO), b[19][5])
	assert.Equal(t, 2, b.Filled())
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	var last Event
	e := newTestEngine(t, []Kind{KindO}, WithEventHandler(func(ev Event) { last = ev }))
	e.Start()
	e.board[2][4] = int(KindT)

	assert.False(t, e.MoveDown())

	assert.Equal(t, StatusGameOver, e.Status())
	assert.True(t, e.LastLock().GameOver)
	assert.False(t, e.sched.Armed(), "no further ticks after game over")
	assert.Equal(t, EventGameOver, last.Kind)

	board := e.Board()
	e.Advance(10 * time.Second)
	assert.False(t, e.MoveLeft())
	assert.False(t, e.HardDrop())
	assert.False(t, e.TogglePause())
	assert.Equal(t, board, e.Board())

	snap := e.Snapshot()
	assert.True(t, snap.GameOver)
	assert.False(t, snap.Paused)

	e.Reset()
	assert.Equal(t, StatusPlaying, e.Status())
	assert.Equal(t, 0, e.Board().Filled())
	assert.Equal(t, 0, e.Score())
	assert.True(t, e.sched.Armed())
}

func TestPauseBlocksActionsAndGravity(t *testing.T) {
	e := newTestEngine(t, []Kind{KindT})
	e.Start()

	require.True(t, e.TogglePause())
	assert.Equal(t, StatusPaused, e.Status())
	assert.True(t, e.Snapshot().Paused)

	assert.False(t, e.MoveLeft())
	assert.False(t, e.MoveRight())
	assert.False(t, e.Rotate())
	assert.False(t, e.MoveDown())
	assert.False(t, e.HardDrop())
	e.Advance(5 * time.Second)
	assert.Equal(t, SpawnPoint, e.Current().Pos)

	require.True(t, e.TogglePause())
	assert.Equal(t, StatusPlaying, e.Status())
	assert.True(t, e.MoveLeft())
}

func TestAdvanceRunsDueTicks(t *testing.T) {
	e := newTestEngine(t, []Kind{KindT})
	e.Start()

	e.Advance(799 * time.Millisecond)
	assert.Equal(t, 0, e.Current().Pos.Y)

	e.Advance(time.Millisecond)
	assert.Equal(t, 1, e.Current().Pos.Y)

	e.Advance(1600 * time.Millisecond)
	assert.Equal(t, 3, e.Current().Pos.Y)
}

func TestStopFreezesState(t *testing.T) {
	e := newTestEngine(t, []Kind{KindJ})
	e.Start()
	require.True(t, e.MoveDown())

	e.Stop()

	assert.Equal(t, StatusIdle, e.Status())
	assert.False(t, e.MoveDown())
	e.Advance(time.Minute)

	snap := e.Snapshot()
	require.NotNil(t, snap.Current)
	assert.Equal(t, 1, snap.Current.Y)
}

func TestSetSpeedFactor(t *testing.T) {
	e := newTestEngine(t, []Kind{KindT})
	e.Start()

	require.NoError(t, e.SetSpeedFactor(2))
	assert.Equal(t, 400*time.Millisecond, e.Interval())
	assert.InDelta(t, 2.0, e.SpeedFactor(), 1e-9)

	assert.ErrorIs(t, e.SetSpeedFactor(0), ErrInvalidSpeedFactor)
	assert.ErrorIs(t, e.SetSpeedFactor(math.NaN()), ErrInvalidSpeedFactor)
	assert.ErrorIs(t, e.SetSpeedFactor(1e10), ErrInvalidSpeedFactor)
	assert.ErrorIs(t, e.SetSpeedFactor(1e-11), ErrInvalidSpeedFactor)
	assert.Equal(t, 400*time.Millisecond, e.Interval())
	assert.InDelta(t, 2.0, e.SpeedFactor(), 1e-9, "rejected factors are not stored")

	require.NoError(t, e.SetSpeedFactor(0.5))
	assert.Equal(t, 1600*time.Millisecond, e.Interval())
	assert.Equal(t, SpawnPoint, e.Current().Pos, "speed change does not move the piece")
}

func TestSnapshotIsDetached(t *testing.T) {
	e := newTestEngine(t, []Kind{KindL})
	e.Start()

	snap := e.Snapshot()
	snap.Board[0][0] = 7
	snap.Current.Shape[0][0] = 9

	assert.Equal(t, Empty, e.Board()[0][0])
	assert.NotEqual(t, 9, e.Current().Shape[0][0])
}

func TestGhostY(t *testing.T) {
	e := newTestEngine(t, []Kind{KindO})
	e.Start()

	gy, ok := e.Snapshot().GhostY()
	require.True(t, ok)
	assert.Equal(t, Height-2, gy)

	e.board[12][5] = int(KindT)
	gy, _ = e.Snapshot().GhostY()
	assert.Equal(t, 10, gy)

	_, ok = Snapshot{}.GhostY()
	assert.False(t, ok)
}

func TestRandomPlayKeepsStateConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	e, err := NewEngine(WithGenerator(NewSeededGenerator(99)))
	require.NoError(t, err)
	e.Start()

	moves := []func() bool{e.MoveLeft, e.MoveRight, e.Rotate, e.MoveDown, e.HardDrop}
	for i := 0; i < 5000; i++ {
		if e.Status() == StatusGameOver {
			e.Reset()
		}
		moves[rng.Intn(len(moves))]()

		require.Equal(t, e.Lines()/10+1, e.Level())
		require.GreaterOrEqual(t, e.Score(), 0)

		b := e.Board()
		for y := range Height {
			for x := range Width {
				v := b[y][x]
				require.True(t, v >= Empty && v <= int(KindZ), "cell (%d,%d)=%d", x, y, v)
			}
			require.False(t, b.RowFull(y), "full rows never survive a lock")
		}
		if e.Status() == StatusPlaying {
			cur := e.Current()
			require.True(t, IsValidMove(&b, cur.Shape, cur.Pos))
		}
	}
}
