package tetris

// EventKind tells listeners what happened during a lock.
type EventKind int

const (
	EventLinesCleared EventKind = iota + 1
	EventLevelUp
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a notification emitted by the engine after a lock has fully
// applied. Handlers observe the engine in its post-lock state.
type Event struct {
	Kind    EventKind
	Cleared int // rows removed by the lock
	Points  int // score awarded by the lock
	Score   int
	Level   int
	Lines   int
}

// EventHandler receives engine events. It must not block.
type EventHandler func(Event)
