package core

// Swipe is the displacement between a pointer press and its release, in cells.
// DX grows to the right and DY grows downward.
type Swipe struct {
	DX, DY int
}

// GestureConfig holds the thresholds used to classify swipes.
type GestureConfig struct {
	// MinSwipe is the displacement along the dominant axis needed to count as a swipe.
	MinSwipe int
	// MaxTap is the largest displacement on both axes still treated as a tap.
	MaxTap int
}

// DefaultGestureConfig returns thresholds tuned for terminal cells.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{MinSwipe: 3, MaxTap: 1}
}

// Classify translates a swipe into an action.
//
// A horizontal swipe shifts the piece, a downward swipe hard-drops,
// an upward swipe soft-drops and a tap rotates. A mostly horizontal
// movement never rotates; short ones map to ActionNone, as does any
// vertical movement too long for a tap and too short for a swipe.
func (c GestureConfig) Classify(s Swipe) Action {
	ax, ay := Abs(s.DX), Abs(s.DY)

	if ax > ay {
		if ax < c.MinSwipe {
			return ActionNone
		}
		if s.DX < 0 {
			return ActionLeft
		}
		return ActionRight
	}

	if ay >= c.MinSwipe {
		if s.DY > 0 {
			return ActionHardDrop
		}
		return ActionSoftDrop
	}
	return c.tap(ax, ay)
}

func (c GestureConfig) tap(ax, ay int) Action {
	if ax <= c.MaxTap && ay <= c.MaxTap {
		return ActionRotate
	}
	return ActionNone
}
