package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// swipeTracker turns left-button press/release pairs into swipes.
type swipeTracker struct {
	active bool
	startX int
	startY int
}

// track consumes a mouse message. It returns the completed swipe and true
// on release of a tracked press.
func (t *swipeTracker) track(msg tea.MouseMsg) (core.Swipe, bool) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return core.Swipe{}, false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		t.active = true
		t.startX, t.startY = msg.X, msg.Y
	case tea.MouseActionRelease:
		if !t.active {
			return core.Swipe{}, false
		}
		t.active = false
		return core.Swipe{DX: msg.X - t.startX, DY: msg.Y - t.startY}, true
	}
	return core.Swipe{}, false
}
