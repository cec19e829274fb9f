package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGestureClassify(t *testing.T) {
	cfg := GestureConfig{MinSwipe: 3, MaxTap: 1}

	tests := []struct {
		name  string
		swipe Swipe
		want  Action
	}{
		{"tap in place", Swipe{0, 0}, ActionRotate},
		{"tap with jitter", Swipe{1, -1}, ActionRotate},
		{"swipe left", Swipe{-5, 1}, ActionLeft},
		{"swipe right", Swipe{4, 0}, ActionRight},
		{"swipe down", Swipe{1, 6}, ActionHardDrop},
		{"swipe up", Swipe{0, -3}, ActionSoftDrop},
		{"too short horizontal", Swipe{2, 0}, ActionNone},
		{"horizontal jitter", Swipe{1, 0}, ActionNone},
		{"horizontal jitter left", Swipe{-1, 0}, ActionNone},
		{"too short vertical", Swipe{0, 2}, ActionNone},
		{"diagonal tie favours vertical", Swipe{4, 4}, ActionHardDrop},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cfg.Classify(tc.swipe))
		})
	}
}

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionRotate)
	f.Set(ActionLeft)

	assert.Equal(t, []Action{ActionLeft, ActionRotate, ActionLeft}, f.Actions)
	assert.True(t, f.Has(ActionRotate))
	assert.False(t, f.Has(ActionHardDrop))

	clone := f.Clone()
	f.Clear()
	assert.Empty(t, f.Actions)
	assert.Len(t, clone.Actions, 3)
}
