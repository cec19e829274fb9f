package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointAdd(t *testing.T) {
	p := Point{X: 4, Y: 0}
	assert.Equal(t, Point{X: 3, Y: 2}, p.Add(-1, 2))
	assert.Equal(t, Point{X: 4, Y: 0}, p, "Add must not mutate the receiver")
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	assert.Equal(t, 25, r.Right())
	assert.Equal(t, 25, r.Bottom())

	empty := NewRect(3, 3, 0, 0)
	assert.Equal(t, 3, empty.Right())
	assert.Equal(t, 3, empty.Bottom())
}

func TestAbs(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{5, 5},
		{-5, 5},
		{0, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Abs(tc.in), "Abs(%d)", tc.in)
	}
}
