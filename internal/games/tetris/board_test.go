package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

func TestIsValidMove(t *testing.T) {
	o := NewPiece(KindO).Shape

	var b Board
	b[19][0] = int(KindT)

	tests := []struct {
		name string
		pos  core.Point
		want bool
	}{
		{"spawn", core.Point{X: 4, Y: 0}, true},
		{"left wall", core.Point{X: 0, Y: 5}, true},
		{"past left wall", core.Point{X: -1, Y: 5}, false},
		{"right wall", core.Point{X: Width - 2, Y: 5}, true},
		{"past right wall", core.Point{X: Width - 1, Y: 5}, false},
		{"on floor", core.Point{X: 4, Y: Height - 2}, true},
		{"through floor", core.Point{X: 4, Y: Height - 1}, false},
		{"above top", core.Point{X: 4, Y: -1}, true},
		{"overlaps stack", core.Point{X: 0, Y: 18}, false},
		{"next to stack", core.Point{X: 1, Y: 18}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidMove(&b, o, tt.pos))
		})
	}
}

func TestIsValidMoveIgnoresEmptyShapeCells(t *testing.T) {
	// The I piece's top row is empty, so the matrix can poke above the board.
	i := NewPiece(KindI).Shape
	var b Board
	assert.True(t, IsValidMove(&b, i, core.Point{X: 0, Y: -1}))
	assert.False(t, IsValidMove(&b, i, core.Point{X: 7, Y: 0}))
}

func TestDropDistance(t *testing.T) {
	o := NewPiece(KindO).Shape

	var b Board
	assert.Equal(t, Height-2, DropDistance(&b, o, SpawnPoint))

	b[10][4] = int(KindJ)
	assert.Equal(t, 8, DropDistance(&b, o, SpawnPoint))

	b[2][5] = int(KindJ)
	assert.Equal(t, 0, DropDistance(&b, o, SpawnPoint))
}

func TestBoardHelpers(t *testing.T) {
	var b Board
	assert.Equal(t, 0, b.Filled())
	assert.False(t, b.RowFull(19))

	for x := range Width {
		b[19][x] = int(KindL)
	}
	assert.True(t, b.RowFull(19))
	assert.Equal(t, Width, b.Filled())
	assert.Equal(t, int(KindL), b.At(3, 19))
	assert.Equal(t, Empty, b.At(-1, 0))
	assert.Equal(t, Empty, b.At(0, Height))

	// Methods work on non-addressable boards returned by value.
	assert.Equal(t, 0, Board{}.Filled())
	assert.False(t, Board{}.RowFull(0))
}
