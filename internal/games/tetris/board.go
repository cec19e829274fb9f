// Package tetris implements the falling-block game: the playfield, the seven
// tetrominoes, rotation, locking with line clears, the level/speed curve and
// the state machine that ties them to player input and the drop timer.
package tetris

import "github.com/vovakirdan/folio-arcade/internal/core"

// Playfield dimensions.
const (
	Width  = 10
	Height = 20
)

// Empty is the value of an unoccupied board cell.
const Empty = 0

// Board is the grid of locked cells, indexed as Board[y][x] with row 0 at the top.
// A cell holds Empty or the Kind id (1-7) of the tetromino that locked there.
// Board is an array so assignment copies it.
type Board [Height][Width]int

// At returns the cell at (x, y), or Empty when out of range.
func (b Board) At(x, y int) int {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return Empty
	}
	return b[y][x]
}

// RowFull reports whether every cell in row y is occupied.
func (b Board) RowFull(y int) bool {
	for x := range Width {
		if b[y][x] == Empty {
			return false
		}
	}
	return true
}

// Filled returns the number of occupied cells.
func (b Board) Filled() int {
	n := 0
	for y := range Height {
		for x := range Width {
			if b[y][x] != Empty {
				n++
			}
		}
	}
	return n
}

// IsValidMove reports whether shape can sit with its top-left corner at pos.
//
// Every filled cell must lie within [0, Width) horizontally and above the
// floor. Cells above the top edge (y < 0) are allowed and skip the occupancy
// check; all others must land on an empty board cell.
func IsValidMove(b *Board, shape Shape, pos core.Point) bool {
	for y, row := range shape {
		for x, v := range row {
			if v == Empty {
				continue
			}
			ax, ay := pos.X+x, pos.Y+y
			if ax < 0 || ax >= Width || ay >= Height {
				return false
			}
			if ay >= 0 && b[ay][ax] != Empty {
				return false
			}
		}
	}
	return true
}

// DropDistance returns how many rows shape can fall from pos before it
// would become invalid. It is 0 when the piece is already resting.
func DropDistance(b *Board, shape Shape, pos core.Point) int {
	limit := Height + len(shape) - pos.Y
	d := 0
	for d < limit && IsValidMove(b, shape, pos.Add(0, d+1)) {
		d++
	}
	return d
}
