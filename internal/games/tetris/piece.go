package tetris

import (
	"fmt"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// Kind identifies a tetromino. Its numeric value is also the cell value the
// piece writes into the board.
type Kind int

const (
	KindI Kind = iota + 1
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of tetromino kinds.
const KindCount = 7

// Shape is a square matrix of cells; non-zero entries are filled.
type Shape [][]int

// Tetromino is an immutable catalog entry.
type Tetromino struct {
	Kind  Kind
	Name  string
	Color core.Color
	shape Shape
}

// Shape returns a fresh copy of the spawn orientation.
func (t Tetromino) Shape() Shape {
	return t.shape.Clone()
}

// catalog is indexed by Kind-1.
var catalog = [KindCount]Tetromino{
	{Kind: KindI, Name: "I", Color: core.ColorLilac, shape: Shape{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}},
	{Kind: KindJ, Name: "J", Color: core.ColorOrchid, shape: Shape{
		{2, 0, 0},
		{2, 2, 2},
		{0, 0, 0},
	}},
	{Kind: KindL, Name: "L", Color: core.ColorAmethyst, shape: Shape{
		{0, 0, 3},
		{3, 3, 3},
		{0, 0, 0},
	}},
	{Kind: KindO, Name: "O", Color: core.ColorPurple, shape: Shape{
		{4, 4},
		{4, 4},
	}},
	{Kind: KindS, Name: "S", Color: core.ColorGrape, shape: Shape{
		{0, 5, 5},
		{5, 5, 0},
		{0, 0, 0},
	}},
	{Kind: KindT, Name: "T", Color: core.ColorFuchsia, shape: Shape{
		{0, 6, 0},
		{6, 6, 6},
		{0, 0, 0},
	}},
	{Kind: KindZ, Name: "Z", Color: core.ColorViolet, shape: Shape{
		{7, 7, 0},
		{0, 7, 7},
		{0, 0, 0},
	}},
}

// Lookup returns the catalog entry for k.
func Lookup(k Kind) (Tetromino, error) {
	if k < KindI || k > KindZ {
		return Tetromino{}, fmt.Errorf("tetris: unknown kind %d", int(k))
	}
	return catalog[k-1], nil
}

// Kinds returns every kind in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, KindCount)
	for i := range catalog {
		kinds[i] = catalog[i].Kind
	}
	return kinds
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if t, err := Lookup(k); err == nil {
		return t.Name
	}
	return "?"
}

// ColorOf returns the palette color for a board cell value.
func ColorOf(cell int) core.Color {
	if t, err := Lookup(Kind(cell)); err == nil {
		return t.Color
	}
	return core.ColorDefault
}

// Clone returns a deep copy of s.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y := range s {
		out[y] = append([]int(nil), s[y]...)
	}
	return out
}

// Equal reports whether two shapes have identical cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(o[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Rotate returns s turned 90 degrees clockwise: the matrix is transposed and
// each resulting row reversed. Rotation always happens about the matrix box;
// no offsets are applied.
func Rotate(s Shape) Shape {
	n := len(s)
	out := make(Shape, n)
	for i := range n {
		out[i] = make([]int, n)
		for j := range n {
			out[i][j] = s[n-1-j][i]
		}
	}
	return out
}

// SpawnPoint is where every new piece appears.
var SpawnPoint = core.Point{X: Width/2 - 1, Y: 0}

// Piece is a live tetromino: its current orientation and board position.
type Piece struct {
	Kind  Kind
	Shape Shape
	Pos   core.Point
}

// NewPiece returns a piece of kind k in spawn orientation at SpawnPoint.
// It panics on an unknown kind.
func NewPiece(k Kind) Piece {
	t, err := Lookup(k)
	if err != nil {
		panic(err)
	}
	return Piece{Kind: k, Shape: t.Shape(), Pos: SpawnPoint}
}

// Rotated returns a copy of p with its shape rotated clockwise.
// The position is unchanged; callers must validate the result.
func (p Piece) Rotated() Piece {
	return Piece{Kind: p.Kind, Shape: Rotate(p.Shape), Pos: p.Pos}
}

// Moved returns a copy of p translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	return Piece{Kind: p.Kind, Shape: p.Shape, Pos: p.Pos.Add(dx, dy)}
}

// Clone returns a deep copy of p.
func (p Piece) Clone() Piece {
	return Piece{Kind: p.Kind, Shape: p.Shape.Clone(), Pos: p.Pos}
}

// Cells returns the absolute board coordinates of every filled cell.
func (p Piece) Cells() []core.Point {
	cells := make([]core.Point, 0, 4)
	for y, row := range p.Shape {
		for x, v := range row {
			if v != Empty {
				cells = append(cells, p.Pos.Add(x, y))
			}
		}
	}
	return cells
}
