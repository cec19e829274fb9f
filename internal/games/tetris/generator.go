package tetris

import "math/rand"

// Source is the randomness a Generator draws from. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Generator produces new pieces, picking each kind uniformly and
// independently of the previous ones.
type Generator struct {
	src Source
}

// NewGenerator creates a generator backed by src.
func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// NewSeededGenerator creates a generator with a deterministic math/rand source.
func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

// Next returns a fresh piece at the spawn point.
func (g *Generator) Next() Piece {
	k := Kind(g.src.Intn(KindCount) + 1)
	return NewPiece(k)
}
