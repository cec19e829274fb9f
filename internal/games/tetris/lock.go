package tetris

// Scoring holds the line-clear reward table and the level pace.
type Scoring struct {
	// LineScores[n] is the base award for clearing n rows with one lock.
	LineScores [5]int
	// LinesPerLevel is the number of cleared rows needed per level.
	LinesPerLevel int
}

// DefaultScoring returns the classic 0/100/300/500/800 table with a new
// level every 10 lines.
func DefaultScoring() Scoring {
	return Scoring{
		LineScores:    [5]int{0, 100, 300, 500, 800},
		LinesPerLevel: 10,
	}
}

// Points returns the award for clearing n rows while at level.
func (s Scoring) Points(cleared, level int) int {
	if cleared < 0 || cleared >= len(s.LineScores) {
		return 0
	}
	return s.LineScores[cleared] * level
}

// LevelFor returns the level reached after clearing lines in total.
func (s Scoring) LevelFor(lines int) int {
	per := s.LinesPerLevel
	if per <= 0 {
		per = 10
	}
	return lines/per + 1
}

// Merge writes the filled cells of p into the board. Cells outside the
// visible rows are dropped.
func Merge(b *Board, p Piece) {
	for _, c := range p.Cells() {
		if c.Y < 0 || c.Y >= Height || c.X < 0 || c.X >= Width {
			continue
		}
		b[c.Y][c.X] = int(p.Kind)
	}
}

// ClearLines removes every full row, shifts the rows above down and fills
// the top with empty rows. Surviving rows keep their relative order.
// It returns the number of rows removed.
func ClearLines(b *Board) int {
	cleared := 0
	write := Height - 1
	for read := Height - 1; read >= 0; read-- {
		if b.RowFull(read) {
			cleared++
			continue
		}
		if write != read {
			b[write] = b[read]
		}
		write--
	}
	for ; write >= 0; write-- {
		b[write] = [Width]int{}
	}
	return cleared
}

// LockResult describes what a single lock did.
type LockResult struct {
	Cleared  int
	Points   int
	Level    int
	LevelUp  bool
	GameOver bool
}
