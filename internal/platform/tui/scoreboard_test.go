package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/folio-arcade/internal/storage"
)

func TestScoreRows(t *testing.T) {
	when := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	scores := []storage.ScoreEntry{
		{Score: 900, Level: 3, Lines: 24, Player: "ana", CreatedAt: when},
		{Score: 100, Level: 1, Lines: 1, CreatedAt: when},
	}

	wide := scoreRows(scores, 100)
	require.Len(t, wide, 2)
	assert.Len(t, wide[0], len(scoreColumns(100)))
	assert.Equal(t, "#1", wide[0][0])
	assert.Equal(t, "900", wide[0][1])
	assert.Equal(t, "ana", wide[0][4])
	assert.Equal(t, "local", wide[1][4])
	assert.Equal(t, "Mar 14 09:26", wide[0][5])

	narrow := scoreRows(scores, 40)
	assert.Len(t, narrow[0], len(scoreColumns(40)))
	assert.Equal(t, "Mar 14 09:26", narrow[0][4])
}

func TestScoreboardModel(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore(storage.ScoreEntry{RunID: "r1", GameID: "tetris", Score: 500, Level: 2, Lines: 12})
	require.NoError(t, err)

	m := NewScoreboardModel(store, "tetris", "Tetris", 100, 30)
	out := m.View()
	assert.Contains(t, out, "HIGH SCORES - Tetris")
	assert.Contains(t, out, "500")
	assert.Contains(t, out, "1 games")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "tetris", "Tetris", 80, 24)
	assert.Contains(t, m.View(), "No scores recorded yet.")
	assert.Contains(t, m.View(), "no games played")
}
