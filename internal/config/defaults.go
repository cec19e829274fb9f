package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TetrisTiming{
			BaseIntervalMS:   800,
			LevelDecrementMS: 50,
			MinIntervalMS:    100,
			SpeedFactor:      1.0,
		},
		Scoring: TetrisScoring{
			LineScores:    []int{0, 100, 300, 500, 800},
			LinesPerLevel: 10,
		},
		Input: TetrisInput{
			SwipeMinCells: 3,
			TapMaxCells:   1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
