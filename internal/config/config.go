// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Timing  TetrisTiming  `yaml:"timing"`
	Scoring TetrisScoring `yaml:"scoring"`
	Input   TetrisInput   `yaml:"input"`
}

// TetrisTiming defines the gravity curve.
type TetrisTiming struct {
	BaseIntervalMS   int     `yaml:"base_interval_ms"`
	LevelDecrementMS int     `yaml:"level_decrement_ms"`
	MinIntervalMS    int     `yaml:"min_interval_ms"`
	SpeedFactor      float64 `yaml:"speed_factor"`
}

// TetrisScoring defines line-clear rewards and level pace.
type TetrisScoring struct {
	LineScores    []int `yaml:"line_scores"`
	LinesPerLevel int   `yaml:"lines_per_level"`
}

// TetrisInput defines pointer gesture thresholds, in cells.
type TetrisInput struct {
	SwipeMinCells int `yaml:"swipe_min_cells"`
	TapMaxCells   int `yaml:"tap_max_cells"`
}

// Validate checks that the config describes a playable game.
func (c TetrisConfig) Validate() error {
	t := c.Timing
	switch {
	case t.MinIntervalMS <= 0:
		return fmt.Errorf("%w: timing.min_interval_ms must be positive", ErrInvalidConfig)
	case t.BaseIntervalMS < t.MinIntervalMS:
		return fmt.Errorf("%w: timing.base_interval_ms must be >= min_interval_ms", ErrInvalidConfig)
	case t.LevelDecrementMS < 0:
		return fmt.Errorf("%w: timing.level_decrement_ms must not be negative", ErrInvalidConfig)
	case math.IsNaN(t.SpeedFactor) || math.IsInf(t.SpeedFactor, 0) || t.SpeedFactor <= 0:
		return fmt.Errorf("%w: timing.speed_factor must be a finite positive number", ErrInvalidConfig)
	}

	if len(c.Scoring.LineScores) != 5 {
		return fmt.Errorf("%w: scoring.line_scores needs 5 entries, got %d", ErrInvalidConfig, len(c.Scoring.LineScores))
	}
	if c.Scoring.LinesPerLevel <= 0 {
		return fmt.Errorf("%w: scoring.lines_per_level must be positive", ErrInvalidConfig)
	}

	if c.Input.SwipeMinCells <= c.Input.TapMaxCells {
		return fmt.Errorf("%w: input.swipe_min_cells must exceed tap_max_cells", ErrInvalidConfig)
	}
	return nil
}
