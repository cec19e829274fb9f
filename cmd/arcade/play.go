package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/games/tetris"
	"github.com/vovakirdan/folio-arcade/internal/platform/tui"
	"github.com/vovakirdan/folio-arcade/internal/registry"
	"github.com/vovakirdan/folio-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSpeed      float64
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (tetris when omitted).

Controls:
  Left/Right, A/D, H/L  - Move
  Up, W, K, X           - Rotate
  Down, S, J            - Soft drop
  Space                 - Hard drop
  + / -                 - Change speed (0.2x to 2.0x)
  P/Esc                 - Pause
  R                     - Restart
  Ctrl+S                - Screenshot
  Q/Ctrl+C              - Quit

Mouse: swipe left/right to move, down to hard drop, up to soft drop,
click to rotate.

Difficulty options:
  easy   - 0.6x starting speed
  normal - 1.0x starting speed
  hard   - 1.5x starting speed

Examples:
  arcade play
  arcade play tetris --difficulty hard
  arcade play --speed 1.5 --seed 42
  arcade play --config ./my-tetris.yaml --log-file arcade.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().Float64Var(&flagSpeed, "speed", 0, "Starting speed factor (0 = use config)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("%w (run 'arcade list' to see available games)", err)
	}
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}
	if err := tetris.SetSpeedFactor(flagSpeed); err != nil {
		return fmt.Errorf("invalid --speed: %w", err)
	}
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)

	// The game owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg, tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
