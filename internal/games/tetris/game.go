package tetris

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/registry"
)

const (
	levelUpToast  = 2 * time.Second
	gameOverToast = 3 * time.Second
)

// Layout requirements for the terminal renderer.
const (
	cellW       = 2
	boardPixelW = Width*cellW + 2
	boardPixelH = Height + 2
	panelW      = 16
	minScreenW  = boardPixelW + 2 + panelW
	minScreenH  = boardPixelH + 1
)

// Package-level settings applied on the next Reset, set by the CLI.
var (
	configPath       string
	difficultyPreset string
	speedOverride    float64
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetSpeedFactor overrides the configured starting speed factor.
// Zero restores the configured value.
func SetSpeedFactor(f float64) error {
	if f == 0 {
		speedOverride = 0
		return nil
	}
	if err := ValidateSpeedFactor(f); err != nil {
		return err
	}
	speedOverride = f
	return nil
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// Game adapts an Engine to the arcade frame loop. Each Step applies the
// frame's actions in arrival order and then advances gravity by one tick.
type Game struct {
	engine     *Engine
	dispatcher *Dispatcher
	cfg        config.TetrisConfig
	gestures   core.GestureConfig
	runtime    core.RuntimeConfig
	tickDur    time.Duration
	logger     *log.Logger

	toast     string
	toastLeft time.Duration

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates an unstarted Tetris game. Call Reset before stepping it.
func New() *Game {
	return &Game{logger: log.New(io.Discard)}
}

// SetLogger routes engine events to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l.WithPrefix("tetris")
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset loads configuration and starts a fresh game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		g.logger.Warn("falling back to default config", "err", err)
		cfg = config.DefaultTetrisConfig()
	}
	if preset, err := config.ParseDifficulty(difficultyPreset); err == nil {
		config.ApplyTetrisPreset(&cfg, preset)
	}

	if err := g.resetWith(rc, cfg); err != nil {
		g.logger.Error("reset failed, using defaults", "err", err)
		_ = g.resetWith(rc, config.DefaultTetrisConfig())
	}
}

func (g *Game) resetWith(rc core.RuntimeConfig, cfg config.TetrisConfig) error {
	timing, scoring := settingsFrom(cfg)

	speed := ClampSpeedFactor(cfg.Timing.SpeedFactor)
	if speedOverride != 0 {
		speed = ClampSpeedFactor(speedOverride)
	}

	engine, err := NewEngine(
		WithGenerator(NewSeededGenerator(rc.Seed)),
		WithTiming(timing),
		WithScoring(scoring),
		WithSpeedFactor(speed),
		WithEventHandler(g.handleEvent),
	)
	if err != nil {
		return fmt.Errorf("tetris: reset: %w", err)
	}

	g.cfg = cfg
	g.engine = engine
	g.dispatcher = NewDispatcher(engine)
	g.gestures = core.GestureConfig{MinSwipe: cfg.Input.SwipeMinCells, MaxTap: cfg.Input.TapMaxCells}
	g.runtime = rc
	g.tickDur = rc.TickDuration()
	g.toast = ""
	g.toastLeft = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tooSmall = rc.ScreenW < minScreenW || rc.ScreenH < minScreenH

	engine.Start()
	g.logger.Debug("game started", "seed", rc.Seed, "speed", speed, "interval", engine.Interval())
	return nil
}

// Resize adapts the layout to a new screen size. The game keeps running;
// gravity is suspended while the screen is too small.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// settingsFrom converts the YAML config into engine settings.
func settingsFrom(cfg config.TetrisConfig) (Timing, Scoring) {
	timing := Timing{
		Base:      time.Duration(cfg.Timing.BaseIntervalMS) * time.Millisecond,
		Decrement: time.Duration(cfg.Timing.LevelDecrementMS) * time.Millisecond,
		Min:       time.Duration(cfg.Timing.MinIntervalMS) * time.Millisecond,
	}
	scoring := Scoring{LinesPerLevel: cfg.Scoring.LinesPerLevel}
	copy(scoring.LineScores[:], cfg.Scoring.LineScores)
	return timing, scoring
}

// Step applies one frame of input and advances the drop timer by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		switch a {
		case core.ActionRestart:
			rc := g.runtime
			rc.Seed++
			g.Reset(rc)
		case core.ActionSpeedUp:
			g.nudgeSpeed(SpeedFactorStep)
		case core.ActionSpeedDown:
			g.nudgeSpeed(-SpeedFactorStep)
		default:
			if cmd := CommandFor(a); cmd != CmdNone && !g.tooSmall {
				g.dispatcher.Dispatch(cmd)
			}
		}
	}

	if !g.tooSmall {
		g.engine.Advance(g.tickDur)
	}

	if g.toastLeft > 0 {
		g.toastLeft -= g.tickDur
		if g.toastLeft <= 0 {
			g.toast = ""
			g.toastLeft = 0
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) nudgeSpeed(delta float64) {
	f := ClampSpeedFactor(g.engine.SpeedFactor() + delta)
	if f == g.engine.SpeedFactor() {
		return
	}
	if err := g.engine.SetSpeedFactor(f); err != nil {
		g.logger.Warn("speed change rejected", "factor", f, "err", err)
		return
	}
	g.logger.Debug("speed changed", "factor", f, "interval", g.engine.Interval())
}

func (g *Game) handleEvent(ev Event) {
	switch ev.Kind {
	case EventLinesCleared:
		g.logger.Debug("lines cleared", "cleared", ev.Cleared, "points", ev.Points, "score", ev.Score)
	case EventLevelUp:
		g.logger.Info("level up", "level", ev.Level, "lines", ev.Lines)
		g.showToast(fmt.Sprintf("Level Up! Level %d", ev.Level), levelUpToast)
	case EventGameOver:
		g.logger.Info("game over", "score", ev.Score, "level", ev.Level, "lines", ev.Lines)
		g.showToast(fmt.Sprintf("Game Over! Final Score: %d", ev.Score), gameOverToast)
	}
}

func (g *Game) showToast(msg string, d time.Duration) {
	g.toast = msg
	g.toastLeft = d
}

// Toast returns the active notification, or "" when none is showing.
func (g *Game) Toast() string {
	return g.toast
}

// Gestures returns the pointer thresholds from the loaded config.
func (g *Game) Gestures() core.GestureConfig {
	if g.gestures.MinSwipe <= 0 {
		return core.DefaultGestureConfig()
	}
	return g.gestures
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Snapshot returns a renderable copy of the engine state.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{Level: 1, SpeedFactor: 1}
	}
	return g.engine.Snapshot()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.Status() == StatusGameOver,
		Paused:   g.engine.Status() == StatusPaused,
	}
}

// Level returns the current level.
func (g *Game) Level() int {
	if g.engine == nil {
		return 1
	}
	return g.engine.Level()
}

// Lines returns the number of cleared rows.
func (g *Game) Lines() int {
	if g.engine == nil {
		return 0
	}
	return g.engine.Lines()
}

// Compile-time interface checks.
var (
	_ registry.Game      = (*Game)(nil)
	_ registry.RunStats  = (*Game)(nil)
	_ registry.Resizable = (*Game)(nil)
	_ Controller         = (*Engine)(nil)
)
