package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/registry"
	"github.com/vovakirdan/folio-arcade/internal/storage"
)

// helpRows is the number of terminal rows reserved below the game screen.
const helpRows = 1

// loggable is implemented by games that accept a logger.
type loggable interface {
	SetLogger(l *log.Logger)
}

// gestureSource is implemented by games with their own swipe thresholds.
type gestureSource interface {
	Gestures() core.GestureConfig
}

// Model is the Bubble Tea model for running arcade games.
//
// Every tick and every input is handled in Update, so the game is only
// ever touched from the Bubble Tea event loop.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	help       help.Model
	swipe      *swipeTracker
	runID      string
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger for session events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPlayer tags saved scores with a player name.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg describes the whole terminal; one row is kept for the help line.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	cfg.ScreenH = max(cfg.ScreenH-helpRows, 0)

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     log.New(io.Discard),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		help:       help.New(),
		swipe:      &swipeTracker{},
		runID:      uuid.NewString(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = cfg.ScreenW

	if lg, ok := game.(loggable); ok {
		lg.SetLogger(m.logger)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "game", m.game.ID(), "run", m.runID)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.saveScore()
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns pointer swipes into actions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	s, ok := m.swipe.track(msg)
	if !ok {
		return m, nil
	}

	gestures := core.DefaultGestureConfig()
	if gs, ok := m.game.(gestureSource); ok {
		gestures = gs.Gestures()
	}
	if a := gestures.Classify(s); a != core.ActionNone {
		m.inputFrame.Set(a)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpRows, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart gets a fresh seed and run id
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveScore()
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runID = uuid.NewString()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.logger.Info("run started", "game", m.game.ID(), "run", m.runID)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveScore()
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the current run once. Scores of zero are not kept.
func (m *Model) saveScore() {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true

	entry := storage.ScoreEntry{
		RunID:  m.runID,
		GameID: m.game.ID(),
		Player: m.player,
		Score:  m.gameState.Score,
	}
	if rs, ok := m.game.(registry.RunStats); ok {
		entry.Level = rs.Level()
		entry.Lines = rs.Lines()
	}

	if m.store == nil {
		return
	}
	// Best-effort save, game continues regardless
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Warn("could not save score", "run", m.runID, "err", err)
		return
	}
	m.logger.Info("score saved", "run", m.runID, "score", entry.Score, "level", entry.Level, "lines", entry.Lines)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys.Keys)))
	return b.String()
}

// RunID returns the identifier of the current run.
func (m Model) RunID() string {
	return m.runID
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Swipe gestures
	)

	_, err := p.Run()
	return err
}
