package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chemdash/internal/config"
	"github.com/vovakirdan/chemdash/internal/core"
	"github.com/vovakirdan/chemdash/internal/registry"
	"github.com/vovakirdan/chemdash/internal/storage"
)

// difficultySetter is implemented by games that take a per-instance
// difficulty.
type difficultySetter interface {
	UseDifficulty(config.Difficulty)
}

// Model is the Bubble Tea model that runs one game. Each tick is a display
// frame: the game receives the elapsed time since the first tick and runs
// as many fixed steps as that covers.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	board      *storage.Board
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	start      time.Time
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
	newHigh    bool
	rank       int
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, board *storage.Board, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		board:      board,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The lane is scaled to the screen, so a resize keeps the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "esc", "b":
		if m.gameState.GameOver || m.gameState.Paused {
			return m.leave()
		}
		if msg.String() == "esc" {
			m.inputFrame.Set(core.ActionPause)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) leave() (tea.Model, tea.Cmd) {
	m.backToMenu = true
	if m.standalone {
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one display frame.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if m.start.IsZero() {
		m.start = t
	}

	result := m.game.Frame(t.Sub(m.start), m.inputFrame)
	m.gameState = result.State

	if !m.gameState.GameOver && m.scoreSaved {
		// Restarted
		m.scoreSaved, m.newHigh, m.rank = false, false, 0
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished run once.
func (m *Model) saveScore() {
	m.scoreSaved = true
	sum := m.gameState.Summary
	if sum == nil {
		return
	}
	m.newHigh = m.board.IsHighScore(sum.Score)
	m.rank = m.board.Add(storage.Record{
		Score:             sum.Score,
		Level:             sum.Level,
		Difficulty:        sum.Difficulty,
		FormedMolecules:   sum.Molecules,
		ElementsCollected: sum.ElementsCollected,
		PlayerName:        m.config.PlayerName,
	})
	m.logger.Info("run finished", "score", sum.Score, "level", sum.Level,
		"difficulty", sum.Difficulty, "molecules", len(sum.Molecules), "rank", m.rank)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".chemdash", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.gameState.GameOver && m.newHigh && m.rank > 0 {
		msg := fmt.Sprintf(" NEW HIGH SCORE! Rank #%d ", m.rank)
		m.screen.DrawTextCentered(m.screen.Height()/2+3, msg, core.ColorBrightYellow)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// RunOptions configures Run.
type RunOptions struct {
	Difficulty config.Difficulty
	Board      *storage.Board
	Logger     *log.Logger
}

// Run starts the Bubble Tea program with the given game and blocks until
// the player quits or leaves.
func Run(game registry.Game, cfg core.RuntimeConfig, opts RunOptions) error {
	if ds, ok := game.(difficultySetter); ok && opts.Difficulty != "" {
		ds.UseDifficulty(opts.Difficulty)
	}
	model := NewModel(game, opts.Board, cfg, opts.Logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
