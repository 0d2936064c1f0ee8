// Package chemdash implements Chemistry Dash, a side-scrolling runner where
// the player jumps obstacles, lands on platforms and collects elements that
// combine into molecules for bonus points.
package chemdash

import (
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chemdash/internal/chem"
	"github.com/vovakirdan/chemdash/internal/config"
	"github.com/vovakirdan/chemdash/internal/core"
	"github.com/vovakirdan/chemdash/internal/logging"
	"github.com/vovakirdan/chemdash/internal/registry"
)

const (
	gameID    = "chemdash"
	gameTitle = "Chemistry Dash"
)

// Settings set via CLI before the game is created.
var (
	configPath  string
	catalogPath string
	difficulty  = config.DifficultyMedium
	logger      = logging.Discard()
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetCatalogPath sets a custom molecule catalog file.
func SetCatalogPath(path string) {
	catalogPath = path
}

// SetDifficulty sets the difficulty for new runs.
func SetDifficulty(d config.Difficulty) {
	difficulty = d
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	logger = l
}

// view collects what the session pushes out: the latest snapshot, HUD
// values and the game over report.
type view struct {
	NopHUD
	logger   *log.Logger
	snapshot Snapshot
	summary  *core.RunSummary
}

func (v *view) Render(s Snapshot) {
	v.snapshot = s
}

func (v *view) OnLevelChanged(level int) {
	v.logger.Debug("hud: level", "level", level)
}

func (v *view) OnLivesChanged(lives int) {
	v.logger.Debug("hud: lives", "lives", lives)
}

func (v *view) OnMoleculeFormed(m chem.FormedMolecule) {
	v.logger.Debug("hud: molecule", "formula", m.Formula)
}

func (v *view) OnPauseChanged(paused bool) {
	v.logger.Debug("hud: pause", "paused", paused)
}

func (v *view) OnGameOver(r GameOverReport) {
	inv := make([]string, len(r.Inventory))
	for i, s := range r.Inventory {
		inv[i] = string(s)
	}
	v.summary = &core.RunSummary{
		Score:             r.Score,
		Level:             r.Level,
		Difficulty:        string(r.Difficulty),
		Molecules:         r.Formulas(),
		Inventory:         inv,
		ElementsCollected: r.ElementsCollected,
		LivesRemaining:    r.LivesRemaining,
	}
}

// Game adapts a Session to the registry.Game interface.
type Game struct {
	session    *Session
	view       *view
	logger     *log.Logger
	runtime    core.RuntimeConfig
	difficulty config.Difficulty
}

// New creates a new Chemistry Dash game instance using the package
// difficulty.
func New() *Game {
	return &Game{difficulty: difficulty}
}

// UseDifficulty sets the difficulty for this instance's next Reset.
func (g *Game) UseDifficulty(d config.Difficulty) {
	g.difficulty = d
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return gameTitle
}

// Reset loads config and data and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = logger

	cfg, err := config.LoadChemDash(configPath)
	if err != nil {
		g.logger.Warn("config unusable, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultChemDashConfig()
	}

	catalog := chem.DefaultCatalog()
	if catalogPath != "" {
		if c, err := chem.LoadCatalog(catalogPath); err != nil {
			g.logger.Warn("catalog unusable, using built-in", "path", catalogPath, "err", err)
		} else {
			catalog = c
		}
	}

	g.view = &view{logger: g.logger}
	session, err := NewSession(Options{
		Config:   cfg,
		Catalog:  catalog,
		Elements: chem.DefaultElements(),
		Rand:     rand.New(rand.NewSource(runtime.Seed)),
		HUD:      g.view,
		Menu:     g.view,
		Renderer: g.view,
		Logger:   g.logger,
	})
	if err != nil {
		// Only reachable with an invalid config, which LoadChemDash rejects.
		g.logger.Error("session setup failed", "err", err)
		session, _ = NewSession(Options{
			Config:   config.DefaultChemDashConfig(),
			Catalog:  chem.DefaultCatalog(),
			Elements: chem.DefaultElements(),
			Rand:     rand.New(rand.NewSource(runtime.Seed)),
			HUD:      g.view,
			Menu:     g.view,
			Renderer: g.view,
			Logger:   g.logger,
		})
	}
	g.session = session

	if err := g.session.StartGame(g.difficulty); err != nil {
		g.logger.Error("start failed, falling back to medium", "difficulty", g.difficulty, "err", err)
		//nolint:errcheck // Medium always exists in a validated config
		g.session.StartGame(config.DifficultyMedium)
	}
	g.view.snapshot = g.session.Snapshot()
}

// Frame applies input and advances the simulation to now.
func (g *Game) Frame(now time.Duration, in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionPause) {
		g.session.TogglePause()
	}
	if in.Has(core.ActionJump) {
		g.session.Jump()
	}
	if in.Has(core.ActionRestart) && g.session.State() == StateStopped {
		g.view.summary = nil
		if err := g.session.RestartGame(); err != nil {
			g.logger.Error("restart failed", "err", err)
		}
	}

	g.session.Frame(float64(now) / float64(time.Millisecond))
	return core.StepResult{State: g.State(), Steps: g.session.FrameSteps()}
}

// Render draws the last snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.view == nil {
		dst.Clear()
		return
	}
	RenderSnapshot(dst, g.view.snapshot, g.logger)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := core.GameState{
		Score:      g.session.Score(),
		Level:      g.session.Level(),
		Lives:      g.session.Lives(),
		Difficulty: string(g.session.Difficulty()),
		GameOver:   g.view.summary != nil,
		Paused:     g.session.State() == StatePaused,
	}
	if g.view.summary != nil {
		s := *g.view.summary
		s.Molecules = slices.Clone(s.Molecules)
		s.Inventory = slices.Clone(s.Inventory)
		st.Summary = &s
	}
	return st
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

func init() {
	registry.Register(registry.Entry{
		ID:      gameID,
		Title:   gameTitle,
		Factory: func() registry.Game { return New() },
	})
}
