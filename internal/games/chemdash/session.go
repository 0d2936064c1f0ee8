package chemdash

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chemdash/internal/chem"
	"github.com/vovakirdan/chemdash/internal/config"
	"github.com/vovakirdan/chemdash/internal/core"
)

// State is the run state of a session.
type State int

const (
	StateStopped State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Bonus is a reward granted when a molecule is formed.
type Bonus int

const (
	BonusExtraLife Bonus = iota
	BonusInvulnerability
	BonusSlowDown
)

func (b Bonus) String() string {
	switch b {
	case BonusExtraLife:
		return "extra_life"
	case BonusInvulnerability:
		return "invulnerability"
	case BonusSlowDown:
		return "slow_down"
	default:
		return fmt.Sprintf("Bonus(%d)", int(b))
	}
}

// Options configures a session. Nil collaborators default to no-ops.
type Options struct {
	Config   config.ChemDashConfig
	Catalog  *chem.Catalog
	Elements *chem.ElementTable
	Rand     *rand.Rand
	HUD      HUD
	Menu     Menu
	Renderer Renderer
	Logger   *log.Logger
}

// Session owns one run of the game: the player, every entity, the inventory
// and all timers. It is driven by Frame and is not safe for concurrent use.
type Session struct {
	cfg         config.ChemDashConfig
	physics     Physics
	progression config.Progression
	catalog     *chem.Catalog
	elements    *chem.ElementTable
	rng         *rand.Rand

	hud      HUD
	menu     Menu
	renderer Renderer
	logger   *log.Logger

	difficulty config.Difficulty
	profile    config.DifficultyProfile
	spawner    *Spawner

	state       State
	synced      bool
	lastTime    float64
	accumulator float64
	frameSteps  int

	clock        float64 // ms of simulated time since the run started
	player       *Player
	obstacles    []*Obstacle
	platforms    []*Platform
	collectibles []*Collectible

	inventory         []chem.Symbol
	formed            []chem.FormedMolecule
	lastMolecule      *chem.FormedMolecule
	elementsCollected int

	score     int
	level     int
	lives     int
	speed     float64
	spawnRate float64

	lastObstacleSpawn float64
	lastElementSpawn  float64
	lastPlatformSpawn float64

	invulnerableUntil      float64
	bonusInvulnerableUntil float64
	slowUntil              float64

	gameOverReported bool
}

// NewSession creates a stopped session. Call StartGame to begin a run.
func NewSession(opts Options) (*Session, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if opts.Catalog == nil {
		return nil, errors.New("chemdash: session needs a molecule catalog")
	}
	if opts.Elements == nil {
		return nil, errors.New("chemdash: session needs an element table")
	}

	s := &Session{
		cfg:         opts.Config,
		physics:     NewPhysics(opts.Config.Physics),
		progression: config.NewProgression(opts.Config),
		catalog:     opts.Catalog,
		elements:    opts.Elements,
		rng:         opts.Rand,
		hud:         opts.HUD,
		menu:        opts.Menu,
		renderer:    opts.Renderer,
		logger:      opts.Logger,
		difficulty:  config.DifficultyMedium,
		level:       1,
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(1))
	}
	if s.hud == nil {
		s.hud = NopHUD{}
	}
	if s.menu == nil {
		s.menu = NopMenu{}
	}
	if s.renderer == nil {
		s.renderer = nopRenderer{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.player = NewPlayer(s.cfg.Player, s.startX(), s.startY())
	return s, nil
}

func (s *Session) startX() float64 { return s.cfg.Player.StartX }
func (s *Session) startY() float64 { return s.cfg.World.Height - s.cfg.Player.StartYOffset }

// StartGame resets the session for d and starts running.
func (s *Session) StartGame(d config.Difficulty) error {
	profile, err := s.cfg.Profile(d)
	if err != nil {
		return err
	}
	pattern, err := NewPattern(profile)
	if err != nil {
		return err
	}

	s.difficulty = d
	s.profile = profile
	s.spawner = NewSpawner(s.rng, s.cfg.World, s.elements, pattern)
	s.Reset()

	s.state = StateRunning
	s.synced = false
	s.hud.OnDifficultyChanged(d)

	s.obstacles = append(s.obstacles, s.spawner.NextObstacle())
	s.collectibles = append(s.collectibles, s.spawner.NextCollectible())

	s.logger.Info("game started", "difficulty", d, "lives", s.lives, "speed", s.speed)
	return nil
}

// RestartGame starts a new run on the current difficulty.
func (s *Session) RestartGame() error {
	return s.StartGame(s.difficulty)
}

// Reset clears the run back to the difficulty's starting values.
func (s *Session) Reset() {
	clear(s.obstacles)
	clear(s.platforms)
	clear(s.collectibles)
	s.obstacles = s.obstacles[:0]
	s.platforms = s.platforms[:0]
	s.collectibles = s.collectibles[:0]

	s.inventory = nil
	s.formed = nil
	s.lastMolecule = nil
	s.elementsCollected = 0

	s.clock = 0
	s.accumulator = 0
	s.synced = false
	s.lastObstacleSpawn = 0
	s.lastElementSpawn = 0
	s.lastPlatformSpawn = 0
	s.invulnerableUntil = 0
	s.bonusInvulnerableUntil = 0
	s.slowUntil = 0
	s.gameOverReported = false

	s.score = 0
	s.level = 1
	s.lives = core.Clamp(s.profile.Lives, 0, s.cfg.Bonuses.MaxLives)
	s.speed = s.profile.BaseSpeed
	s.spawnRate = s.profile.BaseSpawnRate

	s.player.Respawn(s.startX(), s.startY())
	s.player.SetLevel(1)

	s.hud.OnScoreChanged(s.score)
	s.hud.OnLevelChanged(s.level)
	s.hud.OnLivesChanged(s.lives)
	s.hud.OnElementsChanged(nil)
}

// TogglePause switches between running and paused. It does nothing once
// the session has stopped.
func (s *Session) TogglePause() {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
		s.hud.OnPauseChanged(true)
	case StatePaused:
		s.state = StateRunning
		s.synced = false
		s.hud.OnPauseChanged(false)
	}
}

// Stop ends the run without reporting a game over.
func (s *Session) Stop() {
	if s.state == StateStopped {
		return
	}
	s.state = StateStopped
	s.logger.Info("game stopped", "score", s.score)
}

// Jump makes the player jump. Ignored unless running.
func (s *Session) Jump() bool {
	if s.state != StateRunning {
		return false
	}
	return s.player.Jump()
}

// Frame is called once per display frame with a monotonic time in
// milliseconds. It runs as many fixed steps as the elapsed time allows,
// renders once and reports whether the session is still live.
func (s *Session) Frame(now float64) bool {
	s.frameSteps = 0
	if s.state == StateStopped {
		return false
	}
	if s.state == StatePaused {
		s.renderer.Render(s.Snapshot())
		return true
	}

	if !s.synced {
		s.lastTime = now
		s.accumulator = 0
		s.synced = true
	} else {
		delta := core.ClampF(now-s.lastTime, 0, s.cfg.World.MaxFrameDelta)
		s.lastTime = now
		s.accumulator += delta
	}

	step := s.cfg.World.TimeStepMs
	for s.accumulator >= step {
		s.update(step)
		s.accumulator -= step
		s.frameSteps++
		if s.state != StateRunning {
			s.accumulator = 0
			break
		}
	}

	s.renderer.Render(s.Snapshot())
	return s.state != StateStopped
}

// FrameSteps returns the number of fixed steps the last Frame ran.
func (s *Session) FrameSteps() int {
	return s.frameSteps
}

// update advances the simulation by one fixed step of dt milliseconds.
func (s *Session) update(dt float64) {
	s.clock += dt
	prevScore := s.score

	prevBottom := s.player.Bottom()
	s.player.Update(dt, s.physics)

	scroll := s.scrollSpeed()
	s.updatePlatforms(dt, scroll, prevBottom)
	s.spawn()

	s.updateObstacles(dt, scroll)
	if s.state == StateStopped {
		s.notifyScore(prevScore)
		return
	}
	s.updateCollectibles(dt, scroll)

	s.speed, s.spawnRate = s.progression.Advance(s.speed, s.spawnRate)

	if lvl := s.progression.LevelFor(s.score); lvl > s.level {
		s.level = lvl
		s.player.SetLevel(lvl)
		s.hud.OnLevelChanged(lvl)
		s.logger.Debug("level up", "level", lvl, "score", s.score)
	}
	s.notifyScore(prevScore)
}

func (s *Session) notifyScore(prev int) {
	if s.score != prev {
		s.hud.OnScoreChanged(s.score)
	}
}

func (s *Session) scrollSpeed() float64 {
	if s.clock < s.slowUntil {
		return s.speed * s.cfg.Bonuses.SlowFactor
	}
	return s.speed
}

// Invulnerable reports whether damage is currently ignored.
func (s *Session) Invulnerable() bool {
	return s.clock < s.invulnerableUntil || s.clock < s.bonusInvulnerableUntil
}

func (s *Session) updatePlatforms(dt, scroll, prevBottom float64) {
	kept := s.platforms[:0]
	for _, p := range s.platforms {
		p.Update(dt, scroll)
		if !p.ShouldBeRemoved() {
			kept = append(kept, p)
		}
	}
	clear(s.platforms[len(kept):])
	s.platforms = kept

	for _, p := range s.platforms {
		if p.CanLandOn(s.player, prevBottom) {
			s.player.Land(p.Y)
			p.OnLanded()
			return
		}
	}

	if ground := s.cfg.World.GroundLevel(); s.player.Bottom() > ground {
		s.player.Land(ground)
	}
}

func (s *Session) spawn() {
	if s.clock-s.lastObstacleSpawn > s.spawnRate {
		if s.rng.Float64() < s.profile.ComplexStructureChance {
			st := s.spawner.NextStructure()
			s.obstacles = append(s.obstacles, st.Obstacles...)
			s.platforms = append(s.platforms, st.Platforms...)
			s.logger.Debug("structure spawned", "kind", st.Kind,
				"obstacles", len(st.Obstacles), "platforms", len(st.Platforms))
		} else {
			s.obstacles = append(s.obstacles, s.spawner.NextObstacle())
		}
		s.lastObstacleSpawn = s.clock
	}

	sp := s.cfg.Spawning
	if s.clock-s.lastElementSpawn > s.spawnRate*sp.ElementIntervalFactor {
		if s.rng.Float64() < sp.ElementChance {
			s.collectibles = append(s.collectibles, s.spawner.NextCollectible())
		}
		s.lastElementSpawn = s.clock
	}

	if s.clock-s.lastPlatformSpawn > s.spawnRate*sp.PlatformIntervalFactor {
		if s.rng.Float64() < sp.PlatformChance {
			s.platforms = append(s.platforms, s.spawner.NextPlatform())
		}
		s.lastPlatformSpawn = s.clock
	}
}

// updateObstacles moves every obstacle, scores the ones that left the lane
// and applies damage on contact. Every obstacle kind damages alike.
func (s *Session) updateObstacles(dt, scroll float64) {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Update(dt, scroll)
		if o.ShouldBeRemoved() {
			s.score += s.cfg.Scoring.ObstaclePassed
			continue
		}
		kept = append(kept, o)

		if s.state == StateRunning && !s.Invulnerable() && o.Bounds().Intersects(s.player.Bounds()) {
			s.damage(o)
		}
	}
	clear(s.obstacles[len(kept):])
	s.obstacles = kept
}

func (s *Session) damage(o *Obstacle) {
	s.lives = max(s.lives-1, 0)
	s.invulnerableUntil = s.clock + s.cfg.Bonuses.InvulnerabilityMs
	s.hud.OnLivesChanged(s.lives)
	s.logger.Debug("player hit", "obstacle", o.Kind, "danger", o.Danger(), "lives", s.lives)

	if s.lives == 0 {
		s.gameOver()
		return
	}
	s.player.Respawn(s.startX(), s.startY())
}

func (s *Session) updateCollectibles(dt, scroll float64) {
	kept := s.collectibles[:0]
	for _, c := range s.collectibles {
		c.Update(dt, scroll)
		if c.ShouldBeRemoved() {
			continue
		}
		if c.Bounds().Intersects(s.player.Bounds()) {
			s.collect(c)
			continue
		}
		kept = append(kept, c)
	}
	clear(s.collectibles[len(kept):])
	s.collectibles = kept
}

func (s *Session) collect(c *Collectible) {
	s.inventory = append(s.inventory, c.Symbol)
	s.elementsCollected++
	s.score += s.cfg.Scoring.ElementCollected

	res := s.catalog.Resolve(s.inventory)
	s.inventory = res.Remaining
	if res.Formed != nil {
		m := *res.Formed
		s.score += m.Points
		s.formed = append(s.formed, m)
		s.lastMolecule = &m
		bonus := s.grantBonus()
		s.hud.OnMoleculeFormed(cloneFormed(m))
		s.logger.Info("molecule formed", "formula", m.Formula, "name", m.Name,
			"points", m.Points, "bonus", bonus)
	}
	s.hud.OnElementsChanged(slices.Clone(s.inventory))
}

func (s *Session) grantBonus() Bonus {
	b := Bonus(s.rng.Intn(3))
	switch b {
	case BonusExtraLife:
		s.lives = min(s.lives+1, s.cfg.Bonuses.MaxLives)
		s.hud.OnLivesChanged(s.lives)
	case BonusInvulnerability:
		s.bonusInvulnerableUntil = s.clock + s.cfg.Bonuses.BonusInvulnerabilityMs
	case BonusSlowDown:
		s.slowUntil = s.clock + s.cfg.Bonuses.SlowMs
	}
	return b
}

func (s *Session) gameOver() {
	s.state = StateStopped
	if s.gameOverReported {
		return
	}
	s.gameOverReported = true

	report := s.Report()
	s.logger.Info("game over", "score", report.Score, "level", report.Level,
		"difficulty", report.Difficulty, "molecules", len(report.Formed))
	s.menu.OnGameOver(report)
}

// Report returns the current run totals.
func (s *Session) Report() GameOverReport {
	formed := make([]chem.FormedMolecule, len(s.formed))
	for i, m := range s.formed {
		formed[i] = cloneFormed(m)
	}
	return GameOverReport{
		Score:             s.score,
		Level:             s.level,
		Difficulty:        s.difficulty,
		Inventory:         slices.Clone(s.inventory),
		Formed:            formed,
		LivesRemaining:    s.lives,
		ElementsCollected: s.elementsCollected,
	}
}

// State returns the run state.
func (s *Session) State() State { return s.state }

// Difficulty returns the difficulty of the current run.
func (s *Session) Difficulty() config.Difficulty { return s.difficulty }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Speed returns the current scroll speed before any slow-down.
func (s *Session) Speed() float64 { return s.speed }
