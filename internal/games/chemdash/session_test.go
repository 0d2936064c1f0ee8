package chemdash

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/chemdash/internal/chem"
	"github.com/vovakirdan/chemdash/internal/config"
)

type recordingHUD struct {
	NopHUD
	scores       []int
	levels       []int
	lives        []int
	difficulties []config.Difficulty
	elements     [][]chem.Symbol
	molecules    []chem.FormedMolecule
	pauses       []bool
}

func (h *recordingHUD) OnScoreChanged(s int) { h.scores = append(h.scores, s) }
func (h *recordingHUD) OnLevelChanged(l int) { h.levels = append(h.levels, l) }
func (h *recordingHUD) OnLivesChanged(l int) { h.lives = append(h.lives, l) }
func (h *recordingHUD) OnDifficultyChanged(d config.Difficulty) {
	h.difficulties = append(h.difficulties, d)
}
func (h *recordingHUD) OnElementsChanged(e []chem.Symbol)      { h.elements = append(h.elements, e) }
func (h *recordingHUD) OnMoleculeFormed(m chem.FormedMolecule) { h.molecules = append(h.molecules, m) }
func (h *recordingHUD) OnPauseChanged(p bool)                  { h.pauses = append(h.pauses, p) }

type recordingMenu struct {
	reports []GameOverReport
}

func (m *recordingMenu) OnGameOver(r GameOverReport) { m.reports = append(m.reports, r) }

type countingRenderer struct {
	frames int
	last   Snapshot
}

func (r *countingRenderer) Render(s Snapshot) {
	r.frames++
	r.last = s
}

// quietConfig disables random spawning so tests control every entity.
func quietConfig() config.ChemDashConfig {
	cfg := config.DefaultChemDashConfig()
	for d, p := range cfg.Difficulties {
		p.BaseSpawnRate = 1e9
		p.ComplexStructureChance = 0
		cfg.Difficulties[d] = p
	}
	cfg.Spawning.ElementChance = 0
	cfg.Spawning.PlatformChance = 0
	return cfg
}

type harness struct {
	s        *Session
	hud      *recordingHUD
	menu     *recordingMenu
	renderer *countingRenderer
}

func newHarness(t *testing.T, cfg config.ChemDashConfig, d config.Difficulty) *harness {
	t.Helper()
	h := &harness{hud: &recordingHUD{}, menu: &recordingMenu{}, renderer: &countingRenderer{}}
	s, err := NewSession(Options{
		Config:   cfg,
		Catalog:  chem.DefaultCatalog(),
		Elements: chem.DefaultElements(),
		Rand:     rand.New(rand.NewSource(7)),
		HUD:      h.hud,
		Menu:     h.menu,
		Renderer: h.renderer,
	})
	if err != nil {
		t.Fatalf("NewSession() = %v", err)
	}
	if err := s.StartGame(d); err != nil {
		t.Fatalf("StartGame(%s) = %v", d, err)
	}
	s.obstacles = nil
	s.collectibles = nil
	h.s = s
	return h
}

func newQuietHarness(t *testing.T) *harness {
	return newHarness(t, quietConfig(), config.DifficultyMedium)
}

// settle runs steps until the player stands on the ground.
func (h *harness) settle(t *testing.T) {
	t.Helper()
	for i := 0; i < 120; i++ {
		h.s.update(step)
		if h.s.player.Grounded {
			return
		}
	}
	t.Fatal("player never landed")
}

// hitPlayer places an obstacle of kind over the player and runs one step.
func (h *harness) hitPlayer(kind ObstacleKind) {
	p := h.s.player
	h.s.obstacles = append(h.s.obstacles[:0], NewObstacle(kind, p.X, p.Y-10, 60, 60))
	h.s.update(step)
}

func elementFor(t *testing.T, sym chem.Symbol) chem.Element {
	t.Helper()
	el, ok := chem.DefaultElements().Lookup(sym)
	if !ok {
		t.Fatalf("no element %s", sym)
	}
	return el
}

func (h *harness) pickUp(t *testing.T, sym chem.Symbol) {
	t.Helper()
	p := h.s.player
	h.s.collectibles = append(h.s.collectibles, NewCollectible(elementFor(t, sym), p.X, p.Y, 25, 25))
	h.s.update(step)
}

func TestNewSessionRequiresData(t *testing.T) {
	if _, err := NewSession(Options{Config: quietConfig(), Elements: chem.DefaultElements()}); err == nil {
		t.Error("expected error without catalog")
	}
	if _, err := NewSession(Options{Config: quietConfig(), Catalog: chem.DefaultCatalog()}); err == nil {
		t.Error("expected error without elements")
	}
	bad := quietConfig()
	bad.World.TimeStepMs = 0
	if _, err := NewSession(Options{Config: bad, Catalog: chem.DefaultCatalog(), Elements: chem.DefaultElements()}); err == nil {
		t.Error("expected config validation error")
	}
}

func TestStartGameUsesProfile(t *testing.T) {
	tests := []struct {
		d     config.Difficulty
		lives int
		speed float64
		rate  float64
	}{
		{config.DifficultyEasy, 5, 3.5, 2200},
		{config.DifficultyMedium, 3, 4, 1800},
		{config.DifficultyHard, 2, 5, 1500},
	}

	for _, tc := range tests {
		t.Run(string(tc.d), func(t *testing.T) {
			h := newHarness(t, config.DefaultChemDashConfig(), tc.d)
			s := h.s
			if s.State() != StateRunning {
				t.Errorf("state = %s", s.State())
			}
			if s.lives != tc.lives || s.speed != tc.speed || s.spawnRate != tc.rate {
				t.Errorf("lives=%d speed=%v rate=%v", s.lives, s.speed, s.spawnRate)
			}
			if !slices.Equal(h.hud.difficulties, []config.Difficulty{tc.d}) {
				t.Errorf("difficulty notifications %v", h.hud.difficulties)
			}
		})
	}
}

func TestStartGameSpawnsOpeningEntities(t *testing.T) {
	h := newHarness(t, config.DefaultChemDashConfig(), config.DifficultyMedium)
	if err := h.s.RestartGame(); err != nil {
		t.Fatal(err)
	}
	if len(h.s.obstacles) != 1 || len(h.s.collectibles) != 1 {
		t.Errorf("opening spawn: %d obstacles, %d collectibles", len(h.s.obstacles), len(h.s.collectibles))
	}
}

func TestDamageAndInvulnerability(t *testing.T) {
	h := newQuietHarness(t)
	h.settle(t)

	h.hitPlayer(ObstacleAcid)
	if h.s.Lives() != 2 {
		t.Fatalf("lives = %d, expected 2", h.s.Lives())
	}
	if !h.s.Invulnerable() {
		t.Fatal("not invulnerable after a hit")
	}
	if h.s.player.X != 80 || h.s.player.Y != 330 {
		t.Errorf("player not respawned: (%v, %v)", h.s.player.X, h.s.player.Y)
	}

	h.hitPlayer(ObstacleBeaker)
	h.hitPlayer(ObstacleBurner)
	if h.s.Lives() != 2 {
		t.Errorf("lives = %d, hits inside the window must be ignored", h.s.Lives())
	}
	if !slices.Equal(h.hud.lives, []int{3, 2}) {
		t.Errorf("lives notifications %v", h.hud.lives)
	}

	h.s.obstacles = nil
	for h.s.Invulnerable() {
		h.s.update(step)
	}
	if h.s.clock < 2000 {
		t.Errorf("invulnerability ended at %vms, expected 2000", h.s.clock)
	}
	h.hitPlayer(ObstacleFlask)
	if h.s.Lives() != 1 {
		t.Errorf("lives = %d after window elapsed, expected 1", h.s.Lives())
	}
}

func TestImpenetrableObstaclesStillDamage(t *testing.T) {
	// Solid blockers do not push the player back; touching one costs a life
	// like any hazard.
	for _, kind := range []ObstacleKind{ObstacleWall, ObstacleBarrier, ObstacleHorizontalBar} {
		t.Run(kind.String(), func(t *testing.T) {
			h := newQuietHarness(t)
			h.settle(t)
			if !kind.Impenetrable() {
				t.Fatalf("%s not flagged impenetrable", kind)
			}
			h.hitPlayer(kind)
			if h.s.Lives() != 2 {
				t.Errorf("lives = %d, expected 2", h.s.Lives())
			}
		})
	}
}

func TestGameOverAfterThreeHits(t *testing.T) {
	h := newQuietHarness(t)
	h.settle(t)

	for i := 0; i < 3; i++ {
		h.hitPlayer(ObstacleMovingSpike)
		h.s.obstacles = nil
		h.s.clock += h.s.cfg.Bonuses.InvulnerabilityMs
	}

	if h.s.Lives() != 0 {
		t.Fatalf("lives = %d, expected 0", h.s.Lives())
	}
	if h.s.State() != StateStopped {
		t.Fatalf("state = %s, expected stopped", h.s.State())
	}
	if len(h.menu.reports) != 1 {
		t.Fatalf("game over reported %d times, expected once", len(h.menu.reports))
	}
	if r := h.menu.reports[0]; r.LivesRemaining != 0 || r.Difficulty != config.DifficultyMedium || r.Level != 1 {
		t.Errorf("report %+v", r)
	}

	frames := h.renderer.frames
	for i := 0; i < 5; i++ {
		if h.s.Frame(float64(i) * 100) {
			t.Fatal("Frame reported running after game over")
		}
	}
	if h.renderer.frames != frames {
		t.Error("stopped session kept rendering")
	}
	if h.s.Jump() {
		t.Error("jump accepted after game over")
	}
	h.s.TogglePause()
	if h.s.State() != StateStopped {
		t.Error("pause toggled a stopped session")
	}
	if len(h.menu.reports) != 1 {
		t.Errorf("game over reported %d times", len(h.menu.reports))
	}
}

func TestGameOverThroughFrames(t *testing.T) {
	h := newQuietHarness(t)
	h.s.lives = 1

	now := 0.0
	h.s.Frame(now)
	for i := 0; i < 30; i++ {
		now += 17
		h.s.Frame(now)
	}
	p := h.s.player
	h.s.obstacles = []*Obstacle{NewObstacle(ObstacleAcid, p.X, p.Y, 40, 40)}

	now += 17
	if h.s.Frame(now) {
		t.Fatal("Frame still running after the last life")
	}
	if len(h.menu.reports) != 1 {
		t.Fatalf("reports = %d", len(h.menu.reports))
	}
	if h.renderer.last.State != StateStopped {
		t.Error("final frame not rendered")
	}
}

func TestFixedStepAccumulator(t *testing.T) {
	h := newQuietHarness(t)

	if !h.s.Frame(1000) {
		t.Fatal("Frame stopped on first call")
	}
	if h.s.FrameSteps() != 0 {
		t.Errorf("first frame ran %d steps, expected 0", h.s.FrameSteps())
	}

	h.s.Frame(1051)
	if h.s.FrameSteps() != 3 {
		t.Errorf("51ms ran %d steps, expected 3", h.s.FrameSteps())
	}

	h.s.Frame(1051)
	if h.s.FrameSteps() != 0 {
		t.Errorf("zero delta ran %d steps", h.s.FrameSteps())
	}

	h.s.Frame(900)
	if h.s.FrameSteps() != 0 {
		t.Errorf("backwards time ran %d steps", h.s.FrameSteps())
	}

	// A 10s stall is clamped to 250ms of catch-up.
	h.s.Frame(11000)
	if h.s.FrameSteps() != 15 {
		t.Errorf("stall ran %d steps, expected 15", h.s.FrameSteps())
	}
	if h.renderer.frames != 5 {
		t.Errorf("rendered %d times, expected once per frame", h.renderer.frames)
	}
}

func TestPauseSkipsUpdates(t *testing.T) {
	h := newQuietHarness(t)
	h.s.Frame(0)
	h.s.Frame(51)
	clock := h.s.clock

	h.s.TogglePause()
	if h.s.State() != StatePaused {
		t.Fatalf("state = %s", h.s.State())
	}
	if h.s.Jump() {
		t.Error("jump accepted while paused")
	}

	frames := h.renderer.frames
	if !h.s.Frame(5000) {
		t.Fatal("paused session reported stopped")
	}
	if h.s.FrameSteps() != 0 || h.s.clock != clock {
		t.Errorf("paused frame advanced the clock to %v", h.s.clock)
	}
	if h.renderer.frames != frames+1 {
		t.Error("paused frame not rendered")
	}

	h.s.TogglePause()
	h.s.Frame(9000)
	if h.s.FrameSteps() != 0 {
		t.Errorf("resume caught up %d steps, expected a fresh sync", h.s.FrameSteps())
	}
	h.s.Frame(9051)
	if h.s.FrameSteps() != 3 {
		t.Errorf("after resume ran %d steps, expected 3", h.s.FrameSteps())
	}

	if !slices.Equal(h.hud.pauses, []bool{true, false}) {
		t.Errorf("pause notifications %v", h.hud.pauses)
	}
}

func TestStopIsSilent(t *testing.T) {
	h := newQuietHarness(t)
	h.s.Stop()
	if h.s.Frame(0) {
		t.Error("Frame after Stop reported running")
	}
	if len(h.menu.reports) != 0 {
		t.Error("Stop reported a game over")
	}
}

func TestLandingOnPlatformIsStable(t *testing.T) {
	h := newQuietHarness(t)
	h.settle(t)

	plat := NewPlatform(PlatformBasic, 0, 300, 600, 15)
	h.s.platforms = []*Platform{plat}
	h.s.player.Land(plat.Y)
	y := h.s.player.Y

	for i := 0; i < 60; i++ {
		h.s.update(step)
		if !h.s.player.Grounded {
			t.Fatalf("step %d: player fell off the platform", i)
		}
		if h.s.player.Y != y {
			t.Fatalf("step %d: y moved from %v to %v", i, y, h.s.player.Y)
		}
	}
}

func TestPlatformTakesPriorityOverGround(t *testing.T) {
	h := newQuietHarness(t)
	h.settle(t)

	plat := NewPlatform(PlatformMetal, 0, 379, 600, 15)
	h.s.platforms = []*Platform{plat}
	h.s.player.Land(379)
	h.s.update(step)
	if h.s.player.Bottom() != 379 {
		t.Errorf("bottom = %v, expected to rest on the platform at 379", h.s.player.Bottom())
	}
}

func TestDisappearingPlatformDropsPlayer(t *testing.T) {
	h := newQuietHarness(t)
	h.settle(t)

	plat := NewPlatform(PlatformDisappearing, 0, 300, 2000, 15)
	h.s.platforms = []*Platform{plat}
	h.s.player.Land(plat.Y)

	for i := 0; i < 70; i++ {
		h.s.update(step)
	}
	if len(h.s.platforms) != 0 {
		t.Error("gone platform not swept")
	}
	if h.s.player.Bottom() <= 300 {
		t.Errorf("player still at bottom %v after the platform vanished", h.s.player.Bottom())
	}
}

func TestObstaclePassedScores(t *testing.T) {
	h := newQuietHarness(t)
	h.hud.scores = nil

	h.s.obstacles = []*Obstacle{NewObstacle(ObstacleBeaker, -28, 350, 30, 30)}
	h.s.update(step)

	if h.s.Score() != 10 || len(h.s.obstacles) != 0 {
		t.Errorf("score %d, %d obstacles left", h.s.Score(), len(h.s.obstacles))
	}
	if !slices.Equal(h.hud.scores, []int{10}) {
		t.Errorf("score notifications %v", h.hud.scores)
	}

	h.s.update(step)
	if len(h.hud.scores) != 1 {
		t.Errorf("unchanged score notified again: %v", h.hud.scores)
	}
}

func TestCollectFormsMolecule(t *testing.T) {
	h := newQuietHarness(t)
	h.settle(t)

	h.pickUp(t, "O")
	h.pickUp(t, "H")
	if h.s.Score() != 100 || len(h.hud.molecules) != 0 {
		t.Fatalf("score %d, molecules %d", h.s.Score(), len(h.hud.molecules))
	}

	livesBefore := h.s.Lives()
	h.pickUp(t, "H")

	if len(h.hud.molecules) != 1 || h.hud.molecules[0].Formula != "H2O" {
		t.Fatalf("molecules %v", h.hud.molecules)
	}
	if h.s.Score() != 3*50+150 {
		t.Errorf("score = %d, expected 3x50 + 150", h.s.Score())
	}
	if len(h.s.inventory) != 0 {
		t.Errorf("inventory %v, expected empty", h.s.inventory)
	}
	if h.s.elementsCollected != 3 || len(h.s.collectibles) != 0 {
		t.Errorf("collected %d, %d pickups left", h.s.elementsCollected, len(h.s.collectibles))
	}

	got := 0
	if h.s.Lives() > livesBefore {
		got++
	}
	if h.s.bonusInvulnerableUntil > 0 {
		got++
	}
	if h.s.slowUntil > 0 {
		got++
	}
	if got != 1 {
		t.Errorf("granted %d bonuses, expected exactly one", got)
	}

	last := h.hud.elements[len(h.hud.elements)-1]
	if len(last) != 0 {
		t.Errorf("last elements notification %v", last)
	}

	r := h.s.Report()
	if !slices.Equal(r.Formulas(), []string{"H2O"}) || r.ElementsCollected != 3 {
		t.Errorf("report %+v", r)
	}
}

func TestCollectWithoutMatch(t *testing.T) {
	h := newQuietHarness(t)
	h.settle(t)

	h.pickUp(t, "Fe")
	if !slices.Equal(h.s.inventory, []chem.Symbol{"Fe"}) {
		t.Errorf("inventory %v", h.s.inventory)
	}
	if h.s.Score() != 50 || len(h.s.formed) != 0 {
		t.Errorf("score %d, formed %d", h.s.Score(), len(h.s.formed))
	}
}

func TestExtraLifeCapped(t *testing.T) {
	h := newQuietHarness(t)
	h.s.lives = h.s.cfg.Bonuses.MaxLives

	for i := 0; i < 50; i++ {
		h.s.grantBonus()
		if h.s.lives > h.s.cfg.Bonuses.MaxLives {
			t.Fatalf("lives %d above max", h.s.lives)
		}
	}
}

func TestBonusInvulnerabilityBlocksDamage(t *testing.T) {
	h := newQuietHarness(t)
	h.settle(t)
	h.s.bonusInvulnerableUntil = h.s.clock + 5000

	h.hitPlayer(ObstacleAcid)
	if h.s.Lives() != 3 {
		t.Errorf("lives = %d while shielded", h.s.Lives())
	}
}

func TestSlowDownScalesScroll(t *testing.T) {
	h := newQuietHarness(t)
	h.s.slowUntil = h.s.clock + 5000

	o := NewObstacle(ObstacleBeaker, 400, 200, 30, 30)
	h.s.obstacles = []*Obstacle{o}
	speed := h.s.Speed()
	h.s.update(step)

	if !approx(o.X, 400-speed*0.6) {
		t.Errorf("x = %v, expected %v", o.X, 400-speed*0.6)
	}
}

func TestDifficultyRamp(t *testing.T) {
	h := newQuietHarness(t)
	rate := h.s.spawnRate

	for i := 0; i < 10; i++ {
		h.s.update(step)
	}
	if !approx(h.s.Speed(), 4.02) {
		t.Errorf("speed = %v, expected 4.02", h.s.Speed())
	}
	if h.s.spawnRate != rate-5 {
		t.Errorf("spawn rate = %v, expected %v", h.s.spawnRate, rate-5)
	}
}

func TestLevelUp(t *testing.T) {
	h := newQuietHarness(t)
	h.s.score = 495
	h.hud.levels = nil

	h.s.obstacles = []*Obstacle{NewObstacle(ObstacleBeaker, -28, 350, 30, 30)}
	h.s.update(step)

	if h.s.Level() != 2 {
		t.Fatalf("level = %d, expected 2", h.s.Level())
	}
	if !slices.Equal(h.hud.levels, []int{2}) {
		t.Errorf("level notifications %v", h.hud.levels)
	}
	if h.s.player.Molecule.Formula != "H2" {
		t.Errorf("player molecule %s, expected H2", h.s.player.Molecule.Formula)
	}
}

func TestSpawnTimers(t *testing.T) {
	cfg := config.DefaultChemDashConfig()
	p := cfg.Difficulties[config.DifficultyMedium]
	p.BaseSpawnRate = 100
	p.ComplexStructureChance = 0
	cfg.Difficulties[config.DifficultyMedium] = p
	cfg.Spawning.SpawnRateFloor = 10
	cfg.Spawning.ElementChance = 1
	cfg.Spawning.PlatformChance = 1

	h := newHarness(t, cfg, config.DifficultyMedium)
	for i := 0; i < 20; i++ {
		h.s.update(step)
	}

	if len(h.s.obstacles) < 2 {
		t.Errorf("%d obstacles after 333ms at a 100ms rate", len(h.s.obstacles))
	}
	if len(h.s.collectibles) < 1 {
		t.Error("no collectible spawned")
	}
	if len(h.s.platforms) < 1 {
		t.Error("no platform spawned")
	}
}

func TestStructuresSpawn(t *testing.T) {
	cfg := config.DefaultChemDashConfig()
	p := cfg.Difficulties[config.DifficultyHard]
	p.BaseSpawnRate = 100
	p.ComplexStructureChance = 1
	cfg.Difficulties[config.DifficultyHard] = p
	cfg.Spawning.SpawnRateFloor = 10

	h := newHarness(t, cfg, config.DifficultyHard)
	for i := 0; i < 8; i++ {
		h.s.update(step)
	}
	if len(h.s.obstacles) < 2 {
		t.Errorf("structure produced %d obstacles", len(h.s.obstacles))
	}
}

func TestResetRestoresStart(t *testing.T) {
	h := newQuietHarness(t)
	h.settle(t)
	h.pickUp(t, "Na")
	h.hitPlayer(ObstacleAcid)
	h.s.speed = 9

	if err := h.s.StartGame(config.DifficultyHard); err != nil {
		t.Fatal(err)
	}
	s := h.s
	if s.Score() != 0 || s.Level() != 1 || s.Lives() != 2 || s.Speed() != 5 {
		t.Errorf("score=%d level=%d lives=%d speed=%v", s.Score(), s.Level(), s.Lives(), s.Speed())
	}
	if len(s.inventory) != 0 || len(s.formed) != 0 || s.clock != 0 || s.Invulnerable() {
		t.Error("run state not cleared")
	}
	if s.Difficulty() != config.DifficultyHard {
		t.Errorf("difficulty %s", s.Difficulty())
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	h := newQuietHarness(t)
	h.settle(t)
	h.pickUp(t, "Na")
	h.s.obstacles = []*Obstacle{NewObstacle(ObstacleFlask, 500, 340, 30, 40)}

	snap := h.s.Snapshot()
	snap.Inventory[0] = "Xx"
	snap.Obstacles[0].X = -999
	snap.Player.Y = -999

	if h.s.inventory[0] != "Na" || h.s.obstacles[0].X != 500 || h.s.player.Y == -999 {
		t.Error("snapshot shares memory with the session")
	}
	if snap.World.Width != 800 || snap.Lives != 3 {
		t.Errorf("snapshot %+v", snap)
	}
}
