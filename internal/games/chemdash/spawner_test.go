package chemdash

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/chemdash/internal/chem"
	"github.com/vovakirdan/chemdash/internal/config"
)

func testSpawner(t *testing.T, d config.Difficulty, seed int64) *Spawner {
	t.Helper()
	cfg := config.DefaultChemDashConfig()
	profile, err := cfg.Profile(d)
	if err != nil {
		t.Fatal(err)
	}
	pattern, err := NewPattern(profile)
	if err != nil {
		t.Fatalf("NewPattern() = %v", err)
	}
	return NewSpawner(rand.New(rand.NewSource(seed)), cfg.World, chem.DefaultElements(), pattern)
}

func TestNewPatternRejectsUnknownKinds(t *testing.T) {
	profile := config.DefaultChemDashConfig().Difficulties[config.DifficultyEasy]
	profile.Obstacles = append(slices.Clone(profile.Obstacles), "lava")
	if _, err := NewPattern(profile); err == nil {
		t.Error("expected unknown obstacle kind error")
	}
}

func TestNextObstacle(t *testing.T) {
	s := testSpawner(t, config.DifficultyEasy, 3)
	allowed := map[ObstacleKind]bool{
		ObstacleBeaker: true, ObstacleFlask: true, ObstacleHorizontalBar: true, ObstacleWall: true,
		ObstacleMovingSpike: true, ObstacleSwingingBlade: true, ObstacleFloatingMine: true,
	}

	for i := 0; i < 2000; i++ {
		o := s.NextObstacle()
		if !allowed[o.Kind] {
			t.Fatalf("easy spawned %s", o.Kind)
		}

		x := o.X
		if o.Motion != nil {
			x = o.Motion.OriginX
		}
		if x != 800 {
			t.Fatalf("%s spawned at x=%v, expected the right edge", o.Kind, x)
		}

		switch o.Kind {
		case ObstacleWall:
			if o.W != 30 || o.H != 200 || o.Bottom() != 380 {
				t.Fatalf("wall %+v", o.Body)
			}
		case ObstacleHorizontalBar:
			if o.W < 120 || o.W >= 300 || o.H != 15 || o.Y > 320 || o.Y < 220 {
				t.Fatalf("bar %+v", o.Body)
			}
		case ObstacleBeaker, ObstacleFlask:
			if o.W < 25 || o.W >= 45 || o.H < 25 || o.H >= 60 || !approx(o.Bottom(), 380) {
				t.Fatalf("%s %+v", o.Kind, o.Body)
			}
		default:
			if o.Motion == nil || o.W != 30 || o.H != 30 {
				t.Fatalf("moving %s %+v", o.Kind, o.Body)
			}
		}
	}
}

func TestNextObstacleAlwaysMoving(t *testing.T) {
	s := testSpawner(t, config.DifficultyMedium, 5)
	s.pattern.MovingObstacleChance = 1

	for i := 0; i < 200; i++ {
		if o := s.NextObstacle(); !o.Kind.Moving() {
			t.Fatalf("spawned %s with moving chance 1", o.Kind)
		}
	}
}

func TestNextPlatform(t *testing.T) {
	s := testSpawner(t, config.DifficultyHard, 9)
	allowed := map[PlatformKind]bool{
		PlatformGlass: true, PlatformCrystal: true, PlatformEnergy: true,
		PlatformMovingVertical: true, PlatformMovingHorizontal: true, PlatformDisappearing: true,
	}

	for i := 0; i < 1000; i++ {
		p := s.NextPlatform()
		if !allowed[p.Kind] {
			t.Fatalf("hard spawned %s", p.Kind)
		}
		if p.W < 120 || p.W >= 300 || p.H < 15 || p.H >= 25 {
			t.Fatalf("platform size %vx%v", p.W, p.H)
		}
		originY := p.Y
		if p.Motion != nil {
			originY = p.Motion.OriginY
		}
		if originY > 320 || originY <= 200 {
			t.Fatalf("platform top %v outside 60..180 above ground", originY)
		}
	}
}

func TestNextCollectible(t *testing.T) {
	s := testSpawner(t, config.DifficultyMedium, 11)
	seen := make(map[chem.Symbol]int)

	for i := 0; i < 3000; i++ {
		c := s.NextCollectible()
		if c.X != 800 || c.W != 25 || c.H != 25 {
			t.Fatalf("collectible %+v", c.Body)
		}
		if c.Y > 330 || c.Y <= 180 {
			t.Fatalf("collectible y=%v outside reach band", c.Y)
		}
		if c.Element.Symbol != c.Symbol {
			t.Fatalf("element data %s for symbol %s", c.Element.Symbol, c.Symbol)
		}
		seen[c.Symbol]++
	}

	if seen["H"] <= seen["Fe"] {
		t.Errorf("H %d, Fe %d: common elements should spawn more often", seen["H"], seen["Fe"])
	}
}

func TestNextStructure(t *testing.T) {
	s := testSpawner(t, config.DifficultyHard, 13)
	kinds := make(map[StructureKind]int)

	for i := 0; i < 400; i++ {
		st := s.NextStructure()
		kinds[st.Kind]++

		if len(st.Obstacles) == 0 {
			t.Fatalf("%s has no obstacles", st.Kind)
		}
		for _, o := range st.Obstacles {
			x := o.X
			if o.Motion != nil {
				x = o.Motion.OriginX
			}
			if x < 800 {
				t.Fatalf("%s placed %s at x=%v, inside the visible lane", st.Kind, o.Kind, x)
			}
		}

		switch st.Kind {
		case StructureCorridor:
			if st.Obstacles[0].Kind != ObstacleHorizontalBar {
				t.Fatalf("corridor without ceiling: %s", st.Obstacles[0].Kind)
			}
		case StructureJumpingPuzzle:
			if n := len(st.Platforms); n < 4 || n > 6 {
				t.Fatalf("puzzle with %d platforms", n)
			}
			if len(st.Obstacles) != len(st.Platforms)-1 {
				t.Fatalf("puzzle with %d hazards for %d platforms", len(st.Obstacles), len(st.Platforms))
			}
		case StructureDeadEnd:
			if st.Obstacles[0].Kind != ObstacleWall || len(st.Platforms) != 1 {
				t.Fatalf("dead end %v", st.Obstacles[0].Kind)
			}
		case StructureMaze:
			if len(st.Platforms) < 6 || len(st.Platforms) > 9 {
				t.Fatalf("maze with %d platforms", len(st.Platforms))
			}
		}
	}

	for _, k := range []StructureKind{StructureCorridor, StructureJumpingPuzzle, StructureDeadEnd, StructureMaze} {
		if kinds[k] == 0 {
			t.Errorf("%s never generated", k)
		}
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	a := testSpawner(t, config.DifficultyMedium, 42)
	b := testSpawner(t, config.DifficultyMedium, 42)

	for i := 0; i < 100; i++ {
		oa, ob := a.NextObstacle(), b.NextObstacle()
		if oa.Kind != ob.Kind || oa.Body != ob.Body {
			t.Fatalf("obstacle %d differs: %+v vs %+v", i, oa, ob)
		}
		ca, cb := a.NextCollectible(), b.NextCollectible()
		if ca.Symbol != cb.Symbol || ca.Body != cb.Body {
			t.Fatalf("collectible %d differs", i)
		}
	}
}
