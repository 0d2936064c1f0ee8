package chemdash

import (
	"math/rand"

	"github.com/vovakirdan/chemdash/internal/chem"
	"github.com/vovakirdan/chemdash/internal/config"
)

const collectibleSize = 25

var (
	movingObstacles = []ObstacleKind{ObstacleMovingSpike, ObstacleSwingingBlade, ObstacleFloatingMine}
	movingPlatforms = []PlatformKind{PlatformMovingVertical, PlatformMovingHorizontal}
)

// Pattern is a difficulty profile with its kind names resolved.
type Pattern struct {
	Obstacles              []ObstacleKind
	Platforms              []PlatformKind
	MovingObstacleChance   float64
	MovingPlatformChance   float64
	WallChance             float64
	ComplexStructureChance float64
	CommonElementBias      float64
}

// NewPattern resolves the kind names of a difficulty profile.
func NewPattern(p config.DifficultyProfile) (Pattern, error) {
	pat := Pattern{
		MovingObstacleChance:   p.MovingObstacleChance,
		MovingPlatformChance:   p.MovingPlatformChance,
		WallChance:             p.WallChance,
		ComplexStructureChance: p.ComplexStructureChance,
		CommonElementBias:      p.CommonElementBias,
	}
	for _, name := range p.Obstacles {
		k, err := ParseObstacleKind(name)
		if err != nil {
			return Pattern{}, err
		}
		pat.Obstacles = append(pat.Obstacles, k)
	}
	for _, name := range p.Platforms {
		k, err := ParsePlatformKind(name)
		if err != nil {
			return Pattern{}, err
		}
		pat.Platforms = append(pat.Platforms, k)
	}
	return pat, nil
}

// Spawner builds new entities at the right edge of the lane. It owns no
// timers; the session decides when to call it.
type Spawner struct {
	rng     *rand.Rand
	width   float64
	ground  float64
	pattern Pattern
	picker  *chem.Picker
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, world config.WorldConfig, elements *chem.ElementTable, pattern Pattern) *Spawner {
	return &Spawner{
		rng:     rng,
		width:   world.Width,
		ground:  world.GroundLevel(),
		pattern: pattern,
		picker:  chem.NewPicker(elements, pattern.CommonElementBias),
	}
}

// between returns a uniform value in [lo, hi).
func (s *Spawner) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Spawner) chance(p float64) bool {
	return s.rng.Float64() < p
}

func (s *Spawner) obstacleKind() ObstacleKind {
	switch {
	case s.chance(s.pattern.MovingObstacleChance):
		return movingObstacles[s.rng.Intn(len(movingObstacles))]
	case s.chance(s.pattern.WallChance):
		return ObstacleWall
	default:
		return s.patternObstacle()
	}
}

func (s *Spawner) patternObstacle() ObstacleKind {
	if len(s.pattern.Obstacles) == 0 {
		return ObstacleBeaker
	}
	return s.pattern.Obstacles[s.rng.Intn(len(s.pattern.Obstacles))]
}

func (s *Spawner) patternPlatform() PlatformKind {
	if len(s.pattern.Platforms) == 0 {
		return PlatformBasic
	}
	return s.pattern.Platforms[s.rng.Intn(len(s.pattern.Platforms))]
}

// NextObstacle returns a single obstacle at the right edge.
func (s *Spawner) NextObstacle() *Obstacle {
	return s.obstacleAt(s.obstacleKind(), s.width)
}

// obstacleAt sizes an obstacle of the given kind.
func (s *Spawner) obstacleAt(kind ObstacleKind, x float64) *Obstacle {
	switch kind {
	case ObstacleWall:
		h := min(200, s.ground-100)
		return NewObstacle(kind, x, s.ground-h, 30, h)
	case ObstacleBarrier:
		h := s.between(100, 180)
		return NewObstacle(kind, x, s.ground-h, 20, h)
	case ObstacleHorizontalBar:
		w := s.between(120, 300)
		return NewObstacle(kind, x, s.ground-60-s.rng.Float64()*100, w, 15)
	case ObstacleMovingSpike, ObstacleSwingingBlade, ObstacleFloatingMine:
		return NewObstacle(kind, x, s.ground-40-s.rng.Float64()*80, 30, 30)
	default:
		w := s.between(25, 45)
		h := s.between(25, 60)
		return NewObstacle(kind, x, s.ground-h, w, h)
	}
}

// NextPlatform returns a platform at the right edge.
func (s *Spawner) NextPlatform() *Platform {
	kind := s.patternPlatform()
	if s.chance(s.pattern.MovingPlatformChance) {
		kind = movingPlatforms[s.rng.Intn(len(movingPlatforms))]
	}
	w := s.between(120, 300)
	h := s.between(15, 25)
	y := s.ground - s.between(60, 180)
	return NewPlatform(kind, s.width, y, w, h)
}

// NextCollectible returns an element pickup at the right edge, high enough
// that the player has to jump for it.
func (s *Spawner) NextCollectible() *Collectible {
	el := s.picker.Pick(s.rng)
	y := s.ground - s.between(50, 200)
	return NewCollectible(el, s.width, y, collectibleSize, collectibleSize)
}

// StructureKind names a multi-entity set piece.
type StructureKind int

const (
	StructureCorridor StructureKind = iota
	StructureJumpingPuzzle
	StructureDeadEnd
	StructureMaze
)

func (k StructureKind) String() string {
	switch k {
	case StructureCorridor:
		return "corridor"
	case StructureJumpingPuzzle:
		return "jumping_puzzle"
	case StructureDeadEnd:
		return "dead_end"
	case StructureMaze:
		return "maze"
	default:
		return "unknown"
	}
}

// Structure is a group of obstacles and platforms spawned together.
type Structure struct {
	Kind      StructureKind
	Obstacles []*Obstacle
	Platforms []*Platform
}

// NextStructure returns a set piece starting at the right edge.
func (s *Spawner) NextStructure() Structure {
	x := s.width
	switch r := s.rng.Float64(); {
	case r < 0.3:
		return s.corridor(x)
	case r < 0.6:
		return s.jumpingPuzzle(x)
	case r < 0.8:
		return s.deadEnd(x)
	default:
		return s.maze(x)
	}
}

// corridor is a tunnel with a ceiling bar, an optional floor bar and hazards
// spread along it.
func (s *Spawner) corridor(x float64) Structure {
	st := Structure{Kind: StructureCorridor}
	length := s.between(200, 500)
	height := s.between(80, 140)
	top := s.ground - height - 50

	st.Obstacles = append(st.Obstacles, NewObstacle(ObstacleHorizontalBar, x, top-20, length, 20))
	if top+height < s.ground-30 {
		st.Obstacles = append(st.Obstacles, NewObstacle(ObstacleHorizontalBar, x, top+height, length, 20))
	}

	n := int(length / 100)
	for i := 0; i < n; i++ {
		hx := x + float64(i+1)*length/float64(n+1)
		if s.chance(s.pattern.MovingObstacleChance) {
			st.Obstacles = append(st.Obstacles, NewObstacle(ObstacleMovingSpike, hx, top+5, 25, 30))
		} else {
			st.Obstacles = append(st.Obstacles, NewObstacle(s.patternObstacle(), hx, top+height-35, 30, 35))
		}
	}
	return st
}

// jumpingPuzzle is a run of floating platforms with hazards between them.
func (s *Spawner) jumpingPuzzle(x float64) Structure {
	st := Structure{Kind: StructureJumpingPuzzle}
	length := s.between(300, 500)
	n := 4 + s.rng.Intn(3)

	for i := 0; i < n; i++ {
		px := x + float64(i)*length/float64(n) + s.rng.Float64()*50
		py := s.ground - 60 - s.rng.Float64()*120
		pw := s.between(80, 140)
		st.Platforms = append(st.Platforms, NewPlatform(s.patternPlatform(), px, py, pw, 15))

		if i < n-1 {
			ox := px + pw + 20 + s.rng.Float64()*30
			st.Obstacles = append(st.Obstacles, NewObstacle(s.patternObstacle(), ox, s.ground-40, 25, 40))
		}
	}
	return st
}

// deadEnd is a ledge over an acid pit, capped by a tall wall.
func (s *Spawner) deadEnd(x float64) Structure {
	st := Structure{Kind: StructureDeadEnd}
	width := s.between(150, 250)

	st.Obstacles = append(st.Obstacles, NewObstacle(ObstacleWall, x+width, s.ground-200, 30, 200))
	st.Platforms = append(st.Platforms, NewPlatform(PlatformBasic, x, s.ground-150, width+50, 15))

	n := 2 + s.rng.Intn(2)
	for i := 0; i < n; i++ {
		ax := x + float64(i+1)*width/float64(n+1)
		st.Obstacles = append(st.Obstacles, NewObstacle(ObstacleAcid, ax, s.ground-35, 25, 35))
	}
	return st
}

// maze stacks three levels of platforms with barriers and floating mines.
func (s *Spawner) maze(x float64) Structure {
	st := Structure{Kind: StructureMaze}
	width := s.between(400, 600)

	for level := 0; level < 3; level++ {
		levelY := s.ground - float64(level+1)*80
		n := 2 + s.rng.Intn(2)
		for p := 0; p < n; p++ {
			px := x + float64(p)*width/float64(n) + s.rng.Float64()*50
			pw := s.between(60, 140)
			st.Platforms = append(st.Platforms, NewPlatform(PlatformBasic, px, levelY, pw, 15))

			if s.chance(0.4) {
				st.Obstacles = append(st.Obstacles, NewObstacle(ObstacleBarrier, px+pw+20, levelY-60, 15, 60))
			}
		}
	}

	mines := 2 + s.rng.Intn(2)
	for i := 0; i < mines; i++ {
		mx := x + s.rng.Float64()*width
		my := s.ground - 40 - s.rng.Float64()*160
		st.Obstacles = append(st.Obstacles, NewObstacle(ObstacleFloatingMine, mx, my, 30, 30))
	}
	return st
}
