package chemdash

import "fmt"

// ObstacleKind selects an obstacle's look, danger and motion.
type ObstacleKind int

const (
	ObstacleBeaker ObstacleKind = iota
	ObstacleAcid
	ObstacleBurner
	ObstacleFlask
	ObstacleWall
	ObstacleBarrier
	ObstacleHorizontalBar
	ObstacleMovingSpike
	ObstacleSwingingBlade
	ObstacleFloatingMine
)

var obstacleNames = map[ObstacleKind]string{
	ObstacleBeaker:        "beaker",
	ObstacleAcid:          "acid",
	ObstacleBurner:        "burner",
	ObstacleFlask:         "flask",
	ObstacleWall:          "wall",
	ObstacleBarrier:       "barrier",
	ObstacleHorizontalBar: "horizontal_bar",
	ObstacleMovingSpike:   "moving_spike",
	ObstacleSwingingBlade: "swinging_blade",
	ObstacleFloatingMine:  "floating_mine",
}

func (k ObstacleKind) String() string {
	if s, ok := obstacleNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ObstacleKind(%d)", int(k))
}

// ParseObstacleKind parses a config name such as "moving_spike".
func ParseObstacleKind(s string) (ObstacleKind, error) {
	for k, name := range obstacleNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("chemdash: unknown obstacle kind %q", s)
}

// DangerLevel grades how hazardous an obstacle looks.
type DangerLevel int

const (
	DangerNone DangerLevel = iota
	DangerLow
	DangerMedium
	DangerHigh
	DangerExtreme
)

func (d DangerLevel) String() string {
	switch d {
	case DangerNone:
		return "none"
	case DangerLow:
		return "low"
	case DangerMedium:
		return "medium"
	case DangerHigh:
		return "high"
	case DangerExtreme:
		return "extreme"
	default:
		return fmt.Sprintf("DangerLevel(%d)", int(d))
	}
}

// Danger returns the danger level of the kind.
func (k ObstacleKind) Danger() DangerLevel {
	switch k {
	case ObstacleBeaker, ObstacleBurner:
		return DangerHigh
	case ObstacleFlask:
		return DangerMedium
	case ObstacleWall, ObstacleHorizontalBar:
		return DangerNone
	case ObstacleAcid, ObstacleBarrier, ObstacleMovingSpike, ObstacleSwingingBlade, ObstacleFloatingMine:
		return DangerExtreme
	default:
		return DangerLow
	}
}

// Impenetrable reports whether the kind is a solid blocker. Collisions still
// damage the player the same way as any other obstacle.
func (k ObstacleKind) Impenetrable() bool {
	switch k {
	case ObstacleWall, ObstacleBarrier, ObstacleHorizontalBar:
		return true
	default:
		return false
	}
}

// Moving reports whether the kind always carries a motion path.
func (k ObstacleKind) Moving() bool {
	_, _, _, ok := k.motion()
	return ok
}

func (k ObstacleKind) motion() (kind MotionKind, speed, rng float64, ok bool) {
	switch k {
	case ObstacleMovingSpike:
		return MotionVertical, 2, 80, true
	case ObstacleSwingingBlade:
		return MotionPendulum, 1.5, 60, true
	case ObstacleFloatingMine:
		return MotionCircular, 1, 40, true
	default:
		return 0, 0, 0, false
	}
}

// Color returns the kind's hex color.
func (k ObstacleKind) Color() string {
	switch k {
	case ObstacleBeaker:
		return "#ff6b6b"
	case ObstacleAcid:
		return "#f39c12"
	case ObstacleBurner, ObstacleBarrier:
		return "#e74c3c"
	case ObstacleFlask:
		return "#9b59b6"
	case ObstacleWall:
		return "#7f8c8d"
	case ObstacleMovingSpike:
		return "#8e44ad"
	case ObstacleFloatingMine:
		return "#e67e22"
	default:
		return "#95a5a6"
	}
}

// Obstacle is a hazard that scrolls toward the player.
type Obstacle struct {
	Body
	Kind   ObstacleKind
	Motion *Motion
}

// NewObstacle creates an obstacle. Moving kinds get their motion path
// anchored at (x, y).
func NewObstacle(kind ObstacleKind, x, y, w, h float64) *Obstacle {
	o := &Obstacle{Body: Body{X: x, Y: y, W: w, H: h}, Kind: kind}
	if mk, speed, rng, ok := kind.motion(); ok {
		o.Motion = newMotion(mk, speed, rng, &o.Body)
	}
	return o
}

// Danger returns the obstacle's danger level.
func (o *Obstacle) Danger() DangerLevel {
	return o.Kind.Danger()
}

// Impenetrable reports whether the obstacle is a solid blocker.
func (o *Obstacle) Impenetrable() bool {
	return o.Kind.Impenetrable()
}

// Update scrolls the obstacle and runs its motion.
func (o *Obstacle) Update(dt, scroll float64) {
	advance(&o.Body, o.Motion, dt, scroll)
}

// ShouldBeRemoved reports whether the obstacle left the lane.
func (o *Obstacle) ShouldBeRemoved() bool {
	return o.OffScreen()
}
