// Package config provides YAML-based game configuration loading and
// difficulty profiles for Chemistry Dash.
package config

import (
	"errors"
	"fmt"
)

// ChemDashConfig contains all tunables of the simulation.
type ChemDashConfig struct {
	World        WorldConfig                      `yaml:"world"`
	Physics      PhysicsConfig                    `yaml:"physics"`
	Player       PlayerConfig                     `yaml:"player"`
	Scoring      ScoringConfig                    `yaml:"scoring"`
	Bonuses      BonusConfig                      `yaml:"bonuses"`
	Spawning     SpawningConfig                   `yaml:"spawning"`
	Difficulties map[Difficulty]DifficultyProfile `yaml:"difficulties"`
}

// WorldConfig defines the lane dimensions and the fixed timestep.
type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	GroundHeight  float64 `yaml:"ground_height"`
	TimeStepMs    float64 `yaml:"time_step_ms"`
	MaxFrameDelta float64 `yaml:"max_frame_delta_ms"` // Longest display-frame gap fed to the accumulator
}

// GroundLevel returns the y coordinate of the ground surface.
func (w WorldConfig) GroundLevel() float64 {
	return w.Height - w.GroundHeight
}

// PhysicsConfig defines gravity, expressed per 16.67ms reference frame.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	ReferenceStepMs  float64 `yaml:"reference_step_ms"`
}

// PlayerConfig defines the player body and jump.
type PlayerConfig struct {
	StartX       float64 `yaml:"start_x"`
	StartYOffset float64 `yaml:"start_y_offset"` // Distance from the bottom of the world
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	JumpPower    float64 `yaml:"jump_power"`
	MaxJumps     int     `yaml:"max_jumps"`
}

// ScoringConfig defines flat awards and level thresholds.
type ScoringConfig struct {
	ObstaclePassed   int `yaml:"obstacle_passed"`
	ElementCollected int `yaml:"element_collected"`
	PointsPerLevel   int `yaml:"points_per_level"`
}

// BonusConfig defines damage invulnerability and molecule rewards.
type BonusConfig struct {
	MaxLives               int     `yaml:"max_lives"`
	InvulnerabilityMs      float64 `yaml:"invulnerability_ms"`
	BonusInvulnerabilityMs float64 `yaml:"bonus_invulnerability_ms"`
	SlowMs                 float64 `yaml:"slow_ms"`
	SlowFactor             float64 `yaml:"slow_factor"`
}

// SpawningConfig defines spawn cadence and the global difficulty ramp.
type SpawningConfig struct {
	ElementIntervalFactor  float64 `yaml:"element_interval_factor"`
	ElementChance          float64 `yaml:"element_chance"`
	PlatformIntervalFactor float64 `yaml:"platform_interval_factor"`
	PlatformChance         float64 `yaml:"platform_chance"`
	SpeedRamp              float64 `yaml:"speed_ramp"`
	SpawnRateRamp          float64 `yaml:"spawn_rate_ramp"`
	SpawnRateFloor         float64 `yaml:"spawn_rate_floor"`
}

// DifficultyProfile defines everything that differs between easy, medium
// and hard.
type DifficultyProfile struct {
	Lives                  int      `yaml:"lives"`
	BaseSpeed              float64  `yaml:"base_speed"`
	BaseSpawnRate          float64  `yaml:"base_spawn_rate"`
	Obstacles              []string `yaml:"obstacles"`
	Platforms              []string `yaml:"platforms"`
	MovingObstacleChance   float64  `yaml:"moving_obstacle_chance"`
	MovingPlatformChance   float64  `yaml:"moving_platform_chance"`
	WallChance             float64  `yaml:"wall_chance"`
	ComplexStructureChance float64  `yaml:"complex_structure_chance"`
	CommonElementBias      float64  `yaml:"common_element_bias"`
}

// Profile returns the profile for d.
func (c ChemDashConfig) Profile(d Difficulty) (DifficultyProfile, error) {
	p, ok := c.Difficulties[d]
	if !ok {
		return DifficultyProfile{}, fmt.Errorf("config: no profile for difficulty %q", d)
	}
	return p, nil
}

// Validate reports every problem that would make the simulation ill-defined.
func (c ChemDashConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		errs = append(errs, fmt.Errorf("ground_height %v out of range", c.World.GroundHeight))
	}
	if c.World.TimeStepMs <= 0 {
		errs = append(errs, fmt.Errorf("time_step_ms must be positive, got %v", c.World.TimeStepMs))
	}
	if c.World.MaxFrameDelta < c.World.TimeStepMs {
		errs = append(errs, fmt.Errorf("max_frame_delta_ms %v is shorter than one step", c.World.MaxFrameDelta))
	}
	if c.Physics.ReferenceStepMs <= 0 {
		errs = append(errs, fmt.Errorf("reference_step_ms must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive"))
	}
	if c.Player.MaxJumps < 0 {
		errs = append(errs, fmt.Errorf("max_jumps must not be negative"))
	}
	if c.Scoring.PointsPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("points_per_level must be positive"))
	}
	if c.Bonuses.MaxLives <= 0 {
		errs = append(errs, fmt.Errorf("max_lives must be positive"))
	}
	if c.Bonuses.SlowFactor <= 0 || c.Bonuses.SlowFactor > 1 {
		errs = append(errs, fmt.Errorf("slow_factor must be in (0, 1], got %v", c.Bonuses.SlowFactor))
	}

	for _, d := range Difficulties() {
		p, ok := c.Difficulties[d]
		if !ok {
			errs = append(errs, fmt.Errorf("missing %s difficulty profile", d))
			continue
		}
		if p.Lives <= 0 || p.Lives > c.Bonuses.MaxLives {
			errs = append(errs, fmt.Errorf("%s: lives %d out of range", d, p.Lives))
		}
		if p.BaseSpeed < 0 {
			errs = append(errs, fmt.Errorf("%s: base_speed must not be negative", d))
		}
		if p.BaseSpawnRate <= 0 {
			errs = append(errs, fmt.Errorf("%s: base_spawn_rate must be positive", d))
		}
		if len(p.Obstacles) == 0 {
			errs = append(errs, fmt.Errorf("%s: no obstacle kinds", d))
		}
		if len(p.Platforms) == 0 {
			errs = append(errs, fmt.Errorf("%s: no platform kinds", d))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
