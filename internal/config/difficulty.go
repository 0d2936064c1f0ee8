package config

import (
	"fmt"
	"strings"
)

// Difficulty names a difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns every tier, easiest first.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty parses a tier name. An empty string yields medium; "normal"
// is accepted as an alias for medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "", "medium", "normal":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// Progression computes the global difficulty ramp and level thresholds.
type Progression struct {
	speedRamp      float64
	spawnRateRamp  float64
	spawnRateFloor float64
	pointsPerLevel int
}

// NewProgression creates a progression from the config.
func NewProgression(cfg ChemDashConfig) Progression {
	return Progression{
		speedRamp:      cfg.Spawning.SpeedRamp,
		spawnRateRamp:  cfg.Spawning.SpawnRateRamp,
		spawnRateFloor: cfg.Spawning.SpawnRateFloor,
		pointsPerLevel: max(1, cfg.Scoring.PointsPerLevel),
	}
}

// Advance applies one fixed step of the ramp: speed grows linearly and the
// spawn interval shrinks down to the floor.
func (p Progression) Advance(speed, spawnRate float64) (float64, float64) {
	speed += p.speedRamp
	spawnRate = max(p.spawnRateFloor, spawnRate-p.spawnRateRamp)
	return speed, spawnRate
}

// LevelFor returns the 1-based level for a score.
func (p Progression) LevelFor(score int) int {
	if score < 0 {
		return 1
	}
	return score/p.pointsPerLevel + 1
}
