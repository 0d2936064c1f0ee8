package config

import (
	_ "embed"
)

//go:embed defaults/chemdash.yaml
var defaultChemDashYAML []byte

// DefaultChemDashConfig returns the built-in Chemistry Dash configuration.
// It mirrors defaults/chemdash.yaml and is used when that file cannot be parsed.
func DefaultChemDashConfig() ChemDashConfig {
	return ChemDashConfig{
		World: WorldConfig{
			Width:         800,
			Height:        400,
			GroundHeight:  20,
			TimeStepMs:    1000.0 / 60.0,
			MaxFrameDelta: 250,
		},
		Physics: PhysicsConfig{
			Gravity:          1.2,
			TerminalVelocity: 20,
			ReferenceStepMs:  16.67,
		},
		Player: PlayerConfig{
			StartX:       80,
			StartYOffset: 70,
			Width:        30,
			Height:       30,
			JumpPower:    -18,
			MaxJumps:     2,
		},
		Scoring: ScoringConfig{
			ObstaclePassed:   10,
			ElementCollected: 50,
			PointsPerLevel:   500,
		},
		Bonuses: BonusConfig{
			MaxLives:               5,
			InvulnerabilityMs:      2000,
			BonusInvulnerabilityMs: 5000,
			SlowMs:                 5000,
			SlowFactor:             0.6,
		},
		Spawning: SpawningConfig{
			ElementIntervalFactor:  2,
			ElementChance:          0.8,
			PlatformIntervalFactor: 1.5,
			PlatformChance:         0.6,
			SpeedRamp:              0.002,
			SpawnRateRamp:          0.5,
			SpawnRateFloor:         800,
		},
		Difficulties: map[Difficulty]DifficultyProfile{
			DifficultyEasy: {
				Lives:                  5,
				BaseSpeed:              3.5,
				BaseSpawnRate:          2200,
				Obstacles:              []string{"beaker", "flask", "horizontal_bar"},
				Platforms:              []string{"basic", "metal", "ice"},
				MovingObstacleChance:   0.1,
				MovingPlatformChance:   0.15,
				WallChance:             0.05,
				ComplexStructureChance: 0.1,
				CommonElementBias:      1.5,
			},
			DifficultyMedium: {
				Lives:                  3,
				BaseSpeed:              4,
				BaseSpawnRate:          1800,
				Obstacles:              []string{"beaker", "acid", "flask", "moving_spike", "horizontal_bar", "wall"},
				Platforms:              []string{"basic", "glass", "metal", "moving_vertical", "disappearing", "ice"},
				MovingObstacleChance:   0.2,
				MovingPlatformChance:   0.25,
				WallChance:             0.1,
				ComplexStructureChance: 0.2,
				CommonElementBias:      1,
			},
			DifficultyHard: {
				Lives:                  2,
				BaseSpeed:              5,
				BaseSpawnRate:          1500,
				Obstacles:              []string{"acid", "burner", "moving_spike", "swinging_blade", "floating_mine", "wall", "barrier", "horizontal_bar"},
				Platforms:              []string{"glass", "crystal", "energy", "moving_vertical", "moving_horizontal", "disappearing"},
				MovingObstacleChance:   0.3,
				MovingPlatformChance:   0.35,
				WallChance:             0.15,
				ComplexStructureChance: 0.3,
				CommonElementBias:      0.6,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultChemDashYAML
}
