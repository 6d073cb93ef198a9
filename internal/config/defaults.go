package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default Asteroids configuration.
// It mirrors defaults/asteroids.yaml and is used when the embedded file cannot be parsed.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Stage: StageConfig{
			Width:  1200,
			Height: 630,
		},
		Ship: ShipConfig{
			TurnStep:         6,
			Acceleration:     0.2,
			MaxSpeed:         10,
			Brake:            0.05,
			BulletSpeed:      8,
			BulletTTL:        35,
			MaxBullets:       4,
			HyperspaceFrames: 100,
		},
		Rocks: RockConfig{
			InitialCount: 3,
			Vertices:     12,
			Jitter:       0.25,
			LargeRadius:  40,
			MediumRadius: 20,
			SmallRadius:  10,
			MinSpeed:     0.5,
			MaxSpeed:     1.5,
			MaxSpin:      2,
			LargeScore:   50,
			MediumScore:  100,
			SmallScore:   200,
		},
		Saucer: SaucerConfig{
			SpawnInterval: 2000,
			SmallChance:   0.4,
			MaxLaps:       2,
			Speed:         1.5,
			CourseFrames:  90,
			FireFrames:    60,
			MaxBullets:    2,
			BulletSpeed:   6,
			BulletTTL:     70,
			AimJitter:     10,
			LargeScale:    1.5,
			SmallScale:    1.0,
			LargeScore:    500,
			SmallScore:    1000,
		},
		Gameplay: GameplayConfig{
			StartLives:      3,
			ExtraLifeEvery:  10000,
			ExplodingFrames: 180,
			DebrisCount:     25,
			DebrisTTLMin:    20,
			DebrisTTLMax:    50,
			DebrisSpeed:     2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				FireReduction:   30,
			},
		},
	}
}
