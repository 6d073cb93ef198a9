// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for values the simulation cannot run with.
var ErrInvalidConfig = errors.New("invalid config")

// AsteroidsConfig contains all configuration for the Asteroids simulation.
type AsteroidsConfig struct {
	Stage      StageConfig      `yaml:"stage"`
	Ship       ShipConfig       `yaml:"ship"`
	Rocks      RockConfig       `yaml:"rocks"`
	Saucer     SaucerConfig     `yaml:"saucer"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// StageConfig defines the toroidal world size in world units.
type StageConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines ship handling and weapons.
type ShipConfig struct {
	TurnStep         float64 `yaml:"turn_step"`    // degrees per rotate action
	Acceleration     float64 `yaml:"acceleration"` // velocity added per thrust frame
	MaxSpeed         float64 `yaml:"max_speed"`
	Brake            float64 `yaml:"brake"` // fraction of velocity removed per brake frame
	BulletSpeed      float64 `yaml:"bullet_speed"`
	BulletTTL        int     `yaml:"bullet_ttl"`
	MaxBullets       int     `yaml:"max_bullets"`
	HyperspaceFrames int     `yaml:"hyperspace_frames"`
}

// RockConfig defines rock geometry, motion and scoring.
type RockConfig struct {
	InitialCount int     `yaml:"initial_count"`
	Vertices     int     `yaml:"vertices"`
	Jitter       float64 `yaml:"jitter"` // fraction of the radius each vertex may vary by
	LargeRadius  float64 `yaml:"large_radius"`
	MediumRadius float64 `yaml:"medium_radius"`
	SmallRadius  float64 `yaml:"small_radius"`
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	MaxSpin      float64 `yaml:"max_spin"`
	LargeScore   int     `yaml:"large_score"`
	MediumScore  int     `yaml:"medium_score"`
	SmallScore   int     `yaml:"small_score"`
}

// SaucerConfig defines the hostile saucer.
type SaucerConfig struct {
	SpawnInterval int     `yaml:"spawn_interval"` // frames between spawn checks
	SmallChance   float64 `yaml:"small_chance"`
	MaxLaps       int     `yaml:"max_laps"`
	Speed         float64 `yaml:"speed"`
	CourseFrames  int     `yaml:"course_frames"`
	FireFrames    int     `yaml:"fire_frames"`
	MaxBullets    int     `yaml:"max_bullets"`
	BulletSpeed   float64 `yaml:"bullet_speed"`
	BulletTTL     int     `yaml:"bullet_ttl"`
	AimJitter     float64 `yaml:"aim_jitter"` // degrees, small saucer only
	LargeScale    float64 `yaml:"large_scale"`
	SmallScale    float64 `yaml:"small_scale"`
	LargeScore    int     `yaml:"large_score"`
	SmallScore    int     `yaml:"small_score"`
}

// GameplayConfig defines lives, timers and debris.
type GameplayConfig struct {
	StartLives      int     `yaml:"start_lives"`
	ExtraLifeEvery  int     `yaml:"extra_life_every"`
	ExplodingFrames int     `yaml:"exploding_frames"`
	DebrisCount     int     `yaml:"debris_count"`
	DebrisTTLMin    int     `yaml:"debris_ttl_min"`
	DebrisTTLMax    int     `yaml:"debris_ttl_max"`
	DebrisSpeed     float64 `yaml:"debris_speed"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", "wave" or "none"
	MaxAt int    `yaml:"max_at"` // score, frame or wave count at which the level reaches 1
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to rock speed at max difficulty
	FireReduction   int     `yaml:"fire_reduction"`   // Saucer fire interval reduction at max difficulty
}

// Validate checks that the configuration describes a runnable simulation.
func (c AsteroidsConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Stage.Width > 0 && c.Stage.Height > 0, "stage dimensions must be positive"},
		{c.Ship.TurnStep > 0, "ship.turn_step must be positive"},
		{c.Ship.MaxSpeed > 0, "ship.max_speed must be positive"},
		{c.Ship.Brake >= 0 && c.Ship.Brake < 1, "ship.brake must be in [0, 1)"},
		{c.Ship.BulletTTL > 0, "ship.bullet_ttl must be positive"},
		{c.Ship.MaxBullets > 0, "ship.max_bullets must be positive"},
		{c.Rocks.Vertices >= 3, "rocks.vertices must be at least 3"},
		{c.Rocks.Jitter >= 0 && c.Rocks.Jitter < 1, "rocks.jitter must be in [0, 1)"},
		{c.Rocks.SmallRadius > 0 && c.Rocks.MediumRadius > 0 && c.Rocks.LargeRadius > 0, "rock radii must be positive"},
		{c.Rocks.MinSpeed >= 0 && c.Rocks.MaxSpeed >= c.Rocks.MinSpeed, "rocks speed range is empty"},
		{c.Rocks.InitialCount >= 0, "rocks.initial_count must not be negative"},
		{c.Saucer.SpawnInterval > 0, "saucer.spawn_interval must be positive"},
		{c.Saucer.SmallChance >= 0 && c.Saucer.SmallChance <= 1, "saucer.small_chance must be in [0, 1]"},
		{c.Saucer.MaxLaps > 0, "saucer.max_laps must be positive"},
		{c.Saucer.CourseFrames > 0 && c.Saucer.FireFrames > 0, "saucer timers must be positive"},
		{c.Saucer.Speed > 0, "saucer.speed must be positive"},
		{c.Saucer.MaxBullets > 0, "saucer.max_bullets must be positive"},
		{c.Saucer.BulletTTL > 0, "saucer.bullet_ttl must be positive"},
		{c.Gameplay.StartLives > 0, "gameplay.start_lives must be positive"},
		{c.Gameplay.ExtraLifeEvery > 0, "gameplay.extra_life_every must be positive"},
		{c.Gameplay.ExplodingFrames > 0, "gameplay.exploding_frames must be positive"},
		{c.Gameplay.DebrisCount >= 0, "gameplay.debris_count must not be negative"},
		{c.Gameplay.DebrisTTLMin > 0 && c.Gameplay.DebrisTTLMax > c.Gameplay.DebrisTTLMin, "debris ttl range is empty"},
		{validProgression(c.Difficulty.Progression.Type), "difficulty.progression.type must be score, time, wave or none"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.what)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
