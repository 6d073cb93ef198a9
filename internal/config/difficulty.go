package config

// Progression types accepted in difficulty.progression.type.
const (
	ProgressScore = "score"
	ProgressTime  = "time"
	ProgressWave  = "wave"
	ProgressNone  = "none"
)

func validProgression(t string) bool {
	switch t {
	case "", ProgressScore, ProgressTime, ProgressWave, ProgressNone:
		return true
	}
	return false
}

// Progress is how far the current game has come.
type Progress struct {
	Score int
	Frame uint64
	Wave  int
}

// DifficultyManager derives a level in [initial_level, 1] from progress and
// scales rock speed and saucer fire rate with it.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager; the initial level is clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = min(max(cfg.InitialLevel, 0), 1)
	return &DifficultyManager{cfg: cfg}
}

// Level returns the difficulty for p. With progression disabled the level
// stays at initial_level for the whole game.
func (d *DifficultyManager) Level(p Progress) float64 {
	base := d.cfg.InitialLevel
	maxAt := float64(d.cfg.Progression.MaxAt)
	if !d.cfg.Enabled || maxAt <= 0 {
		return base
	}

	var done float64
	switch d.cfg.Progression.Type {
	case ProgressScore:
		done = float64(p.Score) / maxAt
	case ProgressTime:
		done = float64(p.Frame) / maxAt
	case ProgressWave:
		// Wave 1 is the starting point.
		done = float64(p.Wave-1) / maxAt
	default:
		return base
	}
	done = min(max(done, 0), 1)
	return base + done*(1-base)
}

// RockSpeed scales a freshly drawn rock speed. At level 1 rocks move
// 1+speed_multiplier times faster.
func (d *DifficultyManager) RockSpeed(base float64, p Progress) float64 {
	return base * (1 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier)
}

// SaucerFireFrames shortens the saucer's fire interval by up to
// fire_reduction frames, never below a quarter of base.
func (d *DifficultyManager) SaucerFireFrames(base int, p Progress) int {
	n := base - int(d.Level(p)*float64(d.cfg.Scaling.FireReduction))
	return max(n, base/4, 1)
}
