package env

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// EpisodeSummary describes one finished episode.
type EpisodeSummary struct {
	Episode int
	Frames  int
	Score   int
	Level   int
	Reward  float64
	Shots   int
	Hits    int
}

// Accuracy returns hits per shot, or 0 if nothing was fired.
func (s EpisodeSummary) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots)
}

// Run plays n episodes with p. It stops early, returning what finished so
// far, when ctx is cancelled. Logging is optional.
func Run(ctx context.Context, e *Environment, p Policy, n int, logger *log.Logger) ([]EpisodeSummary, error) {
	out := make([]EpisodeSummary, 0, n)
	for i := 1; i <= n; i++ {
		obs := e.Reset()
		sum := EpisodeSummary{Episode: i}
		for done := false; !done; {
			if sum.Frames%1024 == 0 {
				if err := ctx.Err(); err != nil {
					return out, fmt.Errorf("env: run interrupted: %w", err)
				}
			}
			var r float64
			obs, r, done = e.Step(p.Act(obs, e.Snapshot()))
			sum.Reward += r
			sum.Frames++
		}
		snap := e.Snapshot()
		sum.Score = snap.Score
		sum.Level = snap.Level
		sum.Shots = snap.Ship.ShotsFired
		sum.Hits = snap.Ship.Hits
		out = append(out, sum)

		if logger != nil {
			logger.Info("episode finished",
				"episode", i,
				"policy", p.Name(),
				"frames", sum.Frames,
				"score", sum.Score,
				"level", sum.Level,
				"reward", fmt.Sprintf("%.1f", sum.Reward),
				"accuracy", fmt.Sprintf("%.2f", sum.Accuracy()))
		}
	}
	return out, nil
}
