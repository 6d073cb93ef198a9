package env

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// RewardConfig weights the terms of the per-frame reward.
type RewardConfig struct {
	Survival float64 `yaml:"survival"`
	// Alignment is paid in proportion to how well the ship faces the nearest rock.
	Alignment          float64 `yaml:"alignment"`
	AlignedFireBonus   float64 `yaml:"aligned_fire_bonus"`
	AlignedFireBelow   float64 `yaml:"aligned_fire_below"`
	WildFirePenalty    float64 `yaml:"wild_fire_penalty"`
	WildFireAbove      float64 `yaml:"wild_fire_above"`
	LookingAwayPenalty float64 `yaml:"looking_away_penalty"`
	LookingAwayAbove   float64 `yaml:"looking_away_above"`
	ProximityRadius    float64 `yaml:"proximity_radius"`
	ProximityPenalty   float64 `yaml:"proximity_penalty"`
	HitReward          float64 `yaml:"hit_reward"`
	ShotPenalty        float64 `yaml:"shot_penalty"`
	DeathPenalty       float64 `yaml:"death_penalty"`
}

// DefaultRewardConfig returns the standard reward weights.
func DefaultRewardConfig() RewardConfig {
	return RewardConfig{
		Survival:           0.1,
		Alignment:          0.5,
		AlignedFireBonus:   5,
		AlignedFireBelow:   0.05,
		WildFirePenalty:    3,
		WildFireAbove:      0.2,
		LookingAwayPenalty: 0.05,
		LookingAwayAbove:   0.5,
		ProximityRadius:    100,
		ProximityPenalty:   0.5,
		HitReward:          20,
		ShotPenalty:        0.2,
		DeathPenalty:       40,
	}
}

// LoadRewardConfig reads reward weights from a YAML file. Keys missing from
// the file keep their default value.
func LoadRewardConfig(path string) (RewardConfig, error) {
	rc := DefaultRewardConfig()
	data, err := os.ReadFile(path) //#nosec G304 -- path comes from the command line
	if err != nil {
		return rc, fmt.Errorf("env: reading reward config: %w", err)
	}
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return rc, fmt.Errorf("env: parsing reward config %s: %w", path, err)
	}
	return rc, nil
}

// FrameStats are the event counts a reward is built from.
type FrameStats struct {
	Shots        int
	Hits         int
	ShipDestroys int
}

// Tally counts the ship's shots, ship-bullet hits and ship deaths in evs.
func Tally(evs []sim.Event) FrameStats {
	var st FrameStats
	for _, e := range evs {
		switch e.Kind {
		case sim.EventBulletFired:
			if e.Owner == sim.KindShip {
				st.Shots++
			}
		case sim.EventRockDestroyed, sim.EventSaucerDestroyed:
			if e.Cause == sim.CauseShipBullet {
				st.Hits++
			}
		case sim.EventShipDestroyed:
			st.ShipDestroys++
		}
	}
	return st
}

// Reward scores one frame from the action taken, the resulting snapshot
// and that frame's events. It reads no controller state, so calling it
// twice for the same frame gives the same answer.
func Reward(rc RewardConfig, a sim.Action, s sim.Snapshot, evs []sim.Event, w, h float64) float64 {
	r := rc.Survival

	if t := NearestRock(s, w, h); t.Found {
		r += (1 - t.Misalignment) * rc.Alignment
		if a == sim.ActionFire {
			if t.Misalignment < rc.AlignedFireBelow {
				r += rc.AlignedFireBonus
			}
			if t.Misalignment > rc.WildFireAbove {
				r -= rc.WildFirePenalty
			}
		}
		if t.Misalignment > rc.LookingAwayAbove {
			r -= rc.LookingAwayPenalty
		}
		if t.Distance < rc.ProximityRadius {
			r -= rc.ProximityPenalty
		}
	}

	st := Tally(evs)
	r += float64(st.Hits) * rc.HitReward
	r -= float64(st.Shots) * rc.ShotPenalty
	r -= float64(st.ShipDestroys) * rc.DeathPenalty
	return r
}
