// Package env wraps the simulation core as a headless, programmatic
// environment: fixed-size observations, an event-driven reward and a few
// scripted policies. Nothing here touches the terminal or a clock.
package env

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// ObservationSize is the number of features in an Observation.
const ObservationSize = 14

// Observation is the normalised feature vector for one frame:
//
//	0-1   ship position / stage size
//	2-3   ship velocity / max speed
//	4     ship angle / 360
//	5-6   offset to nearest rock / stage size
//	7     distance to nearest rock (normalised)
//	8     bearing to nearest rock / 360
//	9     misalignment with nearest rock, 0 = dead ahead, 1 = behind
//	10-11 saucer position / stage size
//	12-13 saucer velocity / (2 * saucer speed)
type Observation [ObservationSize]float64

// Target is the nearest rock as seen from the ship, on the torus.
type Target struct {
	Found    bool
	Offset   core.Vec2
	Distance float64
	Bearing  float64 // degrees clockwise from up
	// Misalignment is |angle between heading and bearing| / 180, in [0, 1].
	Misalignment float64
	// Turn is the signed rotation towards the target; positive is clockwise.
	Turn float64
}

// wrapDelta returns the shortest signed distance along one torus axis.
func wrapDelta(d, size float64) float64 {
	if d > size/2 {
		return d - size
	}
	if d < -size/2 {
		return d + size
	}
	return d
}

// NearestRock finds the closest rock to the ship, taking wrap-around into
// account. Found is false when there is no ship or no rock.
func NearestRock(s sim.Snapshot, w, h float64) Target {
	if !s.Ship.Present || len(s.Rocks) == 0 {
		return Target{Misalignment: 1, Distance: math.Inf(1)}
	}
	best := Target{Distance: math.Inf(1)}
	for _, r := range s.Rocks {
		off := core.V(wrapDelta(r.Pos.X-s.Ship.Pos.X, w), wrapDelta(r.Pos.Y-s.Ship.Pos.Y, h))
		if d := off.Len(); d < best.Distance {
			best = Target{Found: true, Offset: off, Distance: d}
		}
	}
	best.Bearing = core.Vec2{}.BearingTo(best.Offset)
	best.Turn = core.AngleDiff(s.Ship.Angle, best.Bearing)
	best.Misalignment = math.Abs(best.Turn) / 180
	return best
}

// Observe converts a snapshot into an Observation.
func Observe(s sim.Snapshot, cfg Scale) Observation {
	var o Observation
	if s.Ship.Present {
		o[0] = s.Ship.Pos.X / cfg.Width
		o[1] = s.Ship.Pos.Y / cfg.Height
		o[2] = s.Ship.Vel.X / cfg.ShipSpeed
		o[3] = s.Ship.Vel.Y / cfg.ShipSpeed
		o[4] = s.Ship.Angle / 360
	}

	t := NearestRock(s, cfg.Width, cfg.Height)
	if t.Found {
		o[5] = t.Offset.X / cfg.Width
		o[6] = t.Offset.Y / cfg.Height
		o[7] = math.Hypot(o[5], o[6])
		o[8] = t.Bearing / 360
		o[9] = t.Misalignment
	} else {
		o[7] = 1
		o[9] = 1
	}

	if s.Saucer.Present {
		o[10] = s.Saucer.Pos.X / cfg.Width
		o[11] = s.Saucer.Pos.Y / cfg.Height
		o[12] = s.Saucer.Vel.X / (2 * cfg.SaucerSpeed)
		o[13] = s.Saucer.Vel.Y / (2 * cfg.SaucerSpeed)
	}
	return o
}

// Scale holds the normalisation constants for observations.
type Scale struct {
	Width, Height float64
	ShipSpeed     float64
	SaucerSpeed   float64
}
