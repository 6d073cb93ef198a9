package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// ShipSnapshot is the observable ship state. Present is false while the
// ship is exploding or the game is in attract mode.
type ShipSnapshot struct {
	Present      bool
	Pos          core.Vec2
	Vel          core.Vec2
	Angle        float64
	Thrusting    bool
	InHyperspace bool
	// ShotsFired and Hits count ship bullets fired and ship bullets that
	// hit something since the last reset.
	ShotsFired int
	Hits       int
}

// RockSnapshot describes one live rock.
type RockSnapshot struct {
	ID   EntityID
	Pos  core.Vec2
	Vel  core.Vec2
	Size RockSize
}

// SaucerSnapshot describes the saucer, if present.
type SaucerSnapshot struct {
	Present bool
	Pos     core.Vec2
	Vel     core.Vec2
	Size    SaucerSize
	Laps    int
}

// BulletSnapshot describes one bullet in flight.
type BulletSnapshot struct {
	Pos   core.Vec2
	Owner Kind
}

// Snapshot is a read-only copy of the observable game state after a frame.
// It shares nothing with the controller.
type Snapshot struct {
	Frame    uint64
	State    GameState
	Score    int
	Lives    int
	Level    int
	NextLife int
	Ship     ShipSnapshot
	Rocks    []RockSnapshot
	Saucer   SaucerSnapshot
	Bullets  []BulletSnapshot
	Debris   int
	RNGState uint64
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:    c.frame,
		State:    c.state,
		Score:    c.score,
		Lives:    c.lives,
		Level:    c.level,
		NextLife: c.nextLife,
		Ship: ShipSnapshot{
			ShotsFired: c.shotsFired,
			Hits:       c.hits,
		},
		RNGState: c.rng.State(),
	}

	c.stage.Each(func(e *Entity) bool {
		switch e.Kind {
		case KindShip:
			if e.ID != c.shipID {
				break
			}
			snap.Ship.Present = true
			snap.Ship.Pos = e.Pos
			snap.Ship.Vel = e.Vel
			snap.Ship.Angle = e.Angle
			snap.Ship.Thrusting = e.Ship.Thrusting
			snap.Ship.InHyperspace = e.Ship.InHyperspace
		case KindRock:
			snap.Rocks = append(snap.Rocks, RockSnapshot{ID: e.ID, Pos: e.Pos, Vel: e.Vel, Size: e.Rock.Size})
		case KindSaucer:
			snap.Saucer = SaucerSnapshot{
				Present: true,
				Pos:     e.Pos,
				Vel:     e.Vel,
				Size:    e.Saucer.Size,
				Laps:    e.Saucer.Laps,
			}
		case KindBullet:
			snap.Bullets = append(snap.Bullets, BulletSnapshot{Pos: e.Pos, Owner: e.Bullet.Owner})
		case KindDebris:
			snap.Debris++
		}
		return true
	})
	return snap
}

// RocksOfSize counts live rocks of the given size.
func (s Snapshot) RocksOfSize(size RockSize) int {
	n := 0
	for _, r := range s.Rocks {
		if r.Size == size {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by their bit patterns, so equal hashes mean
// bit-identical state.
func (s Snapshot) Hash() uint64 {
	h := s.Frame
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixV := func(v core.Vec2) { mixF(v.X); mixF(v.Y) }
	mixB := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}

	mix(uint64(s.State))    //#nosec G115 -- hash computation
	mix(uint64(s.Score))    //#nosec G115 -- hash computation
	mix(uint64(s.Lives))    //#nosec G115 -- hash computation
	mix(uint64(s.Level))    //#nosec G115 -- hash computation
	mix(uint64(s.NextLife)) //#nosec G115 -- hash computation

	mixB(s.Ship.Present)
	mixV(s.Ship.Pos)
	mixV(s.Ship.Vel)
	mixF(s.Ship.Angle)
	mixB(s.Ship.Thrusting)
	mixB(s.Ship.InHyperspace)
	mix(uint64(s.Ship.ShotsFired)) //#nosec G115 -- hash computation
	mix(uint64(s.Ship.Hits))       //#nosec G115 -- hash computation

	for _, r := range s.Rocks {
		mix(uint64(r.ID))
		mixV(r.Pos)
		mixV(r.Vel)
		mix(uint64(r.Size)) //#nosec G115 -- hash computation
	}

	mixB(s.Saucer.Present)
	mixV(s.Saucer.Pos)
	mixV(s.Saucer.Vel)
	mix(uint64(s.Saucer.Size)) //#nosec G115 -- hash computation
	mix(uint64(s.Saucer.Laps)) //#nosec G115 -- hash computation

	for _, b := range s.Bullets {
		mixV(b.Pos)
		mix(uint64(b.Owner)) //#nosec G115 -- hash computation
	}
	mix(uint64(s.Debris)) //#nosec G115 -- hash computation
	mix(s.RNGState)
	return h
}
