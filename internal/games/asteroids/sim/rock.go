package sim

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// rockShape builds a jagged outline with vertex radii drawn from the RNG.
func rockShape(rng *RNG, radius, jitter float64, vertices int) []core.Vec2 {
	pts := make([]core.Vec2, vertices)
	for i := range pts {
		r := radius * (1 + rng.Range(-jitter, jitter))
		pts[i] = core.Heading(360 * float64(i) / float64(vertices)).Scale(r)
	}
	return pts
}

func (c *Controller) rockRadius(size RockSize) float64 {
	switch size {
	case RockMedium:
		return c.cfg.Rocks.MediumRadius
	case RockSmall:
		return c.cfg.Rocks.SmallRadius
	default:
		return c.cfg.Rocks.LargeRadius
	}
}

// RockScore returns the points awarded for destroying a rock of the given size.
func (c *Controller) RockScore(size RockSize) int {
	switch size {
	case RockMedium:
		return c.cfg.Rocks.MediumScore
	case RockSmall:
		return c.cfg.Rocks.SmallScore
	default:
		return c.cfg.Rocks.LargeScore
	}
}

// newRock creates a rock with random shape, heading, speed and spin.
// Smaller rocks move faster.
func (c *Controller) newRock(pos core.Vec2, size RockSize) *Entity {
	cfg := c.cfg.Rocks
	shape := rockShape(c.rng, c.rockRadius(size), cfg.Jitter, cfg.Vertices)

	speed := c.rng.Range(cfg.MinSpeed, cfg.MaxSpeed) * (1 + 0.5*float64(size))
	speed = c.difficulty.RockSpeed(speed, c.progress())
	heading := c.rng.Range(0, 360)

	return &Entity{
		Kind:  KindRock,
		Pos:   pos,
		Vel:   core.Heading(heading).Scale(speed),
		Angle: c.rng.Range(0, 360),
		Spin:  c.rng.Range(-cfg.MaxSpin, cfg.MaxSpin),
		Shape: shape,
		Rock:  RockState{Size: size},
	}
}

// spawnWave adds n large rocks near the world origin corner, which on a
// torus is the point farthest from the ship's spawn.
func (c *Controller) spawnWave(n int) {
	for range n {
		pos := core.V(
			core.Wrap(c.rng.Range(-10, 10), c.stage.Width()),
			core.Wrap(c.rng.Range(-10, 10), c.stage.Height()),
		)
		c.stage.Add(c.newRock(pos, RockLarge))
	}
}

// destroyRock removes a rock, splits it, awards its score and emits debris.
// Children are placed at the parent's position.
func (c *Controller) destroyRock(r *Entity, cause Cause) {
	c.stage.Remove(r.ID)
	points := c.RockScore(r.Rock.Size)
	c.score += points

	if child, ok := r.Rock.Size.Child(); ok {
		for range 2 {
			c.stage.Add(c.newRock(r.Pos, child))
		}
	}
	c.emitDebris(r.Pos)
	c.emit(Event{
		Kind:     EventRockDestroyed,
		Pos:      r.Pos,
		RockSize: r.Rock.Size,
		Points:   points,
		Cause:    cause,
	})
}
