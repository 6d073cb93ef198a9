package sim

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// saucerShape is the unscaled hull.
var saucerShape = []core.Vec2{
	{X: -12, Y: 0},
	{X: -5, Y: -4},
	{X: -3, Y: -8},
	{X: 3, Y: -8},
	{X: 5, Y: -4},
	{X: 12, Y: 0},
	{X: 5, Y: 5},
	{X: -5, Y: 5},
}

func scaledShape(shape []core.Vec2, k float64) []core.Vec2 {
	out := make([]core.Vec2, len(shape))
	for i, p := range shape {
		out[i] = p.Scale(k)
	}
	return out
}

// saucer returns the live saucer, if any.
func (c *Controller) saucer() (*Entity, bool) {
	if c.saucerID == 0 {
		return nil, false
	}
	e, ok := c.stage.Get(c.saucerID)
	if !ok || e.Kind != KindSaucer {
		return nil, false
	}
	return e, true
}

// updateSaucer runs once per frame: it retires a saucer that finished its
// laps, steers and fires the live one, and spawns a new one on the timer.
func (c *Controller) updateSaucer() {
	if s, ok := c.saucer(); ok {
		if s.WrappedX() {
			s.Saucer.Laps++
		}
		if s.Saucer.Laps >= c.cfg.Saucer.MaxLaps {
			c.stage.Remove(s.ID)
			c.saucerID = 0
			c.emit(Event{Kind: EventSaucerDeparted, Pos: s.Pos, SaucerSize: s.Saucer.Size})
		} else {
			c.steerSaucer(s)
		}
	}

	if c.saucerID == 0 && c.frame%uint64(c.cfg.Saucer.SpawnInterval) == 0 { //#nosec G115 -- validated positive
		c.spawnSaucer()
	}
}

func (c *Controller) spawnSaucer() {
	cfg := c.cfg.Saucer
	size, scale, value := SaucerLarge, cfg.LargeScale, cfg.LargeScore
	if c.rng.Chance(cfg.SmallChance) {
		size, scale, value = SaucerSmall, cfg.SmallScale, cfg.SmallScore
	}

	dir, x := 1.0, 0.0
	if c.rng.Intn(2) == 1 {
		dir, x = -1.0, c.stage.Width()-1
	}
	y := c.rng.Range(0.1, 0.9) * c.stage.Height()

	s := &Entity{
		Kind:  KindSaucer,
		Pos:   core.V(x, y),
		Vel:   core.V(dir*cfg.Speed, 0),
		Shape: scaledShape(saucerShape, scale),
		Saucer: SaucerState{
			Size:         size,
			ScoreValue:   value,
			FireCooldown: c.fireInterval(),
			CourseTimer:  cfg.CourseFrames,
			Dir:          dir,
		},
	}
	c.saucerID = c.stage.Add(s)
	c.emit(Event{Kind: EventSaucerSpawned, Pos: s.Pos, SaucerSize: size, Points: value})
	c.log.Debug("saucer spawned", "frame", c.frame, "size", size)
}

func (c *Controller) fireInterval() int {
	return c.difficulty.SaucerFireFrames(c.cfg.Saucer.FireFrames, c.progress())
}

// steerSaucer changes the vertical course on a timer and fires on another.
func (c *Controller) steerSaucer(s *Entity) {
	cfg := c.cfg.Saucer

	s.Saucer.CourseTimer--
	if s.Saucer.CourseTimer <= 0 {
		s.Saucer.CourseTimer = cfg.CourseFrames
		vy := float64(c.rng.Intn(3)-1) * cfg.Speed
		s.Vel = core.V(s.Saucer.Dir*cfg.Speed, vy)
	}

	s.Saucer.FireCooldown--
	if s.Saucer.FireCooldown > 0 {
		return
	}
	s.Saucer.FireCooldown = c.fireInterval()
	if c.liveBullets(s.ID) >= cfg.MaxBullets {
		return
	}

	// Large saucers fire at random; small ones aim at the ship.
	angle := c.rng.Range(0, 360)
	if ship, ok := c.ship(); ok && s.Saucer.Size == SaucerSmall && !ship.Ship.InHyperspace {
		angle = s.Pos.BearingTo(ship.Pos) + c.rng.Range(-cfg.AimJitter, cfg.AimJitter)
	}
	dir := core.Heading(angle)
	b := &Entity{
		Kind: KindBullet,
		Pos:  s.Pos,
		Vel:  dir.Scale(cfg.BulletSpeed),
		Bullet: BulletState{
			Owner:   KindSaucer,
			OwnerID: s.ID,
			TTL:     cfg.BulletTTL,
		},
	}
	c.stage.Add(b)
	c.emit(Event{Kind: EventBulletFired, Pos: b.Pos, Owner: KindSaucer})
}

// killSaucer removes the saucer after a hit. Only ship bullets score.
func (c *Controller) killSaucer(s *Entity, cause Cause) {
	c.stage.Remove(s.ID)
	c.saucerID = 0
	points := 0
	if cause == CauseShipBullet {
		points = s.Saucer.ScoreValue
		c.score += points
	}
	c.emitDebris(s.Pos)
	c.emit(Event{
		Kind:       EventSaucerDestroyed,
		Pos:        s.Pos,
		SaucerSize: s.Saucer.Size,
		Points:     points,
		Cause:      cause,
	})
}
