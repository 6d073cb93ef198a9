package sim

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// shipShape is the hull outline pointing up.
var shipShape = []core.Vec2{
	{X: 0, Y: -10},
	{X: 6, Y: 10},
	{X: 3, Y: 7},
	{X: -3, Y: 7},
	{X: -6, Y: 10},
}

// noseOffset is how far ahead of the ship's position bullets appear.
const noseOffset = 10

func newShip(pos core.Vec2) *Entity {
	return &Entity{
		Kind:  KindShip,
		Pos:   pos,
		Shape: shipShape,
	}
}

// spawnShip places a fresh ship at the stage centre facing up.
func (c *Controller) spawnShip() *Entity {
	s := newShip(core.V(c.stage.Width()/2, c.stage.Height()/2))
	c.shipID = c.stage.Add(s)
	return s
}

// ship returns the live ship, if any.
func (c *Controller) ship() (*Entity, bool) {
	if c.shipID == 0 {
		return nil, false
	}
	e, ok := c.stage.Get(c.shipID)
	if !ok || e.Kind != KindShip {
		return nil, false
	}
	return e, true
}

// applyAction turns one agent or keyboard action into ship motion.
func (c *Controller) applyAction(a Action) {
	s, ok := c.ship()
	if !ok {
		return
	}
	cfg := c.cfg.Ship
	s.Ship.Thrusting = false
	if s.Ship.InHyperspace {
		return
	}

	switch a {
	case ActionRotateLeft:
		s.Angle = core.NormalizeAngle(s.Angle - cfg.TurnStep)
	case ActionRotateRight:
		s.Angle = core.NormalizeAngle(s.Angle + cfg.TurnStep)
	case ActionThrustUp:
		s.Ship.Thrusting = true
		s.Vel = s.Vel.Add(core.Heading(s.Angle).Scale(cfg.Acceleration))
		if l := s.Vel.Len(); l > cfg.MaxSpeed {
			s.Vel = s.Vel.Scale(cfg.MaxSpeed / l)
		}
	case ActionThrustDown:
		s.Vel = s.Vel.Scale(1 - cfg.Brake)
	case ActionFire:
		c.fireShipBullet(s)
	}
	s.refresh()
}

func (c *Controller) fireShipBullet(s *Entity) {
	if s.Ship.InHyperspace {
		return
	}
	if c.liveBullets(s.ID) >= c.cfg.Ship.MaxBullets {
		return
	}
	dir := core.Heading(s.Angle)
	b := &Entity{
		Kind: KindBullet,
		Pos:  s.Pos.Add(dir.Scale(noseOffset)),
		Vel:  dir.Scale(c.cfg.Ship.BulletSpeed),
		Bullet: BulletState{
			Owner:   KindShip,
			OwnerID: s.ID,
			TTL:     c.cfg.Ship.BulletTTL,
		},
	}
	c.stage.Add(b)
	c.shotsFired++
	c.emit(Event{Kind: EventBulletFired, Pos: b.Pos, Owner: KindShip})
}

// liveBullets counts bullets fired by owner that are still in flight.
func (c *Controller) liveBullets(owner EntityID) int {
	n := 0
	c.stage.Each(func(e *Entity) bool {
		if e.Kind == KindBullet && e.Bullet.OwnerID == owner {
			n++
		}
		return true
	})
	return n
}

// tickHyperspace counts down an active jump and brings the ship back at a
// random position when it runs out.
func (c *Controller) tickHyperspace() {
	s, ok := c.ship()
	if !ok || !s.Ship.InHyperspace {
		return
	}
	s.Ship.HyperspaceTTL--
	if s.Ship.HyperspaceTTL > 0 {
		return
	}
	s.Ship.InHyperspace = false
	s.Ship.HyperspaceTTL = 0
	s.Pos = core.V(c.rng.Range(0, c.stage.Width()), c.rng.Range(0, c.stage.Height()))
	s.refresh()
	c.emit(Event{Kind: EventHyperspaceExited, Pos: s.Pos})
}

func (c *Controller) enterHyperspace() {
	s, ok := c.ship()
	if !ok || s.Ship.InHyperspace {
		return
	}
	s.Ship.InHyperspace = true
	s.Ship.HyperspaceTTL = c.cfg.Ship.HyperspaceFrames
	s.Ship.Thrusting = false
	s.Vel = core.Vec2{}
	c.emit(Event{Kind: EventHyperspaceEntered, Pos: s.Pos})
}

// killShip removes the ship and starts the explosion countdown.
func (c *Controller) killShip(s *Entity, cause Cause) {
	c.stage.Remove(s.ID)
	c.shipID = 0
	c.lives--
	c.state = StateExploding
	c.explodingCount = 0
	c.killFrame = c.frame
	c.emitDebris(s.Pos)
	c.emit(Event{Kind: EventShipDestroyed, Pos: s.Pos, Cause: cause})
	c.log.Debug("ship destroyed", "frame", c.frame, "cause", cause, "lives", c.lives)
}
