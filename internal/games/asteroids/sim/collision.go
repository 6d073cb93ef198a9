package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Collision is one detected contact between two entities. A is the actor
// (ship, saucer or bullet), B the thing it touched.
type Collision struct {
	A, B *Entity
	At   core.Vec2
}

// buckets groups live entities by kind, preserving registry order.
type buckets struct {
	ships, rocks, saucers, bullets []*Entity
}

func collect(reg SpriteRegistry) buckets {
	var b buckets
	reg.Each(func(e *Entity) bool {
		switch e.Kind {
		case KindShip:
			b.ships = append(b.ships, e)
		case KindRock:
			b.rocks = append(b.rocks, e)
		case KindSaucer:
			b.saucers = append(b.saucers, e)
		case KindBullet:
			b.bullets = append(b.bullets, e)
		}
		return true
	})
	return b
}

// DetectCollisions tests every relevant pair against the current positions
// and returns all contacts in a fixed order: ship×rock, ship×saucer,
// saucer×rock, then bullet×rock, bullet×saucer and bullet×ship.
// It does not change the registry; resolution is the caller's job.
//
// Ships in hyperspace are skipped. A bullet never hits an entity of its
// owner's kind. Debris never collides. Contacts across the stage edges
// count, since the stage wraps.
func DetectCollisions(reg SpriteRegistry) []Collision {
	b := collect(reg)
	w, h := reg.Width(), reg.Height()
	var hits []Collision

	test := func(a, o *Entity) {
		if p, ok := a.IntersectsOnTorus(o, w, h); ok {
			hits = append(hits, Collision{A: a, B: o, At: p})
		}
	}

	for _, s := range b.ships {
		if s.Ship.InHyperspace {
			continue
		}
		for _, r := range b.rocks {
			test(s, r)
		}
		for _, u := range b.saucers {
			test(s, u)
		}
	}
	for _, u := range b.saucers {
		for _, r := range b.rocks {
			test(u, r)
		}
	}
	for _, bl := range b.bullets {
		for _, r := range b.rocks {
			test(bl, r)
		}
		if bl.Bullet.Owner != KindSaucer {
			for _, u := range b.saucers {
				test(bl, u)
			}
		}
		if bl.Bullet.Owner != KindShip {
			for _, s := range b.ships {
				if !s.Ship.InHyperspace {
					test(bl, s)
				}
			}
		}
	}
	return hits
}

// resolve applies the consequences of every contact. An entity is consumed
// by its first contact, so a bullet hits at most one target and a rock is
// destroyed at most once. Rocks spawned by splits were not part of
// detection and are only tested from the next frame.
func (c *Controller) resolve(hits []Collision) {
	consumed := make(map[EntityID]bool, len(hits))

	for _, h := range hits {
		if consumed[h.A.ID] || consumed[h.B.ID] {
			continue
		}
		consumed[h.A.ID] = true
		consumed[h.B.ID] = true

		switch h.A.Kind {
		case KindShip:
			if h.B.Kind == KindRock {
				c.destroyRock(h.B, CauseShip)
			} else {
				c.killSaucer(h.B, CauseShip)
			}
			c.killShip(h.A, causeOf(h.B))

		case KindSaucer:
			c.destroyRock(h.B, CauseSaucer)
			c.killSaucer(h.A, CauseRock)

		case KindBullet:
			c.stage.Remove(h.A.ID)
			cause := CauseSaucerBullet
			if h.A.Bullet.Owner == KindShip {
				cause = CauseShipBullet
			}
			switch h.B.Kind {
			case KindRock:
				c.destroyRock(h.B, cause)
			case KindSaucer:
				c.killSaucer(h.B, cause)
			case KindShip:
				c.killShip(h.B, cause)
			}
			if cause == CauseShipBullet {
				c.hits++
			}
		}
	}
}

func causeOf(e *Entity) Cause {
	switch e.Kind {
	case KindRock:
		return CauseRock
	case KindSaucer:
		return CauseSaucer
	default:
		return CauseNone
	}
}
