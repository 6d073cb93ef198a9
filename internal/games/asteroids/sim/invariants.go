package sim

// checkInvariants repairs states that should be unreachable and reports
// each repair as an event and a warning.
func (c *Controller) checkInvariants() {
	var ships, saucers, badRocks []*Entity
	c.stage.Each(func(e *Entity) bool {
		switch e.Kind {
		case KindShip:
			ships = append(ships, e)
		case KindSaucer:
			saucers = append(saucers, e)
		case KindRock:
			if !e.Rock.Size.Valid() {
				badRocks = append(badRocks, e)
			}
		}
		return true
	})

	for _, r := range badRocks {
		c.stage.Remove(r.ID)
		c.corrected("removed rock with undefined size", "id", r.ID, "size", int(r.Rock.Size))
	}

	// At most one saucer; the tracked one wins.
	if _, ok := c.saucer(); !ok {
		c.saucerID = 0
	}
	for _, s := range saucers {
		if c.saucerID == 0 {
			c.saucerID = s.ID
			continue
		}
		if s.ID != c.saucerID {
			c.stage.Remove(s.ID)
			c.corrected("removed extra saucer", "id", s.ID)
		}
	}

	// Exactly one ship while playing, none otherwise.
	if _, ok := c.ship(); !ok {
		c.shipID = 0
	}
	for _, s := range ships {
		if c.state == StatePlaying && c.shipID == 0 {
			c.shipID = s.ID
			continue
		}
		if s.ID != c.shipID || c.state != StatePlaying {
			c.stage.Remove(s.ID)
			c.corrected("removed stray ship", "id", s.ID, "state", c.state)
		}
	}
	if c.state != StatePlaying {
		c.shipID = 0
	}
	if c.state == StatePlaying && c.shipID == 0 {
		c.spawnShip()
		c.corrected("spawned missing ship")
	}
}

func (c *Controller) corrected(msg string, kv ...any) {
	c.log.Warn(msg, append([]any{"frame", c.frame}, kv...)...)
	c.emit(Event{Kind: EventInvariantCorrected, Detail: msg})
}
