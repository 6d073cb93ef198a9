package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

// emitDebris scatters explosion particles from pos.
func (c *Controller) emitDebris(pos core.Vec2) {
	g := c.cfg.Gameplay
	for range g.DebrisCount {
		dir := core.Heading(c.rng.Range(0, 360))
		c.stage.Add(&Entity{
			Kind:   KindDebris,
			Pos:    pos,
			Vel:    dir.Scale(c.rng.Range(0.2, g.DebrisSpeed)),
			Debris: DebrisState{TTL: g.DebrisTTLMin + c.rng.Intn(g.DebrisTTLMax-g.DebrisTTLMin)},
		})
	}
}
