package sim

import (
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// testConfig returns the default configuration with difficulty scaling off,
// so rock speeds depend on the RNG alone.
func testConfig() config.AsteroidsConfig {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Difficulty.Enabled = false
	return cfg
}

func newTestController(t *testing.T, cfg config.AsteroidsConfig) *Controller {
	t.Helper()
	c, err := NewController(cfg, NewHeadlessStage(cfg.Stage.Width, cfg.Stage.Height), WithSeed(42))
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

// startCleared starts a game and strips the random wave, leaving only the ship
// and one parked rock in the far corner so no level-up fires.
func startCleared(t *testing.T, cfg config.AsteroidsConfig) *Controller {
	t.Helper()
	c := newTestController(t, cfg)
	c.ResetGame()
	removeKind(c, KindRock)
	placeRock(c, core.V(60, 60), RockSmall)
	return c
}

func removeKind(c *Controller, k Kind) {
	var ids []EntityID
	c.stage.Each(func(e *Entity) bool {
		if e.Kind == k {
			ids = append(ids, e.ID)
		}
		return true
	})
	for _, id := range ids {
		c.stage.Remove(id)
	}
}

// regularShape is a 12-gon with a vertex pointing straight down.
func regularShape(radius float64) []core.Vec2 {
	pts := make([]core.Vec2, 12)
	for i := range pts {
		pts[i] = core.Heading(30 * float64(i)).Scale(radius)
	}
	return pts
}

// placeRock adds a motionless regular rock.
func placeRock(c *Controller, pos core.Vec2, size RockSize) *Entity {
	r := &Entity{
		Kind:  KindRock,
		Pos:   pos,
		Shape: regularShape(c.rockRadius(size)),
		Rock:  RockState{Size: size},
	}
	c.stage.Add(r)
	return r
}

// placeSaucer adds a motionless saucer that will not fire or steer soon.
func placeSaucer(c *Controller, pos core.Vec2, size SaucerSize) *Entity {
	scale, value := c.cfg.Saucer.LargeScale, c.cfg.Saucer.LargeScore
	if size == SaucerSmall {
		scale, value = c.cfg.Saucer.SmallScale, c.cfg.Saucer.SmallScore
	}
	s := &Entity{
		Kind:  KindSaucer,
		Pos:   pos,
		Shape: scaledShape(saucerShape, scale),
		Saucer: SaucerState{
			Size:         size,
			ScoreValue:   value,
			FireCooldown: 10000,
			CourseTimer:  10000,
			Dir:          1,
		},
	}
	c.saucerID = c.stage.Add(s)
	return s
}

func mustShip(t *testing.T, c *Controller) *Entity {
	t.Helper()
	s, ok := c.ship()
	if !ok {
		t.Fatal("expected a live ship")
	}
	return s
}

func stepN(c *Controller, n int, a Action) FrameResult {
	var r FrameResult
	for range n {
		r = c.Step(a)
	}
	return r
}
