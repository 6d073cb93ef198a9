// Package sim is the Asteroids simulation core. It has no terminal, audio
// or clock dependencies: a Controller advances the world one frame per call,
// driven either by the interactive front-end or by a headless agent.
package sim

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

// GameState is the controller's top-level mode.
type GameState int

const (
	StatePlaying GameState = iota
	StateExploding
	StateAttract
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateExploding:
		return "exploding"
	case StateAttract:
		return "attract_mode"
	default:
		return "unknown"
	}
}

// FrameResult is everything one frame produced.
type FrameResult struct {
	Snapshot Snapshot
	Terminal bool
	Events   []Event
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for warnings about invalid input and
// corrected state. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSeed sets the seed the RNG is reset to on every new game.
func WithSeed(seed int64) Option {
	return func(c *Controller) {
		c.seed = seed
	}
}

// Controller owns the registry and runs the frame pipeline.
// It is not safe for concurrent use.
type Controller struct {
	cfg        config.AsteroidsConfig
	stage      SpriteRegistry
	rng        *RNG
	seed       int64
	log        *log.Logger
	difficulty *config.DifficultyManager

	state          GameState
	frame          uint64
	score          int
	lives          int
	level          int
	nextLife       int
	rockQuota      int
	explodingCount int
	killFrame      uint64
	shipID         EntityID
	saucerID       EntityID
	shotsFired     int
	hits           int

	pendingHyperspace bool
	events            []Event
}

// NewController validates cfg and returns a controller in attract mode with
// a drifting demo wave on stage.
func NewController(cfg config.AsteroidsConfig, stage SpriteRegistry, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if stage == nil {
		return nil, fmt.Errorf("sim: nil sprite registry")
	}
	c := &Controller{
		cfg:        cfg,
		stage:      stage,
		seed:       1,
		log:        log.New(io.Discard),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.enterAttract()
	return c, nil
}

// enterAttract resets the world to an idle demo wave with no ship.
func (c *Controller) enterAttract() {
	c.stage.Clear()
	c.rng = NewRNG(c.seed)
	c.state = StateAttract
	c.shipID, c.saucerID = 0, 0
	c.rockQuota = c.cfg.Rocks.InitialCount
	c.spawnWave(c.rockQuota)
	c.stage.DrawSprites()
}

// ResetGame starts a new game: cleared registry, reseeded RNG, fresh
// ship at the centre, the initial rock wave and state playing.
func (c *Controller) ResetGame() Snapshot {
	c.stage.Clear()
	c.rng = NewRNG(c.seed)
	c.frame = 0
	c.score = 0
	c.lives = c.cfg.Gameplay.StartLives
	c.level = 1
	c.nextLife = c.cfg.Gameplay.ExtraLifeEvery
	c.rockQuota = c.cfg.Rocks.InitialCount
	c.explodingCount = 0
	c.killFrame = 0
	c.shipID, c.saucerID = 0, 0
	c.shotsFired, c.hits = 0, 0
	c.pendingHyperspace = false
	c.state = StatePlaying

	c.events = nil
	c.spawnShip()
	c.spawnWave(c.rockQuota)
	c.emit(Event{Kind: EventGameStarted})
	c.stage.DrawSprites()
	return c.Snapshot()
}

// StartGame is the explicit start command. It is honoured only in attract
// mode; otherwise nothing changes and false is returned.
func (c *Controller) StartGame() (Snapshot, bool) {
	if c.state != StateAttract {
		return c.Snapshot(), false
	}
	return c.ResetGame(), true
}

// Hyperspace queues a jump for the next frame. Ignored if there is no ship
// or it is already in hyperspace when the frame runs.
func (c *Controller) Hyperspace() {
	c.pendingHyperspace = true
}

// AdvanceFrame runs one frame and reports whether it ended in the
// exploding state.
func (c *Controller) AdvanceFrame(a Action) (Snapshot, bool) {
	r := c.Step(a)
	return r.Snapshot, r.Terminal
}

// Step runs one frame of the pipeline. Actions outside the action set are
// logged and treated as noop.
func (c *Controller) Step(a Action) FrameResult {
	if !a.Valid() {
		c.log.Warn("invalid action, using noop", "action", int(a), "frame", c.frame+1)
		a = ActionNoop
	}

	c.frame++
	c.events = nil

	// Input
	if c.state == StatePlaying {
		c.tickHyperspace()
		if c.pendingHyperspace {
			c.enterHyperspace()
		}
		c.applyAction(a)
	}
	c.pendingHyperspace = false

	// Motion
	c.stage.MoveSprites()

	if c.state != StateAttract {
		c.resolve(DetectCollisions(c.stage))
		c.updateSaucer()
		c.checkExtraLife()
	}

	c.transition()
	c.checkInvariants()
	c.stage.DrawSprites()

	return FrameResult{
		Snapshot: c.Snapshot(),
		Terminal: c.state == StateExploding,
		Events:   c.Events(),
	}
}

// Events returns a copy of the events produced by the last frame (or by the
// last reset). Calling it does not consume them.
func (c *Controller) Events() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// State returns the current mode.
func (c *Controller) State() GameState {
	return c.state
}

// Frame returns the number of frames since the last reset.
func (c *Controller) Frame() uint64 {
	return c.frame
}

// Stage returns the registry the controller draws into.
func (c *Controller) Stage() SpriteRegistry {
	return c.stage
}

func (c *Controller) emit(e Event) {
	e.Frame = c.frame
	c.events = append(c.events, e)
}

func (c *Controller) checkExtraLife() {
	for c.score >= c.nextLife {
		c.lives++
		c.nextLife += c.cfg.Gameplay.ExtraLifeEvery
		c.emit(Event{Kind: EventExtraLife})
	}
}

// transition evaluates the state machine at the end of a frame.
func (c *Controller) transition() {
	switch c.state {
	case StatePlaying:
		if c.stage.Count(KindRock) == 0 {
			c.rockQuota++
			c.level++
			c.spawnWave(c.rockQuota)
			c.emit(Event{Kind: EventLevelUp, Points: c.level})
		}

	case StateExploding:
		if c.killFrame == c.frame {
			return
		}
		c.explodingCount++
		if c.explodingCount < c.cfg.Gameplay.ExplodingFrames {
			return
		}
		if c.lives > 0 {
			c.state = StatePlaying
			s := c.spawnShip()
			c.emit(Event{Kind: EventShipRespawned, Pos: s.Pos})
			return
		}
		c.state = StateAttract
		c.emit(Event{Kind: EventGameOver, Points: c.score})
		c.log.Info("game over", "frame", c.frame, "score", c.score)
	}
}

func (c *Controller) progress() config.Progress {
	return config.Progress{Score: c.score, Frame: c.frame, Wave: c.level}
}
