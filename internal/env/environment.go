package env

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// EpisodeEnd selects what finishes an episode.
type EpisodeEnd int

const (
	// EndOnDeath finishes the episode on the first frame the ship explodes.
	EndOnDeath EpisodeEnd = iota
	// EndOnGameOver plays through every life until the controller returns
	// to attract mode.
	EndOnGameOver
)

// Option configures an Environment.
type Option func(*Environment)

// WithReward replaces the default reward weights.
func WithReward(rc RewardConfig) Option {
	return func(e *Environment) { e.reward = rc }
}

// WithMaxFrames caps episode length. Zero means no cap.
func WithMaxFrames(n int) Option {
	return func(e *Environment) { e.maxFrames = n }
}

// WithEpisodeEnd sets the terminal condition.
func WithEpisodeEnd(end EpisodeEnd) Option {
	return func(e *Environment) { e.end = end }
}

// WithLogger passes a logger through to the controller.
func WithLogger(l *log.Logger) Option {
	return func(e *Environment) { e.logger = l }
}

// Environment drives a controller on a headless stage, one action per call.
type Environment struct {
	cfg       config.AsteroidsConfig
	ctrl      *sim.Controller
	scale     Scale
	reward    RewardConfig
	maxFrames int
	end       EpisodeEnd
	logger    *log.Logger

	frames int
	done   bool
	last   sim.Snapshot
	events []sim.Event
}

// New builds an environment. The seed fixes every episode: Reset always
// replays the same initial wave.
func New(cfg config.AsteroidsConfig, seed int64, opts ...Option) (*Environment, error) {
	e := &Environment{
		cfg:    cfg,
		reward: DefaultRewardConfig(),
		scale: Scale{
			Width:       cfg.Stage.Width,
			Height:      cfg.Stage.Height,
			ShipSpeed:   cfg.Ship.MaxSpeed,
			SaucerSpeed: cfg.Saucer.Speed,
		},
	}
	for _, opt := range opts {
		opt(e)
	}

	ctrlOpts := []sim.Option{sim.WithSeed(seed)}
	if e.logger != nil {
		ctrlOpts = append(ctrlOpts, sim.WithLogger(e.logger))
	}
	ctrl, err := sim.NewController(cfg, sim.NewHeadlessStage(cfg.Stage.Width, cfg.Stage.Height), ctrlOpts...)
	if err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}
	e.ctrl = ctrl
	return e, nil
}

// Reset starts a new game and returns its first observation.
func (e *Environment) Reset() Observation {
	e.last = e.ctrl.ResetGame()
	e.events = e.ctrl.Events()
	e.frames = 0
	e.done = false
	return Observe(e.last, e.scale)
}

// Step applies one action and returns the next observation, the frame's
// reward and whether the episode is over. Stepping a finished episode
// returns the final observation with zero reward.
func (e *Environment) Step(a sim.Action) (Observation, float64, bool) {
	if e.done {
		return Observe(e.last, e.scale), 0, true
	}

	res := e.ctrl.Step(a)
	e.frames++
	e.last = res.Snapshot
	e.events = res.Events

	r := Reward(e.reward, a, res.Snapshot, res.Events, e.scale.Width, e.scale.Height)

	switch e.end {
	case EndOnDeath:
		e.done = res.Terminal
	case EndOnGameOver:
		e.done = res.Snapshot.State == sim.StateAttract
	}
	if e.maxFrames > 0 && e.frames >= e.maxFrames {
		e.done = true
	}
	return Observe(res.Snapshot, e.scale), r, e.done
}

// Snapshot returns the state after the last Reset or Step.
func (e *Environment) Snapshot() sim.Snapshot {
	return e.last
}

// Events returns the events of the last Reset or Step.
func (e *Environment) Events() []sim.Event {
	out := make([]sim.Event, len(e.events))
	copy(out, e.events)
	return out
}

// Frames returns the number of steps taken in the current episode.
func (e *Environment) Frames() int {
	return e.frames
}

// Scale returns the normalisation constants used for observations.
func (e *Environment) Scale() Scale {
	return e.scale
}
