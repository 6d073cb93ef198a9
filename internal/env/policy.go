package env

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// Policy chooses one action per frame.
type Policy interface {
	Name() string
	Act(obs Observation, s sim.Snapshot) sim.Action
}

// Idle never does anything.
type Idle struct{}

func (Idle) Name() string                             { return "idle" }
func (Idle) Act(Observation, sim.Snapshot) sim.Action { return sim.ActionNoop }

// Random picks uniformly from the action set with its own seeded RNG, so
// it never disturbs the simulation's random stream.
type Random struct {
	rng *sim.RNG
}

// NewRandom returns a Random policy seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: sim.NewRNG(seed)}
}

func (*Random) Name() string { return "random" }

func (p *Random) Act(Observation, sim.Snapshot) sim.Action {
	return sim.Action(p.rng.Intn(sim.NumActions))
}

// Autopilot turns toward the nearest rock and fires once the
// misalignment is inside FireWithin.
type Autopilot struct {
	Width, Height float64
	// FireWithin is the misalignment, in [0, 1], at which the ship opens fire.
	FireWithin float64
	// Evade is the distance below which the ship brakes instead of turning
	// when it is not lined up.
	Evade float64
}

// NewAutopilot returns an autopilot for a stage of the given size.
func NewAutopilot(w, h float64) *Autopilot {
	return &Autopilot{Width: w, Height: h, FireWithin: 0.03, Evade: 60}
}

func (*Autopilot) Name() string { return "autopilot" }

func (p *Autopilot) Act(_ Observation, s sim.Snapshot) sim.Action {
	if !s.Ship.Present || s.Ship.InHyperspace {
		return sim.ActionNoop
	}
	t := NearestRock(s, p.Width, p.Height)
	if !t.Found {
		return sim.ActionNoop
	}
	if t.Misalignment <= p.FireWithin {
		return sim.ActionFire
	}
	if t.Distance < p.Evade && s.Ship.Vel.LenSq() > 0 {
		return sim.ActionThrustDown
	}
	if t.Turn > 0 {
		return sim.ActionRotateRight
	}
	return sim.ActionRotateLeft
}

// PolicyNames lists the names accepted by NewPolicy.
var PolicyNames = []string{"idle", "random", "autopilot"}

// NewPolicy builds a policy by name.
func NewPolicy(name string, seed int64, s Scale) (Policy, error) {
	switch strings.ToLower(name) {
	case "idle":
		return Idle{}, nil
	case "random":
		return NewRandom(seed), nil
	case "autopilot", "":
		return NewAutopilot(s.Width, s.Height), nil
	default:
		return nil, fmt.Errorf("env: unknown policy %q (want one of %s)", name, strings.Join(PolicyNames, ", "))
	}
}
