// Package asteroids adapts the simulation core to the terminal front-ends:
// keyboard actions become ship commands, and the presentation stage is
// framed with a HUD and overlays.
package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/env"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// Mode selects who flies the ship.
type Mode int

const (
	ModeArcade Mode = iota // keyboard player, starts from attract mode
	ModeDemo               // autopilot, restarts itself after game over
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 2

// demoRestartFrames is how long the demo lingers on game over.
const demoRestartFrames = 120

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game runs one Controller on a presentation stage sized to the terminal.
type Game struct {
	mode Mode

	rt    core.RuntimeConfig
	stage *sim.PresentationStage
	ctrl  *sim.Controller
	pilot env.Policy
	scale env.Scale

	snap      sim.Snapshot
	last      []sim.Event
	started   bool
	paused    bool
	idleTicks int

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
	err            error
}

// New creates an arcade game instance.
func New() *Game {
	return &Game{mode: ModeArcade}
}

// NewDemo creates a self-playing instance.
func NewDemo() *Game {
	return &Game{mode: ModeDemo}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeDemo {
		return "asteroids_demo"
	}
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeDemo {
		return "Asteroids (Demo)"
	}
	return "Asteroids"
}

// Reset loads configuration and builds a fresh controller. Arcade mode
// comes up in attract mode; the demo starts flying at once.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		cfg = config.DefaultAsteroidsConfig()
	}
	if difficultyPreset != "" {
		config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	}
	g.rt = rt
	g.minScreenW = 40
	g.minScreenH = 12
	g.screenTooSmall = rt.ScreenW < g.minScreenW || rt.ScreenH < g.minScreenH

	g.stage = sim.NewPresentationStage(cfg.Stage.Width, cfg.Stage.Height, rt.ScreenW, max(rt.ScreenH-hudRows, 1))
	g.ctrl, g.err = sim.NewController(cfg, g.stage, sim.WithSeed(rt.Seed))
	if g.err != nil {
		return
	}

	g.scale = env.Scale{
		Width:       cfg.Stage.Width,
		Height:      cfg.Stage.Height,
		ShipSpeed:   cfg.Ship.MaxSpeed,
		SaucerSpeed: cfg.Saucer.Speed,
	}
	g.started = false
	g.paused = false
	g.idleTicks = 0
	g.last = nil

	if g.mode == ModeDemo {
		g.pilot = env.NewAutopilot(cfg.Stage.Width, cfg.Stage.Height)
		g.start()
	}
	g.snap = g.ctrl.Snapshot()
}

// Resize adapts to a new terminal size without restarting the game.
func (g *Game) Resize(rt core.RuntimeConfig) {
	g.rt = rt
	g.screenTooSmall = rt.ScreenW < g.minScreenW || rt.ScreenH < g.minScreenH
	if g.stage != nil {
		g.stage.Resize(rt.ScreenW, max(rt.ScreenH-hudRows, 1))
		g.stage.DrawSprites()
	}
}

func (g *Game) start() {
	if _, ok := g.ctrl.StartGame(); !ok {
		return
	}
	g.started = true
	g.paused = false
	g.idleTicks = 0
	g.last = g.ctrl.Events()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.ctrl == nil {
		return core.StepResult{State: g.State()}
	}
	g.last = nil

	attract := g.ctrl.State() == sim.StateAttract
	if attract && g.mode == ModeArcade &&
		(in.Has(core.ActionStart) || in.Has(core.ActionConfirm) || in.Has(core.ActionRestart)) {
		g.start()
		g.snap = g.ctrl.Snapshot()
		return g.result()
	}

	if in.Has(core.ActionPause) && !attract {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionHyperspace) {
		g.ctrl.Hyperspace()
	}

	var a sim.Action
	if g.mode == ModeDemo {
		a = g.pilot.Act(env.Observe(g.snap, g.scale), g.snap)
	} else {
		a = ActionFromInput(in)
	}

	res := g.ctrl.Step(a)
	g.snap = res.Snapshot
	g.last = res.Events

	if g.mode == ModeDemo && res.Snapshot.State == sim.StateAttract {
		g.idleTicks++
		if g.idleTicks >= demoRestartFrames {
			g.start()
			g.snap = g.ctrl.Snapshot()
		}
	}
	return g.result()
}

func (g *Game) result() core.StepResult {
	names := make([]string, len(g.last))
	for i, e := range g.last {
		names[i] = e.Kind.String()
	}
	return core.StepResult{State: g.State(), Events: names}
}

// ActionFromInput picks the single ship action for a frame. When several
// keys are down, fire wins over rotation, rotation over thrust.
func ActionFromInput(in core.InputFrame) sim.Action {
	switch {
	case in.Has(core.ActionFire):
		return sim.ActionFire
	case in.Has(core.ActionRotateLeft):
		return sim.ActionRotateLeft
	case in.Has(core.ActionRotateRight):
		return sim.ActionRotateRight
	case in.Has(core.ActionThrust):
		return sim.ActionThrustUp
	case in.Has(core.ActionBrake):
		return sim.ActionThrustDown
	default:
		return sim.ActionNoop
	}
}

// LastEvents returns the simulation events of the last tick, for sound.
func (g *Game) LastEvents() []sim.Event {
	out := make([]sim.Event, len(g.last))
	copy(out, g.last)
	return out
}

// Snapshot returns the state after the last tick.
func (g *Game) Snapshot() sim.Snapshot {
	return g.snap
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		Lives:    g.snap.Lives,
		Level:    g.snap.Level,
		GameOver: g.mode == ModeArcade && g.started && g.snap.State == sim.StateAttract,
		Paused:   g.paused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
	registry.Register("asteroids_demo", func() registry.Game {
		return NewDemo()
	})
}

var (
	_ registry.Game      = (*Game)(nil)
	_ registry.Resizable = (*Game)(nil)
)
