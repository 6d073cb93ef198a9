package asteroids

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func started(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testRuntime())
	res := g.Step(input(core.ActionStart))
	if !g.started {
		t.Fatal("game did not start")
	}
	if !res.Happened(sim.EventGameStarted.String()) {
		t.Fatalf("start events = %v, want game_started", res.Events)
	}
	return g
}

func TestRegistered(t *testing.T) {
	for id, title := range map[string]string{"asteroids": "Asteroids", "asteroids_demo": "Asteroids (Demo)"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id || g.Title() != title {
			t.Errorf("%q: got ID %q title %q", id, g.ID(), g.Title())
		}
	}
}

func TestArcadeStartsInAttract(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	if st := g.State(); st.GameOver || st.Paused {
		t.Fatalf("fresh game state = %+v", st)
	}
	g.Step(input(core.ActionFire))
	if g.Snapshot().State != sim.StateAttract {
		t.Fatalf("fire should not start the game, state %v", g.Snapshot().State)
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Press ENTER to start") {
		t.Errorf("attract screen missing prompt:\n%s", scr.String())
	}
}

func TestStartGame(t *testing.T) {
	g := started(t)
	st := g.State()
	if st.Lives != 3 || st.Level != 1 || st.Score != 0 || st.GameOver {
		t.Errorf("state after start = %+v", st)
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.Row(0), "Score: 0") || !strings.Contains(scr.Row(0), "Wave: 1") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	if scr.Get(0, 1) != separator {
		t.Errorf("row 1 should be a separator, got %q", scr.Row(1))
	}
}

func TestActionFromInput(t *testing.T) {
	tests := []struct {
		name string
		in   core.InputFrame
		want sim.Action
	}{
		{"nothing", input(), sim.ActionNoop},
		{"fire wins", input(core.ActionFire, core.ActionRotateLeft, core.ActionThrust), sim.ActionFire},
		{"rotate over thrust", input(core.ActionRotateRight, core.ActionThrust), sim.ActionRotateRight},
		{"left over right", input(core.ActionRotateLeft, core.ActionRotateRight), sim.ActionRotateLeft},
		{"thrust", input(core.ActionThrust), sim.ActionThrustUp},
		{"brake", input(core.ActionBrake), sim.ActionThrustDown},
		{"hyperspace is not a ship action", input(core.ActionHyperspace), sim.ActionNoop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActionFromInput(tt.in); got != tt.want {
				t.Errorf("ActionFromInput = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPause(t *testing.T) {
	g := started(t)
	g.Step(input())
	frame := g.Snapshot().Frame

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause did not take")
	}
	g.Step(input(core.ActionThrust))
	if g.Snapshot().Frame != frame {
		t.Errorf("frame advanced while paused: %d -> %d", frame, g.Snapshot().Frame)
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused || g.Snapshot().Frame != frame+1 {
		t.Errorf("unpause: paused %v frame %d", g.State().Paused, g.Snapshot().Frame)
	}
}

func TestHyperspaceKey(t *testing.T) {
	g := started(t)
	res := g.Step(input(core.ActionHyperspace))
	if !g.Snapshot().Ship.InHyperspace {
		t.Fatal("ship should be in hyperspace")
	}
	if len(res.Events) == 0 || len(g.LastEvents()) != len(res.Events) {
		t.Errorf("events = %v, LastEvents = %v", res.Events, g.LastEvents())
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.Row(1), "HYPERSPACE") {
		t.Errorf("separator row = %q", scr.Row(1))
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() uint64 {
		g := started(t)
		for i := 0; i < 600; i++ {
			var in core.InputFrame
			switch i % 7 {
			case 0:
				in = input(core.ActionFire)
			case 1, 2:
				in = input(core.ActionRotateLeft)
			case 3:
				in = input(core.ActionThrust)
			default:
				in = input()
			}
			g.Step(in)
		}
		return g.Snapshot().Hash()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("replay hashes differ: %d vs %d", a, b)
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60, Seed: 1})
	before := g.Snapshot().Frame
	g.Step(input(core.ActionStart))
	if g.Snapshot().Frame != before || g.started {
		t.Error("a too-small game should not advance")
	}

	scr := core.NewScreen(20, 8)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Errorf("missing size warning:\n%s", scr.String())
	}

	g.Resize(testRuntime())
	g.Step(input(core.ActionStart))
	if !g.started {
		t.Error("game should start after growing the window")
	}
}

func TestDemoFliesItself(t *testing.T) {
	g := NewDemo()
	g.Reset(testRuntime())
	if g.Snapshot().State != sim.StatePlaying {
		t.Fatalf("demo state after reset = %v", g.Snapshot().State)
	}
	for i := 0; i < 300; i++ {
		if st := g.Step(input()).State; st.GameOver {
			t.Fatal("demo never reports game over")
		}
	}
	if g.Snapshot().Ship.ShotsFired == 0 {
		t.Error("autopilot never fired")
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.Row(23), "DEMO") {
		t.Errorf("bottom row = %q", scr.Row(23))
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	defer SetDifficultyPreset("")

	SetDifficultyPreset("easy")
	g := New()
	g.Reset(testRuntime())
	g.Step(input(core.ActionStart))
	if g.State().Lives != 5 {
		t.Errorf("easy lives = %d, want 5", g.State().Lives)
	}

	SetDifficultyPreset("nonsense")
	if difficultyPreset != "" {
		t.Errorf("unknown preset kept as %q", difficultyPreset)
	}
}
