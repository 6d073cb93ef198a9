package env

import (
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

func TestAutopilot(t *testing.T) {
	p := NewAutopilot(stageW, stageH)
	ship := core.V(600, 315)

	tests := []struct {
		name string
		snap sim.Snapshot
		want sim.Action
	}{
		{"no ship", sim.Snapshot{State: sim.StateExploding}, sim.ActionNoop},
		{"no rocks", shipAt(ship), sim.ActionNoop},
		{"lined up", shipAt(ship, core.V(600, 115)), sim.ActionFire},
		{"target right", shipAt(ship, core.V(800, 315)), sim.ActionRotateRight},
		{"target left", shipAt(ship, core.V(400, 315)), sim.ActionRotateLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Act(Observation{}, tt.snap); got != tt.want {
				t.Errorf("Act = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("brakes when close and drifting", func(t *testing.T) {
		s := shipAt(ship, core.V(640, 315))
		s.Ship.Vel = core.V(1, 0)
		if got := p.Act(Observation{}, s); got != sim.ActionThrustDown {
			t.Errorf("Act = %v, want thrust_down", got)
		}
	})

	t.Run("hyperspace", func(t *testing.T) {
		s := shipAt(ship, core.V(600, 115))
		s.Ship.InHyperspace = true
		if got := p.Act(Observation{}, s); got != sim.ActionNoop {
			t.Errorf("Act = %v, want noop", got)
		}
	})
}

func TestRandomPolicy(t *testing.T) {
	a, b := NewRandom(7), NewRandom(7)
	seen := map[sim.Action]bool{}
	for i := 0; i < 500; i++ {
		x, y := a.Act(Observation{}, sim.Snapshot{}), b.Act(Observation{}, sim.Snapshot{})
		if x != y {
			t.Fatalf("step %d: same seed gave %v and %v", i, x, y)
		}
		if !x.Valid() {
			t.Fatalf("step %d: invalid action %v", i, x)
		}
		seen[x] = true
	}
	if len(seen) != sim.NumActions {
		t.Errorf("random policy used %d of %d actions", len(seen), sim.NumActions)
	}
}

func TestNewPolicy(t *testing.T) {
	scale := Scale{Width: stageW, Height: stageH}
	for _, name := range PolicyNames {
		p, err := NewPolicy(name, 1, scale)
		if err != nil {
			t.Fatalf("NewPolicy(%q): %v", name, err)
		}
		if p.Name() != name {
			t.Errorf("NewPolicy(%q).Name() = %q", name, p.Name())
		}
	}
	if _, err := NewPolicy("genius", 1, scale); err == nil {
		t.Error("unknown policy should fail")
	}
}
