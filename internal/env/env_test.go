package env

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

const (
	stageW = 1200.0
	stageH = 630.0
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// shipAt returns a snapshot with a ship facing up at p and rocks at the
// given positions.
func shipAt(p core.Vec2, rocks ...core.Vec2) sim.Snapshot {
	s := sim.Snapshot{
		State: sim.StatePlaying,
		Ship:  sim.ShipSnapshot{Present: true, Pos: p},
	}
	for i, r := range rocks {
		s.Rocks = append(s.Rocks, sim.RockSnapshot{ID: sim.EntityID(i + 1), Pos: r, Size: sim.RockLarge})
	}
	return s
}

func TestWrapDelta(t *testing.T) {
	tests := []struct {
		d, size, want float64
	}{
		{10, 100, 10},
		{-10, 100, -10},
		{60, 100, -40},
		{-60, 100, 40},
		{50, 100, 50},
	}
	for _, tt := range tests {
		if got := wrapDelta(tt.d, tt.size); got != tt.want {
			t.Errorf("wrapDelta(%v, %v) = %v, want %v", tt.d, tt.size, got, tt.want)
		}
	}
}

func TestNearestRock(t *testing.T) {
	tests := []struct {
		name     string
		snap     sim.Snapshot
		found    bool
		dist     float64
		bearing  float64
		misalign float64
		turn     float64
	}{
		{
			name:  "dead ahead",
			snap:  shipAt(core.V(100, 100), core.V(100, 50), core.V(400, 400)),
			found: true, dist: 50, bearing: 0, misalign: 0, turn: 0,
		},
		{
			name:  "across the left edge",
			snap:  shipAt(core.V(10, 10), core.V(1190, 10)),
			found: true, dist: 20, bearing: 270, misalign: 0.5, turn: -90,
		},
		{
			name:  "behind",
			snap:  shipAt(core.V(600, 315), core.V(600, 415)),
			found: true, dist: 100, bearing: 180, misalign: 1, turn: 180,
		},
		{
			name:     "no rocks",
			snap:     shipAt(core.V(600, 315)),
			misalign: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NearestRock(tt.snap, stageW, stageH)
			if got.Found != tt.found {
				t.Fatalf("Found = %v, want %v", got.Found, tt.found)
			}
			if got.Misalignment != tt.misalign {
				t.Errorf("Misalignment = %v, want %v", got.Misalignment, tt.misalign)
			}
			if !tt.found {
				return
			}
			if !near(got.Distance, tt.dist) || !near(got.Bearing, tt.bearing) || !near(got.Turn, tt.turn) {
				t.Errorf("got dist %v bearing %v turn %v, want %v %v %v",
					got.Distance, got.Bearing, got.Turn, tt.dist, tt.bearing, tt.turn)
			}
		})
	}
}

func TestObserve(t *testing.T) {
	scale := Scale{Width: stageW, Height: stageH, ShipSpeed: 10, SaucerSpeed: 1.5}

	t.Run("no ship", func(t *testing.T) {
		o := Observe(sim.Snapshot{State: sim.StateExploding}, scale)
		for i, v := range o {
			want := 0.0
			if i == 7 || i == 9 {
				want = 1
			}
			if v != want {
				t.Errorf("feature %d = %v, want %v", i, v, want)
			}
		}
	})

	t.Run("ship and saucer", func(t *testing.T) {
		s := shipAt(core.V(600, 315), core.V(600, 115))
		s.Ship.Vel = core.V(5, -10)
		s.Ship.Angle = 90
		s.Saucer = sim.SaucerSnapshot{Present: true, Pos: core.V(300, 63), Vel: core.V(-1.5, 1.5)}
		o := Observe(s, scale)

		want := map[int]float64{
			0: 0.5, 1: 0.5, 2: 0.5, 3: -1, 4: 0.25,
			5: 0, 6: -200.0 / stageH, 8: 0, 9: 0.5,
			10: 0.25, 11: 0.1, 12: -0.5, 13: 0.5,
		}
		for i, w := range want {
			if !near(o[i], w) {
				t.Errorf("feature %d = %v, want %v", i, o[i], w)
			}
		}
	})
}

func TestReward(t *testing.T) {
	rc := DefaultRewardConfig()
	ship := core.V(600, 315)
	shot := []sim.Event{{Kind: sim.EventBulletFired, Owner: sim.KindShip}}

	tests := []struct {
		name   string
		action sim.Action
		snap   sim.Snapshot
		events []sim.Event
		want   float64
	}{
		{"survival only", sim.ActionNoop, shipAt(ship), nil, 0.1},
		{"aligned fire", sim.ActionFire, shipAt(ship, core.V(600, 115)), shot, 0.1 + 0.5 + 5 - 0.2},
		{"wild fire", sim.ActionFire, shipAt(ship, core.V(600, 515)), shot, 0.1 - 3 - 0.05 - 0.2},
		{"too close", sim.ActionNoop, shipAt(ship, core.V(600, 265)), nil, 0.1 + 0.5 - 0.5},
		{"saucer shot is free", sim.ActionNoop, shipAt(ship),
			[]sim.Event{{Kind: sim.EventBulletFired, Owner: sim.KindSaucer}}, 0.1},
		{"hits", sim.ActionNoop, shipAt(ship), []sim.Event{
			{Kind: sim.EventRockDestroyed, Cause: sim.CauseShipBullet},
			{Kind: sim.EventSaucerDestroyed, Cause: sim.CauseShipBullet},
			{Kind: sim.EventRockDestroyed, Cause: sim.CauseShip},
		}, 0.1 + 40},
		{"death", sim.ActionNoop, sim.Snapshot{State: sim.StateExploding},
			[]sim.Event{{Kind: sim.EventShipDestroyed}}, 0.1 - 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reward(rc, tt.action, tt.snap, tt.events, stageW, stageH)
			if !near(got, tt.want) {
				t.Errorf("Reward = %v, want %v", got, tt.want)
			}
			if again := Reward(rc, tt.action, tt.snap, tt.events, stageW, stageH); again != got {
				t.Errorf("second Reward = %v, first %v", again, got)
			}
		})
	}
}

func newEnv(t *testing.T, opts ...Option) *Environment {
	t.Helper()
	e, err := New(config.DefaultAsteroidsConfig(), 42, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestEnvironmentResetAndStep(t *testing.T) {
	e := newEnv(t)
	obs := e.Reset()
	if obs[0] != 0.5 || obs[1] != 0.5 {
		t.Fatalf("ship should start centred, got %v, %v", obs[0], obs[1])
	}
	if n := sim.CountEvents(e.Events(), sim.EventGameStarted); n != 1 {
		t.Errorf("GameStarted events after reset = %d, want 1", n)
	}

	_, r, done := e.Step(sim.ActionNoop)
	if done {
		t.Fatal("episode should not end on the first frame")
	}
	if r <= 0 {
		t.Errorf("idle first frame reward = %v, want positive", r)
	}
	if e.Frames() != 1 || e.Snapshot().Frame != 1 {
		t.Errorf("frames = %d / %d, want 1", e.Frames(), e.Snapshot().Frame)
	}
}

func TestEnvironmentInvalidConfig(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Stage.Width = 0
	if _, err := New(cfg, 1); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("New with bad config: err = %v, want ErrInvalidConfig", err)
	}
}

func TestEnvironmentEndsOnDeath(t *testing.T) {
	const limit = 20000
	e := newEnv(t, WithMaxFrames(limit))
	e.Reset()
	done := false
	for !done {
		_, _, done = e.Step(sim.ActionNoop)
	}
	if e.Frames() < limit && e.Snapshot().State != sim.StateExploding {
		t.Fatalf("episode ended at frame %d in state %v", e.Frames(), e.Snapshot().State)
	}

	obs, r, still := e.Step(sim.ActionFire)
	if !still || r != 0 {
		t.Errorf("step after done = (%v, %v), want (0, true)", r, still)
	}
	if obs != Observe(e.Snapshot(), e.Scale()) {
		t.Error("step after done should repeat the final observation")
	}
}

func TestEnvironmentMaxFrames(t *testing.T) {
	e := newEnv(t, WithMaxFrames(5), WithEpisodeEnd(EndOnGameOver))
	e.Reset()
	for i := 1; i <= 5; i++ {
		_, _, done := e.Step(sim.ActionNoop)
		if done != (i == 5) {
			t.Fatalf("frame %d: done = %v", i, done)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	run := func() []EpisodeSummary {
		e := newEnv(t, WithMaxFrames(400))
		p := NewAutopilot(stageW, stageH)
		out, err := Run(context.Background(), e, p, 2, nil)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return out
	}
	a, b := run(), run()
	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("episodes = %d, %d, want 2", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("episode %d differs: %+v vs %+v", i+1, a[i], b[i])
		}
		if a[i].Frames > 400 {
			t.Errorf("episode %d ran %d frames", i+1, a[i].Frames)
		}
	}
	replay := b[1]
	replay.Episode = a[0].Episode
	if a[0] != replay {
		t.Error("a fixed seed should replay the same episode every time")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := Run(ctx, newEnv(t), Idle{}, 3, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(out) != 0 {
		t.Errorf("summaries = %d, want 0", len(out))
	}
}

func TestAccuracy(t *testing.T) {
	if got := (EpisodeSummary{}).Accuracy(); got != 0 {
		t.Errorf("no shots accuracy = %v", got)
	}
	if got := (EpisodeSummary{Shots: 4, Hits: 1}).Accuracy(); got != 0.25 {
		t.Errorf("accuracy = %v, want 0.25", got)
	}
}

func TestLoadRewardConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reward.yaml")
	if err := os.WriteFile(path, []byte("hit_reward: 50\ndeath_penalty: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	rc, err := LoadRewardConfig(path)
	if err != nil {
		t.Fatalf("LoadRewardConfig: %v", err)
	}
	def := DefaultRewardConfig()
	if rc.HitReward != 50 || rc.DeathPenalty != 10 {
		t.Errorf("overrides not applied: %+v", rc)
	}
	if rc.Survival != def.Survival || rc.ShotPenalty != def.ShotPenalty {
		t.Errorf("missing keys lost their defaults: %+v", rc)
	}

	if _, err := LoadRewardConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
