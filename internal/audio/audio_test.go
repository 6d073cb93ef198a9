package audio

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

func TestSoundsFor(t *testing.T) {
	tests := []struct {
		name string
		evs  []sim.Event
		want []Sound
	}{
		{"nothing", nil, nil},
		{"ship fire", []sim.Event{{Kind: sim.EventBulletFired, Owner: sim.KindShip}}, []Sound{SoundFire}},
		{"saucer fire", []sim.Event{{Kind: sim.EventBulletFired, Owner: sim.KindSaucer}}, []Sound{SoundSaucerFire}},
		{"split dedupes", []sim.Event{
			{Kind: sim.EventRockDestroyed, RockSize: sim.RockLarge},
			{Kind: sim.EventRockDestroyed, RockSize: sim.RockLarge},
			{Kind: sim.EventRockDestroyed, RockSize: sim.RockSmall},
		}, []Sound{SoundBangLarge, SoundBangSmall}},
		{"death and bonus", []sim.Event{
			{Kind: sim.EventShipDestroyed},
			{Kind: sim.EventExtraLife},
			{Kind: sim.EventLevelUp},
		}, []Sound{SoundShipExplode, SoundExtraLife, SoundLevelUp}},
		{"silent events", []sim.Event{
			{Kind: sim.EventGameStarted},
			{Kind: sim.EventShipRespawned},
			{Kind: sim.EventInvariantCorrected},
		}, nil},
		{"saucer life", []sim.Event{
			{Kind: sim.EventSaucerSpawned},
			{Kind: sim.EventSaucerDestroyed},
			{Kind: sim.EventHyperspaceEntered},
		}, []Sound{SoundSaucer, SoundBangMedium, SoundHyperspace}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SoundsFor(tt.evs); !slices.Equal(got, tt.want) {
				t.Errorf("SoundsFor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSoundString(t *testing.T) {
	if SoundExtraLife.String() != "extra_life" {
		t.Errorf("got %q", SoundExtraLife.String())
	}
	if Sound(99).String() != "unknown" {
		t.Errorf("got %q", Sound(99).String())
	}
}

// drain streams s to exhaustion and returns the sample count.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if math.IsNaN(smp[0]) || math.Abs(smp[0]) > 1.0001 {
				t.Fatalf("sample out of range: %v", smp[0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never finished")
	return 0
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, w := range []Wave{WaveSine, WaveSquare, WaveNoise} {
		got := drain(t, NewTone(rate, w, 440, -200, 100*time.Millisecond))
		if got != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: %d samples, want %d", w, got, rate.N(100*time.Millisecond))
		}
	}
}

func TestEffectsFinish(t *testing.T) {
	rate := beep.SampleRate(8000)
	for s := SoundFire; s < soundCount; s++ {
		st := Effect(s, rate, 1)
		if st == nil {
			t.Fatalf("%v: nil effect", s)
		}
		if n := drain(t, st); n == 0 {
			t.Errorf("%v: produced no samples", s)
		}
	}
	if Effect(soundCount, rate, 1) != nil {
		t.Error("unknown sound should have no effect")
	}
}

func TestPortsWithoutDevice(t *testing.T) {
	evs := []sim.Event{{Kind: sim.EventShipDestroyed}}

	var p Port = Null{}
	if err := p.Init(); err != nil {
		t.Fatalf("Null.Init: %v", err)
	}
	p.Handle(evs)
	p.Close()

	// Before Init a Synth must not touch the speaker.
	s := NewSynth(0, 0.5)
	if s.rate != DefaultSampleRate {
		t.Errorf("rate = %v, want default", s.rate)
	}
	s.Handle(evs)
	s.Close()
}
