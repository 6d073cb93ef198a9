// Package audio turns simulation events into sound. The simulation never
// waits on it: a Port only receives each frame's events after the fact.
package audio

import (
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// Port receives the events of every frame.
type Port interface {
	Init() error
	Handle(evs []sim.Event)
	Close()
}

// Null discards everything. It is used when sound is off or the audio
// device cannot be opened.
type Null struct{}

func (Null) Init() error        { return nil }
func (Null) Handle([]sim.Event) {}
func (Null) Close()             {}

// Sound is one synthesized effect.
type Sound int

const (
	SoundFire Sound = iota
	SoundSaucerFire
	SoundBangLarge
	SoundBangMedium
	SoundBangSmall
	SoundShipExplode
	SoundSaucer
	SoundHyperspace
	SoundExtraLife
	SoundLevelUp
	soundCount
)

var soundNames = [...]string{
	SoundFire:        "fire",
	SoundSaucerFire:  "saucer_fire",
	SoundBangLarge:   "bang_large",
	SoundBangMedium:  "bang_medium",
	SoundBangSmall:   "bang_small",
	SoundShipExplode: "ship_explode",
	SoundSaucer:      "saucer",
	SoundHyperspace:  "hyperspace",
	SoundExtraLife:   "extra_life",
	SoundLevelUp:     "level_up",
}

func (s Sound) String() string {
	if s < 0 || s >= soundCount {
		return "unknown"
	}
	return soundNames[s]
}

// SoundsFor maps a frame's events to sounds, each sound at most once per
// frame so a multi-rock split does not stack into clipping.
func SoundsFor(evs []sim.Event) []Sound {
	var seen [soundCount]bool
	var out []Sound
	add := func(s Sound) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, e := range evs {
		switch e.Kind {
		case sim.EventBulletFired:
			if e.Owner == sim.KindSaucer {
				add(SoundSaucerFire)
			} else {
				add(SoundFire)
			}
		case sim.EventRockDestroyed:
			switch e.RockSize {
			case sim.RockLarge:
				add(SoundBangLarge)
			case sim.RockMedium:
				add(SoundBangMedium)
			default:
				add(SoundBangSmall)
			}
		case sim.EventSaucerDestroyed:
			add(SoundBangMedium)
		case sim.EventShipDestroyed:
			add(SoundShipExplode)
		case sim.EventSaucerSpawned:
			add(SoundSaucer)
		case sim.EventHyperspaceEntered:
			add(SoundHyperspace)
		case sim.EventExtraLife:
			add(SoundExtraLife)
		case sim.EventLevelUp:
			add(SoundLevelUp)
		}
	}
	return out
}
