package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// DefaultSampleRate is used when a Synth is created with a zero rate.
const DefaultSampleRate = beep.SampleRate(44100)

// Synth plays generated effects through the system speaker.
type Synth struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewSynth creates a synthesizer. volume is in [0, 1].
func NewSynth(rate beep.SampleRate, volume float64) *Synth {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Synth{rate: rate, volume: volume, mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer.
func (s *Synth) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Handle queues the sounds for one frame's events. It never blocks on
// playback and does nothing before Init.
func (s *Synth) Handle(evs []sim.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	sounds := SoundsFor(evs)
	if len(sounds) == 0 {
		return
	}

	speaker.Lock()
	for _, snd := range sounds {
		if st := Effect(snd, s.rate, s.volume); st != nil {
			s.mixer.Add(st)
		}
	}
	speaker.Unlock()
}

// Close silences everything still playing.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

var (
	_ Port = Null{}
	_ Port = (*Synth)(nil)
)
