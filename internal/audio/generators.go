package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// tone is a fixed-length oscillator with an optional linear pitch slide.
type tone struct {
	rate      beep.SampleRate
	wave      Wave
	freq      float64
	slide     float64 // Hz added per second
	phase     float64
	pos, size int
	noise     uint32
}

// NewTone returns a streamer that plays freq Hz for d, gliding by slide
// Hz per second. Noise uses a fixed-seed generator so effects are repeatable.
func NewTone(rate beep.SampleRate, wave Wave, freq, slide float64, d time.Duration) beep.Streamer {
	return &tone{rate: rate, wave: wave, freq: freq, slide: slide, size: rate.N(d), noise: 0x9e3779b9}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.size {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			o.noise ^= o.noise << 13
			o.noise ^= o.noise >> 17
			o.noise ^= o.noise << 5
			v = float64(o.noise)/float64(math.MaxUint32)*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t := float64(o.pos) / float64(o.rate)
		f := math.Max(o.freq+o.slide*t, 1)
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// decay fades a stream out exponentially; k is the decay rate per second.
type decay struct {
	beep.Streamer
	rate beep.SampleRate
	k    float64
	pos  int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := math.Exp(-d.k * float64(d.pos) / float64(d.rate))
		samples[i][0] *= g
		samples[i][1] *= g
		d.pos++
	}
	return n, ok
}

// withVolume scales s linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Effect builds the streamer for one sound.
func Effect(s Sound, rate beep.SampleRate, master float64) beep.Streamer {
	var out beep.Streamer
	switch s {
	case SoundFire:
		out = &decay{Streamer: NewTone(rate, WaveSquare, 1400, -6000, 80*time.Millisecond), rate: rate, k: 20}
	case SoundSaucerFire:
		out = &decay{Streamer: NewTone(rate, WaveSquare, 900, -3000, 90*time.Millisecond), rate: rate, k: 18}
	case SoundBangLarge:
		out = &decay{Streamer: NewTone(rate, WaveNoise, 0, 0, 450*time.Millisecond), rate: rate, k: 7}
	case SoundBangMedium:
		out = withVolume(&decay{Streamer: NewTone(rate, WaveNoise, 0, 0, 300*time.Millisecond), rate: rate, k: 10}, 0.7)
	case SoundBangSmall:
		out = withVolume(&decay{Streamer: NewTone(rate, WaveNoise, 0, 0, 180*time.Millisecond), rate: rate, k: 14}, 0.5)
	case SoundShipExplode:
		out = beep.Mix(
			&decay{Streamer: NewTone(rate, WaveNoise, 0, 0, 900*time.Millisecond), rate: rate, k: 4},
			withVolume(&decay{Streamer: NewTone(rate, WaveSine, 120, -80, 900*time.Millisecond), rate: rate, k: 4}, 0.6),
		)
	case SoundSaucer:
		out = withVolume(beep.Seq(
			NewTone(rate, WaveSquare, 600, 0, 120*time.Millisecond),
			NewTone(rate, WaveSquare, 750, 0, 120*time.Millisecond),
			NewTone(rate, WaveSquare, 600, 0, 120*time.Millisecond),
		), 0.3)
	case SoundHyperspace:
		out = withVolume(NewTone(rate, WaveSine, 200, 4000, 250*time.Millisecond), 0.5)
	case SoundExtraLife:
		out = withVolume(beep.Seq(
			&decay{Streamer: NewTone(rate, WaveSine, 987.77, 0, 120*time.Millisecond), rate: rate, k: 6},
			&decay{Streamer: NewTone(rate, WaveSine, 1318.51, 0, 250*time.Millisecond), rate: rate, k: 6},
		), 0.6)
	case SoundLevelUp:
		out = withVolume(beep.Seq(
			NewTone(rate, WaveSine, 523.25, 0, 90*time.Millisecond),
			NewTone(rate, WaveSine, 659.25, 0, 90*time.Millisecond),
			NewTone(rate, WaveSine, 783.99, 0, 160*time.Millisecond),
		), 0.5)
	default:
		return nil
	}
	return withVolume(out, master*0.4)
}
