package core

import "time"

// Fallbacks for a RuntimeConfig that leaves fields unset.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// RuntimeConfig is what a front-end tells a game about its surroundings:
// the terminal size, the tick rate and the seed.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // ticks per second
	Seed     int64 // 0 lets the front-end pick a time-based seed
}

// Normalized fills unset size and rate fields with the defaults.
// The seed is left alone.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = DefaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = DefaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// Resized returns a copy with a new screen size.
func (c RuntimeConfig) Resized(w, h int) RuntimeConfig {
	c.ScreenW, c.ScreenH = w, h
	return c
}

// TickInterval is the wall-clock time between two ticks.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Normalized().TickRate)
}

// GameState is the part of a game's state the front-ends act on.
type GameState struct {
	Score    int
	Lives    int
	Level    int // current wave
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	// Events are short labels for what happened this tick, such as
	// "rock_destroyed".
	Events []string
}

// Happened reports whether label is among the tick's events.
func (r StepResult) Happened(label string) bool {
	for _, e := range r.Events {
		if e == label {
			return true
		}
	}
	return false
}
