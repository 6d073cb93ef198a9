package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

// EventKind identifies something that happened during a frame.
type EventKind int

const (
	EventBulletFired EventKind = iota
	EventRockDestroyed
	EventSaucerSpawned
	EventSaucerDestroyed
	EventSaucerDeparted
	EventShipDestroyed
	EventShipRespawned
	EventHyperspaceEntered
	EventHyperspaceExited
	EventExtraLife
	EventLevelUp
	EventGameStarted
	EventGameOver
	EventInvariantCorrected
)

var eventNames = [...]string{
	EventBulletFired:        "bullet_fired",
	EventRockDestroyed:      "rock_destroyed",
	EventSaucerSpawned:      "saucer_spawned",
	EventSaucerDestroyed:    "saucer_destroyed",
	EventSaucerDeparted:     "saucer_departed",
	EventShipDestroyed:      "ship_destroyed",
	EventShipRespawned:      "ship_respawned",
	EventHyperspaceEntered:  "hyperspace_entered",
	EventHyperspaceExited:   "hyperspace_exited",
	EventExtraLife:          "extra_life",
	EventLevelUp:            "level_up",
	EventGameStarted:        "game_started",
	EventGameOver:           "game_over",
	EventInvariantCorrected: "invariant_corrected",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Cause says what destroyed a rock, saucer or ship.
type Cause int

const (
	CauseNone Cause = iota
	CauseShipBullet
	CauseSaucerBullet
	CauseShip
	CauseSaucer
	CauseRock
)

var causeNames = [...]string{
	CauseNone:         "none",
	CauseShipBullet:   "ship_bullet",
	CauseSaucerBullet: "saucer_bullet",
	CauseShip:         "ship",
	CauseSaucer:       "saucer",
	CauseRock:         "rock",
}

func (c Cause) String() string {
	if c < 0 || int(c) >= len(causeNames) {
		return "unknown"
	}
	return causeNames[c]
}

// Event is an immutable record of one occurrence in a frame.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind       EventKind
	Frame      uint64
	Pos        core.Vec2
	Owner      Kind // bullet owner for EventBulletFired
	RockSize   RockSize
	SaucerSize SaucerSize
	Points     int
	Cause      Cause
	Detail     string
}

// CountEvents returns how many events of kind k are in evs.
func CountEvents(evs []Event, k EventKind) int {
	n := 0
	for _, e := range evs {
		if e.Kind == k {
			n++
		}
	}
	return n
}
