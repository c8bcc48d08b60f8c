// Package anim implements the play-button state machine that drives a
// year slider while playing. The scheduling itself (a single-shot
// delayed re-invocation) belongs to the host UI loop; this package
// only decides what each tick does.
package anim

import "time"

// Default tick delays for the two loops: the pyramid-year loop runs
// fast, the median-year loop slow.
const (
	PyramidTickDelay = 50 * time.Millisecond
	MedianTickDelay  = 250 * time.Millisecond
)

// Player is the Idle/Playing state machine for one slider. The zero
// value is an idle player; Delay and Bound must be set before use.
// Player is a value type so it composes into a bubbletea model.
type Player struct {
	Delay   time.Duration
	Bound   int
	playing bool
}

// New returns an idle player with the given tick delay and upper bound.
func New(delay time.Duration, bound int) Player {
	return Player{Delay: delay, Bound: bound}
}

// Playing reports whether the player is in the Playing state.
func (p Player) Playing() bool { return p.playing }

// Toggle flips between Idle and Playing.
func (p Player) Toggle() Player {
	p.playing = !p.playing
	return p
}

// Stop forces the Idle state. Used by the reset action and by stale
// ticks that arrive after a pause.
func (p Player) Stop() Player {
	p.playing = false
	return p
}

// Advance applies one tick to the position. While playing and below
// the bound the position advances by one; reaching the bound (or
// starting at it) transitions to Idle. A tick on an idle player is a
// no-op: ticks check the flag on arrival, so no explicit cancellation
// is needed when the owner flips to Idle.
func (p Player) Advance(pos int) (int, Player) {
	if !p.playing {
		return pos, p
	}
	if pos < p.Bound {
		pos++
	}
	if pos >= p.Bound {
		p.playing = false
	}
	return pos, p
}

// Label returns the play-button label for the current state.
func (p Player) Label() string {
	if p.playing {
		return "Pause"
	}
	return "Play"
}
