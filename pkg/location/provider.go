// Package location supplies the current waypoint to the capture pipeline.
// Providers are pull-based: the core asks for the current waypoint exactly
// once per capture action and snapshots the answer onto the new entry. A
// real implementation would sit on a GPS or geocoding stack; the scripted
// provider simulates movement through a configured list of places.
package location

import (
	"time"

	"github.com/entrhq/wayfarer/pkg/journey"
)

// Provider reports the waypoint the user is currently at.
type Provider interface {
	Current() journey.Waypoint
}

// Static is a Provider pinned to a single waypoint.
type Static struct {
	Waypoint journey.Waypoint
}

// Current returns the fixed waypoint.
func (s Static) Current() journey.Waypoint {
	return s.Waypoint
}

// Scripted is a Provider that walks through a list of places, advancing to
// the next one every interval of wall-clock time. It models a traveler
// moving between stops without any real positioning hardware.
type Scripted struct {
	places   []journey.Waypoint
	interval time.Duration
	started  time.Time
	now      func() time.Time
}

// NewScripted creates a scripted provider over the given places. The
// provider reports places[0] for the first interval, places[1] for the
// next, and wraps around at the end of the list.
func NewScripted(places []journey.Waypoint, interval time.Duration) *Scripted {
	return newScripted(places, interval, time.Now)
}

// NewScriptedWithClock is NewScripted with an injected clock.
func NewScriptedWithClock(places []journey.Waypoint, interval time.Duration, now func() time.Time) *Scripted {
	return newScripted(places, interval, now)
}

func newScripted(places []journey.Waypoint, interval time.Duration, now func() time.Time) *Scripted {
	if interval <= 0 {
		interval = time.Minute
	}
	if now == nil {
		now = time.Now
	}
	return &Scripted{
		places:   places,
		interval: interval,
		started:  now(),
		now:      now,
	}
}

// Current returns the place the simulated traveler has reached by now.
func (s *Scripted) Current() journey.Waypoint {
	if len(s.places) == 0 {
		return journey.Waypoint{Name: "Unknown"}
	}
	elapsed := s.now().Sub(s.started)
	step := int(elapsed/s.interval) % len(s.places)
	if step < 0 {
		step = 0
	}
	return s.places[step]
}
