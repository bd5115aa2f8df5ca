// Package narrative turns a timeline snapshot into a travelogue document.
// Synthesis is a pure, deterministic transform: no generative model, no
// I/O, no mutation of its input.
package narrative

import (
	"errors"
	"time"

	"github.com/entrhq/wayfarer/pkg/journey"
)

// ErrEmptyTimeline is returned when synthesis is requested over an empty
// snapshot. Callers are expected to check the timeline before asking for a
// document, so hitting this error indicates a missing precondition check
// at the call site.
var ErrEmptyTimeline = errors.New("cannot synthesize narrative from an empty timeline")

// Section is one narrative block derived from a single memory entry.
// Sections are per-entry, not per-waypoint: revisiting a place produces a
// new section every time.
type Section struct {
	WaypointName string
	MapLink      string
	Body         string
	Kind         journey.EntryKind
}

// Document is the synthesized travelogue. It is derived state: regenerated
// wholesale from a timeline snapshot and never mutated in place.
type Document struct {
	Title       string
	GeneratedAt time.Time

	// Route lists the distinct waypoint names in first-visit order
	// (oldest first): the chronological route, as opposed to the
	// newest-first storage order the sections follow.
	Route     []string
	RouteLink string

	Sections []Section
}
