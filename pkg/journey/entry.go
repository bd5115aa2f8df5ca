// Package journey holds the core data model for a capture session: the
// waypoints reported by the location provider, the memory entries captured
// at them, and the timeline those entries form.
package journey

import (
	"time"

	"github.com/google/uuid"
)

// Waypoint is a named geographic point snapshotted from the location
// provider at capture time. Waypoints carry no identity of their own;
// narrative deduplication compares them by name.
type Waypoint struct {
	Name string
	Lat  float64
	Lng  float64
}

// EntryKind identifies what a memory entry holds.
type EntryKind int

const (
	// KindPhoto marks an entry whose content is an opaque reference to a
	// captured image (a file path or blob key, never inspected).
	KindPhoto EntryKind = iota

	// KindVoice marks an entry whose content is transcribed speech.
	KindVoice

	// KindText marks an entry whose content is typed text.
	KindText
)

// String returns a short human-readable label for the kind.
func (k EntryKind) String() string {
	switch k {
	case KindPhoto:
		return "photo"
	case KindVoice:
		return "voice"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Entry is one captured unit of memory: a photo reference, a transcribed
// spoken note, or a typed note, bound to the waypoint that was current when
// it was captured. Entries are immutable after creation; the waypoint is a
// value snapshot and is never re-resolved.
type Entry struct {
	ID         string
	Kind       EntryKind
	Content    string
	CapturedAt time.Time
	Waypoint   Waypoint
}

// newEntryID allocates a fresh opaque entry identifier.
func newEntryID() string {
	return "mem_" + uuid.NewString()
}
