package journey

import "time"

// Timeline is the ordered, append-only collection of memory entries for a
// session, newest first. Insertion always lands at position 0; the relative
// order of existing entries only ever changes through deletion.
//
// The timeline is session-scoped and in-memory only. All mutation happens
// from the single presentation event loop, so no locking is needed; reads
// return defensive copies so a snapshot stays stable while later
// insertions and deletions occur.
type Timeline struct {
	entries []Entry
	now     func() time.Time
}

// NewTimeline creates an empty timeline using the wall clock.
func NewTimeline() *Timeline {
	return &Timeline{now: time.Now}
}

// NewTimelineWithClock creates an empty timeline with an injected clock.
func NewTimelineWithClock(now func() time.Time) *Timeline {
	if now == nil {
		now = time.Now
	}
	return &Timeline{now: now}
}

// Insert creates a new entry with a fresh id and the current capture time,
// snapshots the waypoint by value, and prepends it to the timeline. Content
// is stored as given; empty text content is permitted (empty voice
// transcripts are filtered upstream by the transcription session).
func (t *Timeline) Insert(kind EntryKind, content string, wp Waypoint) *Entry {
	e := Entry{
		ID:         newEntryID(),
		Kind:       kind,
		Content:    content,
		CapturedAt: t.now(),
		Waypoint:   wp,
	}
	t.entries = append([]Entry{e}, t.entries...)
	return &e
}

// Delete removes the entry with the given id. Deleting an id that is not
// present is a no-op: deletion is idempotent, not an error.
func (t *Timeline) Delete(id string) {
	for i, e := range t.entries {
		if e.ID == id {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return
		}
	}
}

// Entries returns a snapshot of the timeline, newest first. The returned
// slice is a copy and is unaffected by subsequent mutation.
func (t *Timeline) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries currently on the timeline.
func (t *Timeline) Len() int {
	return len(t.entries)
}
