// Package journal owns all mutable capture state for a session. The
// Controller is the single mutation surface over the timeline, the
// transcription session, and the location provider; the presentation layer
// holds a reference to it and calls in from its event handlers, which run
// one at a time on a single logical thread.
package journal

import (
	"context"
	"errors"

	"github.com/entrhq/wayfarer/pkg/journey"
	"github.com/entrhq/wayfarer/pkg/location"
	"github.com/entrhq/wayfarer/pkg/logging"
	"github.com/entrhq/wayfarer/pkg/transcribe"
)

// ErrNoEntries is returned when synthesis is requested on an empty
// timeline. The request is rejected synchronously; no document is produced.
var ErrNoEntries = errors.New("no memories captured yet")

// Controller is the state container for one capture session.
type Controller struct {
	timeline   *journey.Timeline
	session    *transcribe.Session
	provider   location.Provider
	recognizer transcribe.Recognizer
	log        *logging.Logger
}

// NewController wires a controller over the given collaborators. The
// logger may be nil, in which case the controller stays silent.
func NewController(provider location.Provider, recognizer transcribe.Recognizer, log *logging.Logger) *Controller {
	return &Controller{
		timeline:   journey.NewTimeline(),
		session:    transcribe.NewSession(),
		provider:   provider,
		recognizer: recognizer,
		log:        log,
	}
}

// CapturePhoto records a photo entry. The ref is an opaque blob reference
// (a file path in the TUI); the current waypoint is consulted exactly once
// and snapshotted onto the entry.
func (c *Controller) CapturePhoto(ref string) *journey.Entry {
	e := c.timeline.Insert(journey.KindPhoto, ref, c.provider.Current())
	c.logf("captured photo %s at %s", e.ID, e.Waypoint.Name)
	return e
}

// SubmitText records a typed note at the current waypoint. Empty text is
// permitted; only voice captures filter silence upstream.
func (c *Controller) SubmitText(text string) *journey.Entry {
	e := c.timeline.Insert(journey.KindText, text, c.provider.Current())
	c.logf("captured text note %s at %s", e.ID, e.Waypoint.Name)
	return e
}

// StartVoice activates the transcription session and opens the recognizer
// stream, returning the channel segments will arrive on. The caller is
// responsible for delivering those segments back through VoiceSegment in
// receipt order. Returns transcribe.ErrAlreadyActive when a voice capture
// is already running; recognizer failures roll the session back to
// inactive and surface as capture errors.
func (c *Controller) StartVoice(ctx context.Context) (<-chan transcribe.Segment, error) {
	if err := c.session.Start(); err != nil {
		return nil, err
	}
	segments, err := c.recognizer.Start(ctx)
	if err != nil {
		c.session.Abort()
		c.logf("voice capture failed to start: %v", err)
		return nil, err
	}
	c.logf("voice capture started")
	return segments, nil
}

// VoiceSegment applies one recognizer segment to the active session.
func (c *Controller) VoiceSegment(seg transcribe.Segment) {
	c.session.Apply(seg)
}

// StopVoice ends the voice capture. When the session yields usable text, a
// voice entry is recorded at the current waypoint and returned; a silence
// or noise-only capture is discarded and StopVoice returns nil.
func (c *Controller) StopVoice() *journey.Entry {
	c.recognizer.Stop()
	text := c.session.Stop()
	if text == "" {
		c.logf("voice capture discarded: empty transcript")
		return nil
	}
	e := c.timeline.Insert(journey.KindVoice, text, c.provider.Current())
	c.logf("captured voice note %s at %s", e.ID, e.Waypoint.Name)
	return e
}

// AbortVoice force-stops a voice capture after a recognizer error. No
// entry is produced regardless of what had accumulated.
func (c *Controller) AbortVoice(err error) {
	c.recognizer.Stop()
	c.session.Abort()
	c.logf("voice capture aborted: %v", err)
}

// DeleteEntry removes the entry with the given id; unknown ids are a
// no-op.
func (c *Controller) DeleteEntry(id string) {
	c.timeline.Delete(id)
	c.logf("deleted entry %s", id)
}

// CurrentWaypoint reports where the location provider currently places
// the user. Display only: capture actions take their own snapshot.
func (c *Controller) CurrentWaypoint() journey.Waypoint {
	return c.provider.Current()
}

// Entries returns a newest-first snapshot of the timeline.
func (c *Controller) Entries() []journey.Entry {
	return c.timeline.Entries()
}

// Transcription returns the live transcription state for caption display.
func (c *Controller) Transcription() transcribe.State {
	return c.session.State()
}

// Recording reports whether a voice capture is in progress.
func (c *Controller) Recording() bool {
	return c.session.Active()
}

// SnapshotForSynthesis validates and returns the timeline snapshot a
// synthesis request should operate on. The snapshot is taken at request
// time, so timeline mutations made while synthesis is in flight do not
// leak into the resulting document. Returns ErrNoEntries on an empty
// timeline.
func (c *Controller) SnapshotForSynthesis() ([]journey.Entry, error) {
	if c.timeline.Len() == 0 {
		return nil, ErrNoEntries
	}
	return c.timeline.Entries(), nil
}

func (c *Controller) logf(format string, v ...interface{}) {
	if c.log != nil {
		c.log.Infof(format, v...)
	}
}
