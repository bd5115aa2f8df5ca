// Package transcribe converts a live speech stream into committed text.
// A Recognizer pushes segment messages onto a channel; the Session applies
// them one at a time in receipt order, accumulating finalized text and
// exposing the latest interim hypothesis for live captions.
package transcribe

import (
	"context"
	"errors"
	"strings"
)

// ErrAlreadyActive is returned by Start when a capture session is already
// running. Callers must stop or abort the current session first.
var ErrAlreadyActive = errors.New("transcription session already active")

// Segment is one message from the speech recognizer. A non-final segment
// carries the latest full hypothesis for the current utterance and replaces
// any previous interim text. A final segment is committed verbatim;
// segment boundaries (including trailing spaces) come from the recognizer,
// so finals are concatenated with no separator.
type Segment struct {
	Text    string
	IsFinal bool
}

// State is a point-in-time snapshot of the session for display.
type State struct {
	Active  bool
	Final   string
	Interim string
}

// Recognizer is the external speech capture service. Start begins a
// capture stream and returns the channel segments will arrive on; the
// channel is closed when the stream ends. Stop requests the stream to end.
type Recognizer interface {
	Start(ctx context.Context) (<-chan Segment, error)
	Stop()
}

// Session is the state machine that accumulates recognizer output.
// It is not safe for concurrent use; all calls must come from the single
// event-loop thread that owns the capture state.
type Session struct {
	active  bool
	final   strings.Builder
	interim string
}

// NewSession creates an inactive session.
func NewSession() *Session {
	return &Session{}
}

// Start activates the session, discarding any text left over from a
// previous run. Returns ErrAlreadyActive if a session is already running.
func (s *Session) Start() error {
	if s.active {
		return ErrAlreadyActive
	}
	s.final.Reset()
	s.interim = ""
	s.active = true
	return nil
}

// Apply folds one segment into the session in receipt order. Segments
// arriving while the session is inactive (late deliveries from a stream
// that was stopped or aborted) are dropped.
func (s *Session) Apply(seg Segment) {
	if !s.active {
		return
	}
	if seg.IsFinal {
		s.final.WriteString(seg.Text)
		s.interim = ""
		return
	}
	s.interim = seg.Text
}

// Stop deactivates the session and returns the accumulated final text
// trimmed of leading and trailing whitespace. An empty result means the
// capture was silence or noise only and the caller must not create a
// memory entry from it. Stopping an inactive session is a no-op that
// returns the empty string.
func (s *Session) Stop() string {
	if !s.active {
		return ""
	}
	s.active = false
	s.interim = ""
	return strings.TrimSpace(s.final.String())
}

// Abort force-deactivates the session without producing a result. Used on
// recognizer errors: the capture is treated as if it never happened.
func (s *Session) Abort() {
	s.active = false
	s.interim = ""
	s.final.Reset()
}

// Active reports whether a capture session is running.
func (s *Session) Active() bool {
	return s.active
}

// State returns a snapshot of the session for rendering live captions.
func (s *Session) State() State {
	return State{
		Active:  s.active,
		Final:   s.final.String(),
		Interim: s.interim,
	}
}
