package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/entrhq/wayfarer/pkg/config"
	"github.com/entrhq/wayfarer/pkg/journal"
	"github.com/entrhq/wayfarer/pkg/logging"
	"github.com/entrhq/wayfarer/pkg/narrative"
	"github.com/entrhq/wayfarer/pkg/transcribe"
)

// inputMode selects which surface currently owns the keyboard.
type inputMode int

const (
	modeTimeline inputMode = iota
	modeNote
	modePhotoPicker
	modeDocument
)

// model holds all TUI state. Core capture state lives behind the journal
// controller; everything here is presentation.
type model struct {
	// Bubble Tea components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// Core integration
	ctrl *journal.Controller
	cfg  *config.Config
	log  *logging.Logger

	// Photo picker state
	photoMatcher *config.PhotoMatcher
	photoFiles   []string
	photoCursor  int

	// Timeline selection
	selected int

	// Narrative state. doc is the currently displayed document, nil for
	// the explicit "none" state. Concurrent synthesis requests are
	// allowed; whichever resolves last wins the display.
	doc              *narrative.Document
	pendingSyntheses int

	// UI state
	mode   inputMode
	toast  *toastNotification
	width  int
	height int
	ready  bool

	shouldQuit bool
}

// toastNotification is a transient status message.
type toastNotification struct {
	message   string
	isError   bool
	showUntil time.Time
}

// segmentMsg delivers one recognizer segment to the event loop.
type segmentMsg struct {
	seg transcribe.Segment
	ch  <-chan transcribe.Segment
}

// voiceStreamClosedMsg signals the recognizer stream has ended on its own.
// The session stays active until the user stops it.
type voiceStreamClosedMsg struct{}

// documentReadyMsg delivers a resolved narrative document.
type documentReadyMsg struct {
	doc *narrative.Document
}

// captureErrMsg reports a capture-layer failure (device/permission class).
// Non-fatal: it is shown as a toast and the session continues.
type captureErrMsg struct {
	err error
}

// tickMsg drives periodic re-render so simulated movement shows up in the
// status bar without user input.
type tickMsg struct{}

// toastClearMsg expires the current toast.
type toastClearMsg struct{}
