package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/wayfarer/pkg/journey"
	"github.com/entrhq/wayfarer/pkg/narrative"
	"github.com/entrhq/wayfarer/pkg/transcribe"
)

// Update is the single mutation point for all state: every event (key
// press, recognizer segment, resolved document) arrives here one at a
// time, so the core never needs locks.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.shouldQuit {
		return m, tea.Quit
	}

	var spinnerCmd tea.Cmd
	m.spinner, spinnerCmd = m.spinner.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)

	case tickMsg:
		// Movement and toast expiry show up on the next render.
		if m.toast != nil && time.Now().After(m.toast.showUntil) {
			m.toast = nil
		}
		m.refreshTimeline()
		return m, tea.Batch(spinnerCmd, tickCmd())

	case segmentMsg:
		m.ctrl.VoiceSegment(msg.seg)
		return m, tea.Batch(spinnerCmd, listenForSegment(msg.ch))

	case voiceStreamClosedMsg:
		// The scripted utterance ran out; the session stays active until
		// the user stops it, matching a real recognizer going quiet.
		return m, spinnerCmd

	case documentReadyMsg:
		m.pendingSyntheses--
		m.doc = msg.doc
		m.mode = modeDocument
		m.logf("narrative ready: %d sections, route %v", len(msg.doc.Sections), msg.doc.Route)
		return m, spinnerCmd

	case captureErrMsg:
		m.ctrl.AbortVoice(msg.err)
		return m, tea.Batch(spinnerCmd, m.showToast(fmt.Sprintf("Capture failed: %v", msg.err), true))

	case toastClearMsg:
		if m.toast != nil && time.Now().After(m.toast.showUntil) {
			m.toast = nil
		}
		return m, spinnerCmd

	case tea.KeyMsg:
		return m.handleKeyPress(msg, spinnerCmd)
	}

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(spinnerCmd, vpCmd)
}

func (m *model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.viewport.Width = m.width - 4
	m.viewport.Height = m.calculateViewportHeight()
	m.textarea.SetWidth(m.width - 8)
	m.ready = true
	m.refreshTimeline()
	return m, nil
}

func (m *model) handleKeyPress(msg tea.KeyMsg, spinnerCmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeNote:
		return m.handleNoteKey(msg, spinnerCmd)
	case modePhotoPicker:
		return m.handlePickerKey(msg, spinnerCmd)
	case modeDocument:
		return m.handleDocumentKey(msg, spinnerCmd)
	}
	return m.handleTimelineKey(msg, spinnerCmd)
}

// handleTimelineKey handles keys in the main timeline view.
func (m *model) handleTimelineKey(msg tea.KeyMsg, spinnerCmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
			m.refreshTimeline()
		}
		return m, spinnerCmd

	case "down", "j":
		if m.selected < len(m.ctrl.Entries())-1 {
			m.selected++
			m.refreshTimeline()
		}
		return m, spinnerCmd

	case "d":
		return m, tea.Batch(spinnerCmd, m.deleteSelected())

	case "p":
		return m.openPhotoPicker(spinnerCmd)

	case "n":
		m.mode = modeNote
		m.textarea.Reset()
		m.textarea.Focus()
		return m, spinnerCmd

	case "v":
		return m.toggleVoice(spinnerCmd)

	case "g":
		return m.requestSynthesis(spinnerCmd)

	case "o":
		if m.doc != nil {
			m.mode = modeDocument
		} else {
			return m, tea.Batch(spinnerCmd, m.showToast("No narrative yet - press g to generate one", false))
		}
		return m, spinnerCmd
	}

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(spinnerCmd, vpCmd)
}

// handleNoteKey handles keys while the note textarea is focused.
func (m *model) handleNoteKey(msg tea.KeyMsg, spinnerCmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeTimeline
		m.textarea.Blur()
		m.textarea.Reset()
		return m, spinnerCmd

	case tea.KeyEnter:
		if msg.Alt {
			m.textarea.InsertString("\n")
			return m, spinnerCmd
		}
		text := strings.TrimSpace(m.textarea.Value())
		m.mode = modeTimeline
		m.textarea.Blur()
		m.textarea.Reset()
		e := m.ctrl.SubmitText(text)
		m.selected = 0
		m.refreshTimeline()
		return m, tea.Batch(spinnerCmd, m.showToast(fmt.Sprintf("Note saved at %s", e.Waypoint.Name), false))
	}

	var taCmd tea.Cmd
	m.textarea, taCmd = m.textarea.Update(msg)
	return m, tea.Batch(spinnerCmd, taCmd)
}

// handlePickerKey handles keys while the photo picker overlay is open.
func (m *model) handlePickerKey(msg tea.KeyMsg, spinnerCmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = modeTimeline
		return m, spinnerCmd

	case "up", "k":
		if m.photoCursor > 0 {
			m.photoCursor--
		}
		return m, spinnerCmd

	case "down", "j":
		if m.photoCursor < len(m.photoFiles)-1 {
			m.photoCursor++
		}
		return m, spinnerCmd

	case "enter":
		if len(m.photoFiles) == 0 {
			m.mode = modeTimeline
			return m, spinnerCmd
		}
		ref := m.photoFiles[m.photoCursor]
		m.mode = modeTimeline
		e := m.ctrl.CapturePhoto(ref)
		m.selected = 0
		m.refreshTimeline()
		return m, tea.Batch(spinnerCmd, m.showToast(fmt.Sprintf("Photo saved at %s", e.Waypoint.Name), false))
	}
	return m, spinnerCmd
}

// handleDocumentKey handles keys while the narrative document is shown.
func (m *model) handleDocumentKey(msg tea.KeyMsg, spinnerCmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = modeTimeline
		m.refreshTimeline()
		return m, spinnerCmd

	case "x":
		// Dismiss the document entirely (back to the "none" state).
		m.doc = nil
		m.mode = modeTimeline
		m.refreshTimeline()
		return m, tea.Batch(spinnerCmd, m.showToast("Narrative dismissed", false))

	case "c":
		if m.doc != nil {
			if err := clipboard.WriteAll(m.doc.RouteLink); err != nil {
				return m, tea.Batch(spinnerCmd, m.showToast(fmt.Sprintf("Copy failed: %v", err), true))
			}
			return m, tea.Batch(spinnerCmd, m.showToast("Route link copied", false))
		}
		return m, spinnerCmd

	case "g":
		return m.requestSynthesis(spinnerCmd)
	}

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(spinnerCmd, vpCmd)
}

// toggleVoice starts a voice capture, or stops the running one and commits
// the transcript as an entry when it yielded usable text.
func (m *model) toggleVoice(spinnerCmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.ctrl.Recording() {
		e := m.ctrl.StopVoice()
		m.refreshTimeline()
		if e == nil {
			// Silence-only capture: discarded without an error per the
			// empty-transcript rule.
			return m, tea.Batch(spinnerCmd, m.showToast("Nothing heard - note discarded", false))
		}
		m.selected = 0
		m.refreshTimeline()
		return m, tea.Batch(spinnerCmd, m.showToast(fmt.Sprintf("Voice note saved at %s", e.Waypoint.Name), false))
	}

	ch, err := m.ctrl.StartVoice(context.Background())
	if err != nil {
		if err == transcribe.ErrAlreadyActive {
			return m, spinnerCmd
		}
		return m, tea.Batch(spinnerCmd, m.showToast(fmt.Sprintf("Could not start recording: %v", err), true))
	}
	return m, tea.Batch(spinnerCmd, listenForSegment(ch))
}

// requestSynthesis validates the precondition synchronously, then runs the
// synthesis asynchronously over the request-time snapshot. Multiple
// requests may be in flight; the last to resolve wins the display.
func (m *model) requestSynthesis(spinnerCmd tea.Cmd) (tea.Model, tea.Cmd) {
	snapshot, err := m.ctrl.SnapshotForSynthesis()
	if err != nil {
		return m, tea.Batch(spinnerCmd, m.showToast("Capture a memory before generating a narrative", true))
	}
	m.pendingSyntheses++
	m.logf("synthesis requested over %d entries", len(snapshot))
	return m, tea.Batch(spinnerCmd, synthesizeCmd(snapshot, m.cfg.SynthesisDelay.Std()))
}

// deleteSelected removes the entry under the cursor.
func (m *model) deleteSelected() tea.Cmd {
	entries := m.ctrl.Entries()
	if len(entries) == 0 || m.selected >= len(entries) {
		return nil
	}
	e := entries[m.selected]
	m.ctrl.DeleteEntry(e.ID)
	if m.selected >= len(entries)-1 && m.selected > 0 {
		m.selected--
	}
	m.refreshTimeline()
	return m.showToast(fmt.Sprintf("Deleted %s memory from %s", e.Kind, e.Waypoint.Name), false)
}

// openPhotoPicker scans the photo directory and shows the picker overlay.
func (m *model) openPhotoPicker(spinnerCmd tea.Cmd) (tea.Model, tea.Cmd) {
	files, err := m.photoMatcher.ListPhotos(m.cfg.Photos.Dir)
	if err != nil {
		return m, tea.Batch(spinnerCmd, m.showToast(fmt.Sprintf("Could not read photos: %v", err), true))
	}
	m.photoFiles = files
	m.photoCursor = 0
	m.mode = modePhotoPicker
	return m, spinnerCmd
}

// showToast displays a transient status line and schedules its expiry.
func (m *model) showToast(message string, isError bool) tea.Cmd {
	m.toast = &toastNotification{
		message:   message,
		isError:   isError,
		showUntil: time.Now().Add(4 * time.Second),
	}
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return toastClearMsg{}
	})
}

// listenForSegment waits for the next recognizer segment and re-arms
// itself, delivering segments to the event loop one at a time in receipt
// order.
func listenForSegment(ch <-chan transcribe.Segment) tea.Cmd {
	return func() tea.Msg {
		seg, ok := <-ch
		if !ok {
			return voiceStreamClosedMsg{}
		}
		return segmentMsg{seg: seg, ch: ch}
	}
}

// synthesizeCmd runs narrative synthesis off the event loop after the
// configured latency. The snapshot was taken at request time, so timeline
// mutations made in the meantime do not affect the result.
func synthesizeCmd(snapshot []journey.Entry, delay time.Duration) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(delay)
		doc, err := narrative.Synthesize(snapshot, time.Now())
		if err != nil {
			// The snapshot was validated non-empty at request time, so
			// this is an invariant violation, not a user-facing error.
			panic(fmt.Sprintf("synthesis over validated snapshot failed: %v", err))
		}
		return documentReadyMsg{doc: doc}
	}
}

func (m *model) logf(format string, v ...interface{}) {
	if m.log != nil {
		m.log.Debugf(format, v...)
	}
}
