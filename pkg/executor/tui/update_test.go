package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/wayfarer/pkg/config"
	"github.com/entrhq/wayfarer/pkg/journal"
	"github.com/entrhq/wayfarer/pkg/journey"
	"github.com/entrhq/wayfarer/pkg/location"
	"github.com/entrhq/wayfarer/pkg/narrative"
	"github.com/entrhq/wayfarer/pkg/transcribe"
)

func newTestModel(t *testing.T) *model {
	t.Helper()

	cfg := config.Default()
	cfg.SynthesisDelay = 0
	matcher, err := config.NewPhotoMatcher(cfg.Photos.Patterns)
	require.NoError(t, err)

	provider := location.Static{Waypoint: journey.Waypoint{Name: "Tokyo", Lat: 35.6762, Lng: 139.6503}}
	recognizer := transcribe.NewScriptedRecognizer([]string{"hello world"}, time.Millisecond)

	m := initialModel()
	m.ctrl = journal.NewController(provider, recognizer, nil)
	m.cfg = cfg
	m.photoMatcher = matcher
	m.width = 80
	m.height = 30
	m.ready = true
	return &m
}

func TestSegmentsApplyInReceiptOrder(t *testing.T) {
	m := newTestModel(t)
	_, err := m.ctrl.StartVoice(context.Background())
	require.NoError(t, err)

	segments := []transcribe.Segment{
		{Text: "The ", IsFinal: true},
		{Text: "garden ", IsFinal: true},
		{Text: "gate", IsFinal: true},
	}
	for _, seg := range segments {
		_, cmd := m.Update(segmentMsg{seg: seg})
		assert.NotNil(t, cmd, "segment handling must re-arm the listener")
	}

	e := m.ctrl.StopVoice()
	require.NotNil(t, e)
	assert.Equal(t, "The garden gate", e.Content)
}

func TestDocumentReadyLastWriterWins(t *testing.T) {
	m := newTestModel(t)
	m.pendingSyntheses = 2

	first, err := narrative.Synthesize([]journey.Entry{
		{ID: "1", Kind: journey.KindText, Content: "early", Waypoint: journey.Waypoint{Name: "Tokyo"}},
	}, time.Now())
	require.NoError(t, err)
	second, err := narrative.Synthesize([]journey.Entry{
		{ID: "2", Kind: journey.KindText, Content: "late", Waypoint: journey.Waypoint{Name: "Kyoto"}},
	}, time.Now())
	require.NoError(t, err)

	m.Update(documentReadyMsg{doc: first})
	m.Update(documentReadyMsg{doc: second})

	assert.Equal(t, second, m.doc, "the last resolved document determines the display")
	assert.Equal(t, 0, m.pendingSyntheses)
	assert.Equal(t, modeDocument, m.mode)
}

func TestSynthesisRejectedOnEmptyTimeline(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	assert.NotNil(t, cmd, "rejection still schedules the toast expiry")
	assert.Equal(t, 0, m.pendingSyntheses)
	require.NotNil(t, m.toast)
	assert.True(t, m.toast.isError)
	assert.Nil(t, m.doc)
}

func TestCaptureErrAbortsVoice(t *testing.T) {
	m := newTestModel(t)
	_, err := m.ctrl.StartVoice(context.Background())
	require.NoError(t, err)

	m.Update(captureErrMsg{err: context.DeadlineExceeded})

	assert.False(t, m.ctrl.Recording())
	assert.Empty(t, m.ctrl.Entries())
	require.NotNil(t, m.toast)
	assert.True(t, m.toast.isError)
}

func TestDeleteSelectedEntry(t *testing.T) {
	m := newTestModel(t)
	keep := m.ctrl.SubmitText("keep")
	m.ctrl.SubmitText("remove") // newest, selected by default

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

	entries := m.ctrl.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, keep.ID, entries[0].ID)
}

func TestNoteFlowCreatesTextEntry(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.Equal(t, modeNote, m.mode)

	m.textarea.SetValue("smells like rain here")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeTimeline, m.mode)
	entries := m.ctrl.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, journey.KindText, entries[0].Kind)
	assert.Equal(t, "smells like rain here", entries[0].Content)
	assert.Equal(t, "Tokyo", entries[0].Waypoint.Name)
}
