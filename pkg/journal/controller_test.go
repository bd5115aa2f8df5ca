package journal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/wayfarer/pkg/journey"
	"github.com/entrhq/wayfarer/pkg/transcribe"
)

// countingProvider records how often the controller consults the location
// provider and can be repointed between captures.
type countingProvider struct {
	wp    journey.Waypoint
	calls int
}

func (p *countingProvider) Current() journey.Waypoint {
	p.calls++
	return p.wp
}

// fakeRecognizer hands back a caller-controlled segment channel.
type fakeRecognizer struct {
	ch       chan transcribe.Segment
	startErr error
	started  int
	stopped  int
}

func (r *fakeRecognizer) Start(ctx context.Context) (<-chan transcribe.Segment, error) {
	if r.startErr != nil {
		return nil, r.startErr
	}
	r.started++
	r.ch = make(chan transcribe.Segment)
	return r.ch, nil
}

func (r *fakeRecognizer) Stop() {
	r.stopped++
}

func newTestController() (*Controller, *countingProvider, *fakeRecognizer) {
	provider := &countingProvider{wp: journey.Waypoint{Name: "Tokyo", Lat: 35.6762, Lng: 139.6503}}
	recognizer := &fakeRecognizer{}
	return NewController(provider, recognizer, nil), provider, recognizer
}

func TestCapturePhotoSnapshotsWaypointOnce(t *testing.T) {
	ctrl, provider, _ := newTestController()

	e := ctrl.CapturePhoto("shrine.jpg")
	require.NotNil(t, e)
	assert.Equal(t, journey.KindPhoto, e.Kind)
	assert.Equal(t, "shrine.jpg", e.Content)
	assert.Equal(t, "Tokyo", e.Waypoint.Name)
	assert.Equal(t, 1, provider.calls, "provider must be consulted exactly once per capture")

	// Moving afterwards does not touch the stored entry.
	provider.wp = journey.Waypoint{Name: "Kyoto"}
	assert.Equal(t, "Tokyo", ctrl.Entries()[0].Waypoint.Name)
}

func TestSubmitTextAllowsEmpty(t *testing.T) {
	ctrl, _, _ := newTestController()

	e := ctrl.SubmitText("")
	require.NotNil(t, e)
	assert.Equal(t, journey.KindText, e.Kind)
	assert.Len(t, ctrl.Entries(), 1)
}

func TestVoiceCaptureFlow(t *testing.T) {
	ctrl, provider, recognizer := newTestController()

	_, err := ctrl.StartVoice(context.Background())
	require.NoError(t, err)
	assert.True(t, ctrl.Recording())
	assert.Equal(t, 1, recognizer.started)
	assert.Equal(t, 0, provider.calls, "location is only consulted at voice-stop")

	ctrl.VoiceSegment(transcribe.Segment{Text: "Hello", IsFinal: false})
	ctrl.VoiceSegment(transcribe.Segment{Text: "Hello ", IsFinal: true})
	ctrl.VoiceSegment(transcribe.Segment{Text: "world", IsFinal: true})

	e := ctrl.StopVoice()
	require.NotNil(t, e)
	assert.Equal(t, journey.KindVoice, e.Kind)
	assert.Equal(t, "Hello world", e.Content)
	assert.Equal(t, "Tokyo", e.Waypoint.Name)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, 1, recognizer.stopped)
	assert.False(t, ctrl.Recording())
}

func TestEmptyTranscriptDiscarded(t *testing.T) {
	ctrl, _, _ := newTestController()

	_, err := ctrl.StartVoice(context.Background())
	require.NoError(t, err)
	ctrl.VoiceSegment(transcribe.Segment{Text: "only an interim hypothesis"})

	e := ctrl.StopVoice()
	assert.Nil(t, e, "silence-only capture must not create an entry")
	assert.Empty(t, ctrl.Entries())
}

func TestStartVoiceWhileRecording(t *testing.T) {
	ctrl, _, _ := newTestController()

	_, err := ctrl.StartVoice(context.Background())
	require.NoError(t, err)

	_, err = ctrl.StartVoice(context.Background())
	assert.ErrorIs(t, err, transcribe.ErrAlreadyActive)
	assert.True(t, ctrl.Recording(), "failed re-start must not kill the running session")
}

func TestStartVoiceRecognizerFailure(t *testing.T) {
	ctrl, _, recognizer := newTestController()
	recognizer.startErr = errors.New("microphone permission denied")

	_, err := ctrl.StartVoice(context.Background())
	require.Error(t, err)
	assert.False(t, ctrl.Recording(), "session must roll back when the recognizer fails to start")

	// Session is reusable after the failure.
	recognizer.startErr = nil
	_, err = ctrl.StartVoice(context.Background())
	assert.NoError(t, err)
}

func TestAbortVoice(t *testing.T) {
	ctrl, _, recognizer := newTestController()

	_, err := ctrl.StartVoice(context.Background())
	require.NoError(t, err)
	ctrl.VoiceSegment(transcribe.Segment{Text: "about to be lost ", IsFinal: true})

	ctrl.AbortVoice(errors.New("stream dropped"))

	assert.False(t, ctrl.Recording())
	assert.Equal(t, 1, recognizer.stopped)
	assert.Empty(t, ctrl.Entries(), "aborted capture must not produce an entry")
}

func TestDeleteEntryIdempotent(t *testing.T) {
	ctrl, _, _ := newTestController()
	e := ctrl.SubmitText("keep me honest")

	ctrl.DeleteEntry("mem_unknown")
	assert.Len(t, ctrl.Entries(), 1)

	ctrl.DeleteEntry(e.ID)
	ctrl.DeleteEntry(e.ID)
	assert.Empty(t, ctrl.Entries())
}

func TestSnapshotForSynthesis(t *testing.T) {
	ctrl, _, _ := newTestController()

	_, err := ctrl.SnapshotForSynthesis()
	assert.ErrorIs(t, err, ErrNoEntries)

	e := ctrl.SubmitText("first memory")
	snapshot, err := ctrl.SnapshotForSynthesis()
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	// The snapshot is immune to mutations made while synthesis is in
	// flight.
	ctrl.DeleteEntry(e.ID)
	ctrl.SubmitText("second memory")
	assert.Len(t, snapshot, 1)
	assert.Equal(t, "first memory", snapshot[0].Content)
}
