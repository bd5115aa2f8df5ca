package transcribe

import (
	"context"
	"strings"
	"sync"
	"time"
)

// ScriptedRecognizer is a Recognizer that replays a fixed script instead of
// listening to a microphone. Each Start streams the next utterance from the
// script: one growing interim hypothesis per word, then a final segment per
// word carrying the recognizer-supplied trailing space. It doubles as the
// demo-mode speech service and as a test double.
type ScriptedRecognizer struct {
	utterances []string
	interval   time.Duration

	mu   sync.Mutex
	next int
	stop chan struct{}
}

// NewScriptedRecognizer creates a recognizer replaying the given utterances
// round-robin, emitting one segment per interval.
func NewScriptedRecognizer(utterances []string, interval time.Duration) *ScriptedRecognizer {
	if interval <= 0 {
		interval = 300 * time.Millisecond
	}
	return &ScriptedRecognizer{utterances: utterances, interval: interval}
}

// Start begins streaming the next scripted utterance. The returned channel
// is closed when the utterance is exhausted, the context is canceled, or
// Stop is called.
func (r *ScriptedRecognizer) Start(ctx context.Context) (<-chan Segment, error) {
	r.mu.Lock()
	utterance := ""
	if len(r.utterances) > 0 {
		utterance = r.utterances[r.next%len(r.utterances)]
		r.next++
	}
	stop := make(chan struct{})
	r.stop = stop
	r.mu.Unlock()

	out := make(chan Segment)
	go r.stream(ctx, utterance, out, stop)
	return out, nil
}

// Stop ends the current stream, if any. Segments already queued may still
// be delivered; the session drops anything arriving after it deactivates.
func (r *ScriptedRecognizer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stop != nil {
		close(r.stop)
		r.stop = nil
	}
}

func (r *ScriptedRecognizer) stream(ctx context.Context, utterance string, out chan<- Segment, stop <-chan struct{}) {
	defer close(out)

	words := strings.Fields(utterance)
	emit := func(seg Segment) bool {
		select {
		case <-ctx.Done():
			return false
		case <-stop:
			return false
		case <-time.After(r.interval):
		}
		select {
		case out <- seg:
			return true
		case <-ctx.Done():
			return false
		case <-stop:
			return false
		}
	}

	// Growing hypothesis first, the way streaming recognizers report
	// partial results, then the committed finals.
	for i := range words {
		if !emit(Segment{Text: strings.Join(words[:i+1], " ")}) {
			return
		}
	}
	for i, w := range words {
		text := w + " "
		if i == len(words)-1 {
			text = w
		}
		if !emit(Segment{Text: text, IsFinal: true}) {
			return
		}
	}
}
