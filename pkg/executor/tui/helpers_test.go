package tui

import (
	"testing"

	"github.com/entrhq/wayfarer/pkg/journey"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"short string untouched", "hello", 10, "hello"},
		{"exact length untouched", "hello", 5, "hello"},
		{"long string shortened", "hello world", 8, "hello w…"},
		{"tiny max passthrough", "hello", 1, "hello"},
		{"multibyte runes", "さよなら東京", 4, "さよな…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.max); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}

func TestEntrySummary(t *testing.T) {
	photo := journey.Entry{Kind: journey.KindPhoto, Content: "dune.jpg"}
	if got := entrySummary(photo); got != "photo: dune.jpg" {
		t.Errorf("photo summary = %q", got)
	}

	voice := journey.Entry{Kind: journey.KindVoice, Content: "wind everywhere"}
	if got := entrySummary(voice); got != "wind everywhere" {
		t.Errorf("voice summary = %q", got)
	}
}

func TestEntryIconCoversAllKinds(t *testing.T) {
	for _, kind := range []journey.EntryKind{journey.KindPhoto, journey.KindVoice, journey.KindText} {
		if entryIcon(kind) == "?" {
			t.Errorf("no icon for kind %v", kind)
		}
	}
}
