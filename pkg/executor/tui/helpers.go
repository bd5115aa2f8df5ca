package tui

import (
	"fmt"
	"strings"

	"github.com/entrhq/wayfarer/pkg/journey"
)

// refreshTimeline re-renders the timeline snapshot into the viewport.
func (m *model) refreshTimeline() {
	if !m.ready {
		return
	}
	m.viewport.Height = m.calculateViewportHeight()
	m.viewport.SetContent(m.renderTimeline())
}

// calculateViewportHeight computes the timeline viewport height from the
// surrounding chrome.
func (m *model) calculateViewportHeight() int {
	headerHeight := 10 // banner (7) + tips (1) + status bar (1) + blank line (1)
	bottomHeight := 1
	if m.ctrl != nil && m.ctrl.Recording() {
		bottomHeight++
	}
	if m.mode == modeNote {
		bottomHeight += m.textarea.Height() + 2
	}

	h := m.height - headerHeight - bottomHeight
	if h < 5 {
		h = 5
	}
	return h
}

// renderTimeline formats the newest-first entry list.
func (m *model) renderTimeline() string {
	entries := m.ctrl.Entries()
	if len(entries) == 0 {
		return tipsStyle.Render("\n  No memories yet. Capture a photo (p), voice note (v), or text note (n).")
	}

	var b strings.Builder
	for i, e := range entries {
		cursor := "  "
		if i == m.selected {
			cursor = selectedStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n",
			cursor,
			entryTimeStyle.Render(e.CapturedAt.Format("15:04")),
			waypointStyle.Render(e.Waypoint.Name),
			entryIcon(e.Kind),
		))
		b.WriteString("      " + entryBodyStyle.Render(truncate(entrySummary(e), m.width-10)) + "\n\n")
	}
	return b.String()
}

// entryIcon maps an entry kind to its timeline marker.
func entryIcon(kind journey.EntryKind) string {
	switch kind {
	case journey.KindPhoto:
		return "📷"
	case journey.KindVoice:
		return "🎙"
	case journey.KindText:
		return "✎"
	default:
		return "?"
	}
}

// entrySummary returns the one-line timeline rendering of an entry.
func entrySummary(e journey.Entry) string {
	if e.Kind == journey.KindPhoto {
		return fmt.Sprintf("photo: %s", e.Content)
	}
	return e.Content
}

// truncate shortens s to at most max runes, with an ellipsis.
func truncate(s string, max int) string {
	if max <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
