package narrative

import (
	"fmt"
	"time"

	"github.com/entrhq/wayfarer/pkg/journey"
)

// Synthesize builds a travelogue document from a timeline snapshot taken
// at request time. Entries arrive in storage order (newest first); the
// route is computed chronologically (oldest first) because a travelogue
// reads forward in time. The transform is total and order-preserving: one
// section per entry, no drops, no reordering beyond those two orderings.
//
// Synthesize never fails on a non-empty snapshot. The only error is
// ErrEmptyTimeline, which callers should rule out before requesting a
// document.
func Synthesize(entries []journey.Entry, now time.Time) (*Document, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTimeline
	}

	route := routeOf(entries)

	doc := &Document{
		Title:       fmt.Sprintf("A Journey Beginning in %s", route[0]),
		GeneratedAt: now,
		Route:       route,
		RouteLink:   RouteLink(route),
		Sections:    make([]Section, 0, len(entries)),
	}

	for _, e := range entries {
		doc.Sections = append(doc.Sections, Section{
			WaypointName: e.Waypoint.Name,
			MapLink:      MapQueryLink(e.Waypoint.Lat, e.Waypoint.Lng),
			Body:         sectionBody(e),
			Kind:         e.Kind,
		})
	}

	return doc, nil
}

// routeOf collects distinct waypoint names in first-visit order. Entries
// are stored newest first, so the walk runs backwards.
func routeOf(entries []journey.Entry) []string {
	seen := make(map[string]bool, len(entries))
	route := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		name := entries[i].Waypoint.Name
		if seen[name] {
			continue
		}
		seen[name] = true
		route = append(route, name)
	}
	return route
}

// sectionBody formats one entry's narrative text. Photos get a fixed
// placeholder (the image is never inspected); spoken and typed notes are
// quoted verbatim, typed notes reading the same as spoken ones.
func sectionBody(e journey.Entry) string {
	switch e.Kind {
	case journey.KindPhoto:
		return fmt.Sprintf("A moment captured in a photograph at %s.", e.Waypoint.Name)
	case journey.KindVoice, journey.KindText:
		return fmt.Sprintf("%q", e.Content)
	default:
		return fmt.Sprintf("%q", e.Content)
	}
}
