package location

import (
	"testing"
	"time"

	"github.com/entrhq/wayfarer/pkg/journey"
)

func TestStaticProvider(t *testing.T) {
	wp := journey.Waypoint{Name: "Tokyo", Lat: 35.6762, Lng: 139.6503}
	p := Static{Waypoint: wp}

	if got := p.Current(); got != wp {
		t.Errorf("Current() = %+v, want %+v", got, wp)
	}
}

func TestScriptedProviderAdvances(t *testing.T) {
	places := []journey.Waypoint{
		{Name: "Tokyo"},
		{Name: "Kyoto"},
		{Name: "Osaka"},
	}

	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	p := NewScriptedWithClock(places, time.Minute, clock)

	steps := []struct {
		advance time.Duration
		want    string
	}{
		{0, "Tokyo"},
		{30 * time.Second, "Tokyo"},
		{31 * time.Second, "Kyoto"},
		{time.Minute, "Osaka"},
		{time.Minute, "Tokyo"}, // wraps around
	}

	for _, step := range steps {
		now = now.Add(step.advance)
		if got := p.Current().Name; got != step.want {
			t.Errorf("after %v total: Current() = %q, want %q", now, got, step.want)
		}
	}
}

func TestScriptedProviderNoPlaces(t *testing.T) {
	p := NewScripted(nil, time.Minute)
	if got := p.Current().Name; got != "Unknown" {
		t.Errorf("Current() with no places = %q, want Unknown", got)
	}
}
