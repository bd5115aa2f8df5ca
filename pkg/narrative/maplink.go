package narrative

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// The link formats below are an interoperability contract with the Google
// Maps universal URL scheme and must not drift.
const (
	searchURLFormat = "https://www.google.com/maps/search/?api=1&query=%s,%s"
	directionsBase  = "https://www.google.com/maps/dir/"
)

// MapQueryLink builds the map search link for a coordinate pair. The link
// carries full float precision; display formatting is FormatCoords's job.
func MapQueryLink(lat, lng float64) string {
	return fmt.Sprintf(searchURLFormat,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64),
	)
}

// RouteLink builds a directions link walking the route stops in order,
// path-style, with each stop name URL-escaped.
func RouteLink(names []string) string {
	escaped := make([]string, len(names))
	for i, name := range names {
		escaped[i] = url.PathEscape(name)
	}
	return directionsBase + strings.Join(escaped, "/")
}

// FormatCoords renders a coordinate pair for display, two decimal places.
func FormatCoords(lat, lng float64) string {
	return fmt.Sprintf("%.2f, %.2f", lat, lng)
}
