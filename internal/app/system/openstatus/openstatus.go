// Package openstatus derives the "open today" hint shown on directory cards.
//
// The hint is a heuristic over the free-form hours text: if the current
// weekday's three-letter abbreviation appears anywhere in it, the location
// is labeled open today. Time ranges and hours of the day are not parsed,
// and an abbreviation inside an unrelated word ("sat" in "satellite")
// still counts. It is display text only and never influences filtering or
// ordering.
package openstatus

import (
	"strings"
	"time"
)

// Status is the derived open-status of a listing.
type Status int

const (
	// Unknown means the listing carries no hours; no label is shown.
	Unknown Status = iota
	OpenToday
	ClosedNow
)

// Label returns the card text for s, or "" for Unknown.
func (s Status) Label() string {
	switch s {
	case OpenToday:
		return "Open today"
	case ClosedNow:
		return "Closed now"
	default:
		return ""
	}
}

// Derive computes the status for the hours text at time now. Callers
// convert now into the display time zone first; Derive uses now's own
// location to pick the weekday.
func Derive(hours *string, now time.Time) Status {
	if hours == nil || strings.TrimSpace(*hours) == "" {
		return Unknown
	}
	if strings.Contains(strings.ToLower(*hours), Weekday(now)) {
		return OpenToday
	}
	return ClosedNow
}

// Weekday returns the lowercased short weekday name of t ("mon" … "sun").
func Weekday(t time.Time) string {
	return strings.ToLower(t.Format("Mon"))
}
