package models

import (
	"strings"
	"time"
)

// startDateLayouts are the ISO-8601 shapes accepted for an event start.
var startDateLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseStartDate parses an ISO date or date-time. A trailing "Z" is read as
// UTC; surrounding whitespace fails the parse. The returned time keeps the
// offset carried by the input, so Weekday reports the calendar day the caller
// wrote.
func ParseStartDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}

	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
