package utils

import (
	"strings"
	"time"
)

// Layouts accepted from form/JSON date inputs. datetime-local widgets omit
// seconds and zone, so the lenient set covers the common truncations.
var inputLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDateTime parses an ISO-8601-ish timestamp leniently. The second return
// is false when the input is empty or unparsable; callers leave the field
// unset in that case rather than rejecting the request.
func ParseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Layouts seen in mail message date headers: RFC 5322 variants from Gmail,
// RFC 3339 from Graph.
var mailDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 -0700 (MST)",
	"2 Jan 2006 15:04:05 -0700",
	time.RFC3339,
	"2006-01-02T15:04:05Z",
}

// ParseMailDate parses a message date tolerantly. Unparsable dates map to the
// zero time so they sort last in a descending merge.
func ParseMailDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range mailDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatNullableTime renders a *time.Time as ISO-8601 or nil for JSON feeds.
func FormatNullableTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
