package timeutil

import "time"

// Layouts accepted for appointment start times. Timestamps without an
// offset are interpreted as UTC.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseTime parses an RFC3339 timestamp, or a naive one which is then
// assumed to be UTC. The result is always normalized to UTC.
func ParseTime(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, raw, time.UTC)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// EnsureUTC normalizes an instant to UTC so all stored times share one
// timeline.
func EnsureUTC(t time.Time) time.Time {
	return t.UTC()
}
