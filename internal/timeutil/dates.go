package timeutil

import "time"

// Common layouts for date handling
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Now returns the current time in UTC. All inspection math runs in UTC.
func Now() time.Time {
	return time.Now().UTC()
}

// StartOfDay returns 00:00:00 UTC of the given time's day.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// WholeDaysSince returns the number of whole 24h periods between t and now,
// truncated toward zero. Matches the recency shown on the fleet dashboard.
func WholeDaysSince(t, now time.Time) int {
	return int(now.Sub(t).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD string as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
