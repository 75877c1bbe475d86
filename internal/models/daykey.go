package models

import "time"

// dayKeyLayout is the wire format for DayKey values.
const dayKeyLayout = "2006-01-02"

// DayKey is a calendar date at day granularity (no time of day). Posting
// cadence, streaks, and "posted today" checks all compare DayKeys for
// equality, so the zone used to derive "today" must be consistent across
// the process (the service uses local time throughout).
type DayKey string

// Today returns the DayKey for the given instant in its location.
func Today(now time.Time) DayKey {
	return DayKey(now.Format(dayKeyLayout))
}

// AddDays returns the DayKey n days after d (negative n walks backward).
// An unparsable key is returned unchanged.
func (d DayKey) AddDays(n int) DayKey {
	t, err := time.Parse(dayKeyLayout, string(d))
	if err != nil {
		return d
	}
	return DayKey(t.AddDate(0, 0, n).Format(dayKeyLayout))
}

// Before reports whether d is strictly earlier than other. DayKeys are
// zero-padded ISO dates, so lexicographic order is chronological order.
func (d DayKey) Before(other DayKey) bool {
	return string(d) < string(other)
}

// Display formats the key for the UI, e.g. "Jan 02, 2006". Unparsable keys
// render as-is.
func (d DayKey) Display() string {
	t, err := time.Parse(dayKeyLayout, string(d))
	if err != nil {
		return string(d)
	}
	return t.Format("Jan 02, 2006")
}
