package calendar

import "time"

// ResolvePreferredWeekday converts a ProjectContext.PreferredStartWeekday
// value into a time.Weekday: 0 is the request-level sentinel for "use
// Monday", any other value (1-6) is the literal time.Weekday ordinal (1 =
// Monday, ..., 6 = Saturday) — Go's own weekday numbering already agrees
// with the domain convention everywhere except the 0 case.
func ResolvePreferredWeekday(v int) time.Weekday {
	if v == 0 {
		return time.Monday
	}
	return time.Weekday(v)
}
