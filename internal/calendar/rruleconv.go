package calendar

import (
	"time"

	"github.com/teambition/rrule-go"
)

// ToRRuleWeekday converts a time.Weekday into its rrule.Weekday equivalent,
// the way jpfluger-alibs-slim's atime.TimeWeekdayToRRuleWeekday does.
func ToRRuleWeekday(d time.Weekday) rrule.Weekday {
	switch d {
	case time.Sunday:
		return rrule.SU
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	default:
		return rrule.MO
	}
}
