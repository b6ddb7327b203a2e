package calendar

import "time"

// BridgeDaysForYear infers the "ponte" (bridge) days implied by a holiday
// set: a Tuesday holiday turns the preceding Monday into a bridge day, and a
// Thursday holiday turns the following Friday into one. No other weekday
// produces a bridge.
func BridgeDaysForYear(year int, region Region) HolidaySet {
	bridges := make(HolidaySet)
	for _, h := range HolidaysForYear(year, region) {
		switch h.Date.Weekday() {
		case time.Tuesday:
			bridges[isoDate(h.Date.AddDate(0, 0, -1))] = struct{}{}
		case time.Thursday:
			bridges[isoDate(h.Date.AddDate(0, 0, 1))] = struct{}{}
		}
	}
	return bridges
}
