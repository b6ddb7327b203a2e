package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
)

// Holiday is a single named calendar holiday.
type Holiday struct {
	Date time.Time
	Name string
}

// HolidaySet is the set of ISO-8601 date strings (YYYY-MM-DD) that are
// holidays for a given year/region combination.
type HolidaySet map[string]struct{}

// Contains reports whether the given date falls in the set.
func (hs HolidaySet) Contains(d time.Time) bool {
	_, ok := hs[isoDate(d)]
	return ok
}

func isoDate(d time.Time) string {
	return d.Format("2006-01-02")
}

// HolidaysForYear returns the fixed and movable national holidays plus any
// regional additions for the given year and region.
func HolidaysForYear(year int, region Region) []Holiday {
	easter := Easter(year)

	holidays := []Holiday{
		{Date: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), Name: "Confraternização Universal"},
		{Date: time.Date(year, time.April, 21, 0, 0, 0, 0, time.UTC), Name: "Tiradentes"},
		{Date: time.Date(year, time.May, 1, 0, 0, 0, 0, time.UTC), Name: "Dia do Trabalhador"},
		{Date: time.Date(year, time.September, 7, 0, 0, 0, 0, time.UTC), Name: "Independência do Brasil"},
		{Date: time.Date(year, time.October, 12, 0, 0, 0, 0, time.UTC), Name: "Nossa Senhora Aparecida"},
		{Date: time.Date(year, time.November, 2, 0, 0, 0, 0, time.UTC), Name: "Finados"},
		{Date: time.Date(year, time.November, 15, 0, 0, 0, 0, time.UTC), Name: "Proclamação da República"},
		{Date: time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC), Name: "Natal"},

		{Date: easter.AddDate(0, 0, -47), Name: "Carnaval"},
		{Date: easter.AddDate(0, 0, -2), Name: "Sexta-feira Santa"},
		{Date: easter.AddDate(0, 0, 60), Name: "Corpus Christi"},
	}

	switch region {
	case RegionSP:
		holidays = append(holidays,
			Holiday{Date: time.Date(year, time.July, 9, 0, 0, 0, 0, time.UTC), Name: "Revolução Constitucionalista"},
			Holiday{Date: time.Date(year, time.November, 20, 0, 0, 0, 0, time.UTC), Name: "Consciência Negra"},
		)
	case RegionRS:
		holidays = append(holidays,
			Holiday{Date: time.Date(year, time.September, 20, 0, 0, 0, 0, time.UTC), Name: "Revolução Farroupilha"},
		)
	case RegionRJ:
		holidays = append(holidays,
			Holiday{Date: time.Date(year, time.April, 23, 0, 0, 0, 0, time.UTC), Name: "São Jorge"},
			Holiday{Date: time.Date(year, time.November, 20, 0, 0, 0, 0, time.UTC), Name: "Consciência Negra"},
		)
	}

	return holidays
}

// HolidaySetForYear returns HolidaysForYear as a set of ISO-8601 date strings.
// Duplicate dates (e.g. a fixed holiday landing on the same day as a movable
// one) collapse into a single entry, so membership checks stay idempotent.
func HolidaySetForYear(year int, region Region) HolidaySet {
	set := make(HolidaySet)
	for _, h := range HolidaysForYear(year, region) {
		set[isoDate(h.Date)] = struct{}{}
	}
	return set
}

// RegionalCalendar answers is-holiday/is-workday questions for one calendar
// year and region via a rickar/cal BusinessCalendar seeded with that year's
// concrete holiday dates.
type RegionalCalendar struct {
	year   int
	region Region
	bc     *cal.BusinessCalendar
}

// NewRegionalCalendar builds the business calendar for year/region. Each
// holiday is registered as an exact Month/Day pair; the calendar is never
// reused across years, so month/day identity is enough to pin the occurrence
// to the year the caller asked about.
func NewRegionalCalendar(year int, region Region) *RegionalCalendar {
	bc := cal.NewBusinessCalendar()
	for _, h := range HolidaysForYear(year, region) {
		bc.AddHoliday(&cal.Holiday{
			Name:  h.Name,
			Month: h.Date.Month(),
			Day:   h.Date.Day(),
			Func:  cal.CalcDayOfMonth,
		})
	}
	return &RegionalCalendar{year: year, region: region, bc: bc}
}

// IsHoliday reports whether d is a registered holiday for this calendar's
// year/region.
func (rc *RegionalCalendar) IsHoliday(d time.Time) bool {
	actual, _, _ := rc.bc.IsHoliday(d)
	return actual
}

// IsWorkday reports whether d is a business weekday for this calendar's
// year/region (Mon-Fri, not a holiday); it does not account for bridge days,
// which the calendar package layers on separately since rickar/cal has no
// notion of them.
func (rc *RegionalCalendar) IsWorkday(d time.Time) bool {
	return rc.bc.IsWorkday(d)
}
