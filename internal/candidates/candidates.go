// Package candidates generates the candidate vacation-start dates consumed
// by the ILP scheduler, the heuristic scheduler, and the legacy comparator.
package candidates

import (
	"fmt"
	"time"

	"github.com/mcordeiromrc/SmartVacations/internal/calendar"
	"github.com/mcordeiromrc/SmartVacations/internal/models"
	"github.com/teambition/rrule-go"
)

// Horizon resolves a request's planning horizon: an explicit date range if
// supplied, otherwise the full calendar year.
func Horizon(req models.OptimizationRequest) (time.Time, time.Time, error) {
	if req.DateRangeStart != "" || req.DateRangeEnd != "" {
		start, err := time.Parse("2006-01-02", req.DateRangeStart)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("date_range_start: %w", err)
		}
		end, err := time.Parse("2006-01-02", req.DateRangeEnd)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("date_range_end: %w", err)
		}
		return start, end, nil
	}

	start := time.Date(req.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(req.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end, nil
}

// UnionRegions returns the deduplicated set of regions represented by
// employees, always including RegionNone so national holidays are checked
// even when no employee carries a recognized locality.
func UnionRegions(employees []models.Employee) []calendar.Region {
	seen := map[calendar.Region]struct{}{calendar.RegionNone: {}}
	regions := []calendar.Region{calendar.RegionNone}
	for _, e := range employees {
		r := calendar.RegionOfLocality(e.Locality)
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		regions = append(regions, r)
	}
	return regions
}

// ForILP returns every date in the request's horizon that satisfies the
// valid-start-date predicate against the union of holiday sets of every
// region represented in employees. The same list is reused for every
// (employee, period) decision variable, per §4.3's model-symmetry note.
func ForILP(req models.OptimizationRequest, employees []models.Employee, preferredWeekday time.Weekday) ([]time.Time, error) {
	start, end, err := Horizon(req)
	if err != nil {
		return nil, err
	}
	regions := UnionRegions(employees)

	var out []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if calendar.IsValidStartDateUnion(d, regions, preferredWeekday) {
			out = append(out, d)
		}
	}
	return out, nil
}

// Mondays returns every Monday in [start, end], generated with a weekly
// rrule recurrence rather than a hand-rolled stepping loop.
func Mondays(start, end time.Time) ([]time.Time, error) {
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rrule.MO},
		Dtstart:   start,
		Until:     end,
	})
	if err != nil {
		return nil, fmt.Errorf("building monday recurrence: %w", err)
	}
	return rule.All(), nil
}

// ForEmployee returns every date in [start, end] that satisfies the
// valid-start-date predicate against a single region's holiday set, rather
// than the ILP's cross-region union.
func ForEmployee(start, end time.Time, region calendar.Region, preferredWeekday time.Weekday) []time.Time {
	var out []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if calendar.IsValidStartDate(d, region, preferredWeekday) {
			out = append(out, d)
		}
	}
	return out
}

// WeeklyFrom returns every occurrence of weekday in [start, end], used by the
// heuristic scheduler to step its search cursor week by week instead of day
// by day once a preferred weekday is known.
func WeeklyFrom(start, end time.Time, weekday time.Weekday) ([]time.Time, error) {
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{calendar.ToRRuleWeekday(weekday)},
		Dtstart:   start,
		Until:     end,
	})
	if err != nil {
		return nil, fmt.Errorf("building weekly recurrence: %w", err)
	}
	return rule.All(), nil
}
