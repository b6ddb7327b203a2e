// Package heuristic implements the rate-descending greedy scheduler: the
// only path guaranteed to produce a result, used both directly and as the
// ILP's fallback.
package heuristic

import (
	"sort"
	"time"

	"github.com/mcordeiromrc/SmartVacations/internal/calendar"
	"github.com/mcordeiromrc/SmartVacations/internal/candidates"
	"github.com/mcordeiromrc/SmartVacations/internal/ledger"
	"github.com/mcordeiromrc/SmartVacations/internal/logging"
	"github.com/mcordeiromrc/SmartVacations/internal/models"
	"github.com/mcordeiromrc/SmartVacations/internal/strategy"
)

var log = logging.Get("heuristic")

const sellDays = 10
const sellDaysHours = 80

// Result is the heuristic's output: the allocations produced, the financial
// savings accumulated from sell-day blocks, and the number of candidates
// rejected for landing adjacent to a holiday (§4.4 step 3).
type Result struct {
	Allocations            []models.Allocation
	FinancialSavings        float64
	HolidayConflictsAvoided int
}

// Schedule places every employee's periods in descending-rate order against
// a single shared occupancy ledger. Employees for whom a period has no
// feasible candidate are left with that period unscheduled rather than
// failing the whole run, matching §7's partial-result error taxonomy.
func Schedule(req models.OptimizationRequest, employees []models.Employee) (Result, error) {
	var result Result
	if len(employees) == 0 {
		return result, nil
	}

	ctx, err := req.ResolvedProjectContext()
	if err != nil {
		return result, err
	}
	preferredWeekday := calendar.ResolvePreferredWeekday(ctx.PreferredStartWeekday)

	horizonStart, horizonEnd, err := candidates.Horizon(req)
	if err != nil {
		return result, err
	}

	windows, err := windowsForLedger(req.Windows)
	if err != nil {
		return result, err
	}
	caps := clientSizes(employees)
	maxSimul := ledger.MaxSimultaneous(len(employees), ctx.MaxConcurrencyPercent)

	ordered := append([]models.Employee(nil), employees...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].HourlyRate > ordered[j].HourlyRate })

	led := ledger.New()

	for _, e := range ordered {
		region := calendar.RegionOfLocality(e.Locality)
		limit := ledger.PerClientCap(caps[e.ClientID])
		exp := strategy.Expand(e, req.StrategyPreference, req.PresetPeriods)

		cursor := horizonStart
		var lastCommittedEnd time.Time
		var anyCommitted bool

		for periodIdx, duration := range exp.Periods {
			start, end, hours, ok := placePeriod(led, cursor, horizonEnd, duration, region, preferredWeekday, windows, e.ClientID, limit, maxSimul, &result.HolidayConflictsAvoided)
			if !ok {
				log.Warn().Str("employee_id", e.ID).Int("period_index", periodIdx).Msg("no feasible start found, leaving period unscheduled")
				continue
			}

			overlapping := ledger.OverlappingWindows(start, end, windows)
			led.Commit(start, end, overlapping, e.ClientID)

			allocType := models.AllocationStandard
			if len(exp.Periods) > 1 {
				allocType = models.SplitType(periodIdx)
			}
			result.Allocations = append(result.Allocations, models.Allocation{
				EmployeeID:    e.ID,
				StartDate:     start.Format("2006-01-02"),
				EndDate:       end.Format("2006-01-02"),
				DurationDays:  duration,
				CostImpact:    float64(hours) * e.HourlyRate,
				BillableHours: hours,
				Type:          allocType,
			})

			cursor = end.AddDate(0, 0, 30) // committed_end + 30 days, per §4.4 step 7
			lastCommittedEnd = end
			anyCommitted = true
		}

		if exp.SellDays > 0 && anyCommitted {
			abonoStart := lastCommittedEnd.AddDate(0, 0, 1)
			abonoEnd := abonoStart.AddDate(0, 0, sellDays-1)
			result.Allocations = append(result.Allocations, models.Allocation{
				EmployeeID:    e.ID,
				StartDate:     abonoStart.Format("2006-01-02"),
				EndDate:       abonoEnd.Format("2006-01-02"),
				DurationDays:  sellDays,
				CostImpact:    0,
				BillableHours: sellDaysHours,
				Type:          models.AllocationAbono,
			})
			result.FinancialSavings += e.HourlyRate * 8 * sellDays
		}
	}

	sort.Slice(result.Allocations, func(i, j int) bool {
		return result.Allocations[i].StartDate < result.Allocations[j].StartDate
	})
	return result, nil
}

// placePeriod scans every weekday-matching candidate in [cursor, horizonEnd],
// rejects ones that fail the region's valid-start predicate (counting each
// toward holidayConflicts), then ones that would break the global or
// per-client occupancy caps, and returns the cheapest survivor.
func placePeriod(
	led *ledger.Ledger,
	cursor, horizonEnd time.Time,
	duration int,
	region calendar.Region,
	preferredWeekday time.Weekday,
	windows []ledger.Window,
	clientID string,
	limit, maxSimul int,
	holidayConflicts *int,
) (time.Time, time.Time, int, bool) {
	weekdayCandidates, err := candidates.WeeklyFrom(cursor, horizonEnd, preferredWeekday)
	if err != nil {
		return time.Time{}, time.Time{}, 0, false
	}

	type feasible struct {
		start, end time.Time
		hours      int
		cost       float64
	}
	var survivors []feasible

	for _, start := range weekdayCandidates {
		end := start.AddDate(0, 0, duration-1)
		if !calendar.IsValidStartDate(start, region, preferredWeekday) {
			*holidayConflicts++
			continue
		}
		if !led.CanPlace(start, end, maxSimul) {
			continue
		}
		overlapping := ledger.OverlappingWindows(start, end, windows)
		if !led.CanPlaceInWindows(overlapping, clientID, limit) {
			continue
		}
		hours := calendar.BusinessHours(start, end, region)
		survivors = append(survivors, feasible{start: start, end: end, hours: hours, cost: float64(hours)})
	}

	if len(survivors) == 0 {
		return time.Time{}, time.Time{}, 0, false
	}

	best := survivors[0]
	for _, s := range survivors[1:] {
		if s.cost < best.cost {
			best = s
		}
	}
	return best.start, best.end, best.hours, true
}

func windowsForLedger(windows []models.MeasurementWindow) ([]ledger.Window, error) {
	out := make([]ledger.Window, 0, len(windows))
	for _, w := range windows {
		start, err := time.Parse("2006-01-02", w.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := time.Parse("2006-01-02", w.EndDate)
		if err != nil {
			return nil, err
		}
		out = append(out, ledger.Window{ID: w.ID, Start: start, End: end})
	}
	return out, nil
}

func clientSizes(employees []models.Employee) map[string]int {
	sizes := make(map[string]int)
	for _, e := range employees {
		sizes[e.ClientID]++
	}
	return sizes
}
