// Package legacy implements the reference comparator: structurally the same
// placement loop as internal/heuristic, restricted to Monday candidates and
// picking the median-cost survivor instead of the cheapest one, to produce a
// realistic (not optimized) savings baseline.
package legacy

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mcordeiromrc/SmartVacations/internal/calendar"
	"github.com/mcordeiromrc/SmartVacations/internal/candidates"
	"github.com/mcordeiromrc/SmartVacations/internal/ledger"
	"github.com/mcordeiromrc/SmartVacations/internal/logging"
	"github.com/mcordeiromrc/SmartVacations/internal/models"
	"github.com/mcordeiromrc/SmartVacations/internal/strategy"
)

var log = logging.Get("legacy")

const sellDays = 10
const sellDaysHours = 80

// Row is the per-employee comparison line the legacy baseline reports
// alongside its allocations.
type Row struct {
	EmployeeID       string
	Breakdown        string
	RealizedImpact   float64
	WorstCaseImpact  float64
	Savings          float64
	SavingsPercent   float64
}

// Result is the legacy comparator's output.
type Result struct {
	Allocations []models.Allocation
	Rows        []Row
}

// Run places every employee's periods against Monday-only candidates,
// picking the median-cost feasible start for each, then reports the
// worst-case/savings comparison row for that employee.
func Run(req models.OptimizationRequest, employees []models.Employee) (Result, error) {
	var result Result
	if len(employees) == 0 {
		return result, nil
	}

	ctx, err := req.ResolvedProjectContext()
	if err != nil {
		return result, err
	}

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
		var realized float64

		for periodIdx, duration := range exp.Periods {
			start, end, hours, ok := placeMedian(led, cursor, horizonEnd, duration, region, windows, e.ClientID, limit, maxSimul)
			if !ok {
				log.Warn().Str("employee_id", e.ID).Int("period_index", periodIdx).Msg("no feasible monday found, leaving period unscheduled")
				continue
			}

			overlapping := ledger.OverlappingWindows(start, end, windows)
			led.Commit(start, end, overlapping, e.ClientID)

			allocType := models.AllocationStandard
			if len(exp.Periods) > 1 {
				allocType = models.SplitType(periodIdx)
			}
			cost := float64(hours) * e.HourlyRate
			result.Allocations = append(result.Allocations, models.Allocation{
				EmployeeID:    e.ID,
				StartDate:     start.Format("2006-01-02"),
				EndDate:       end.Format("2006-01-02"),
				DurationDays:  duration,
				CostImpact:    cost,
				BillableHours: hours,
				Type:          allocType,
			})
			realized += cost

			cursor = end.AddDate(0, 0, 30)
			lastCommittedEnd = end
			anyCommitted = true
		}

		totalDays := exp.SellDays
		for _, d := range exp.Periods {
			totalDays += d
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
		}

		worstCase := e.HourlyRate * 8 * float64(totalDays)
		savings := worstCase - realized
		if savings < 0 {
			savings = 0
		}
		var savingsPercent float64
		if worstCase > 0 {
			savingsPercent = savings / worstCase * 100
		}

		result.Rows = append(result.Rows, Row{
			EmployeeID:      e.ID,
			Breakdown:       breakdownString(exp.Periods),
			RealizedImpact:  realized,
			WorstCaseImpact: worstCase,
			Savings:         savings,
			SavingsPercent:  savingsPercent,
		})
	}

	sort.Slice(result.Allocations, func(i, j int) bool {
		return result.Allocations[i].StartDate < result.Allocations[j].StartDate
	})
	return result, nil
}

// placeMedian mirrors internal/heuristic's placePeriod except it only
// considers Mondays and commits the median-by-cost survivor (⌊n/2⌋, 0
// indexed, per §9's tie-break note) instead of the cheapest one.
func placeMedian(
	led *ledger.Ledger,
	cursor, horizonEnd time.Time,
	duration int,
	region calendar.Region,
	windows []ledger.Window,
	clientID string,
	limit, maxSimul int,
) (time.Time, time.Time, int, bool) {
	mondays, err := candidates.Mondays(cursor, horizonEnd)
	if err != nil {
		return time.Time{}, time.Time{}, 0, false
	}

	type feasible struct {
		start, end time.Time
		hours      int
	}
	var survivors []feasible

	for _, start := range mondays {
		end := start.AddDate(0, 0, duration-1)
		if !calendar.IsValidStartDate(start, region, time.Monday) {
			continue
		}
		if !led.CanPlace(start, end, maxSimul) {
			continue
		}
		overlapping := ledger.OverlappingWindows(start, end, windows)
		if !led.CanPlaceInWindows(overlapping, clientID, limit) {
			continue
		}
		survivors = append(survivors, feasible{start: start, end: end, hours: calendar.BusinessHours(start, end, region)})
	}

	if len(survivors) == 0 {
		return time.Time{}, time.Time{}, 0, false
	}

	sort.Slice(survivors, func(i, j int) bool {
		return survivors[i].hours < survivors[j].hours
	})
	median := survivors[len(survivors)/2]
	return median.start, median.end, median.hours, true
}

func breakdownString(periods []int) string {
	parts := make([]string, len(periods))
	for i, d := range periods {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "+")
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
