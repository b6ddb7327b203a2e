// Package assembler packages scheduler output (allocations, sell-day
// savings, holiday-conflict counters) into the external OptimizationResult
// contract: per-window cost/hour breakdowns, monthly cash flow, and the CLT
// compliance check.
package assembler

import (
	"sort"
	"time"

	"github.com/mcordeiromrc/SmartVacations/internal/calendar"
	"github.com/mcordeiromrc/SmartVacations/internal/ledger"
	"github.com/mcordeiromrc/SmartVacations/internal/models"
	"github.com/mcordeiromrc/SmartVacations/internal/strategy"
)

// Inputs bundles everything a scheduler produced plus the request context
// needed to package an OptimizationResult.
type Inputs struct {
	Request          models.OptimizationRequest
	Employees        []models.Employee
	Allocations      []models.Allocation
	FinancialSavings float64
	HolidayConflicts int
	Method           models.SolverMethod
	Elapsed          time.Duration
}

// Assemble builds the external result contract from scheduler output.
func Assemble(in Inputs) (models.OptimizationResult, error) {
	ctx, err := in.Request.ResolvedProjectContext()
	if err != nil {
		return models.OptimizationResult{}, err
	}

	allocations := append([]models.Allocation(nil), in.Allocations...)
	sortByStartDate(allocations)

	employeeRegion := make(map[string]calendar.Region, len(in.Employees))
	employeeRate := make(map[string]float64, len(in.Employees))
	for _, e := range in.Employees {
		employeeRegion[e.ID] = calendar.RegionOfLocality(e.Locality)
		employeeRate[e.ID] = e.HourlyRate
	}

	windows, err := parseWindows(in.Request.Windows)
	if err != nil {
		return models.OptimizationResult{}, err
	}

	var totalImpact float64
	monthlyCashFlow := make(map[string]float64, 12)
	for _, abbr := range models.MonthAbbreviations {
		monthlyCashFlow[abbr] = 0
	}

	for i := range allocations {
		a := &allocations[i]
		totalImpact += a.CostImpact

		start, err := time.Parse("2006-01-02", a.StartDate)
		if err != nil {
			return models.OptimizationResult{}, err
		}
		monthlyCashFlow[models.MonthAbbreviations[start.Month()-1]] += a.CostImpact

		if len(windows) == 0 || a.Type == models.AllocationAbono {
			continue
		}
		end, err := time.Parse("2006-01-02", a.EndDate)
		if err != nil {
			return models.OptimizationResult{}, err
		}
		region := employeeRegion[a.EmployeeID]
		rate := employeeRate[a.EmployeeID]
		a.WindowBreakdown = windowBreakdowns(start, end, windows, region, rate)
	}

	compliant := cltComplianceCheck(in.Request, in.Employees, allocations)

	return models.OptimizationResult{
		TotalImpact:             totalImpact,
		FinancialSavings:        in.FinancialSavings,
		Allocations:             allocations,
		CLTComplianceCheck:      compliant,
		HolidayConflictsAvoided: in.HolidayConflicts,
		MonthlyRevenueTarget:    ctx.Budget / 12,
		MonthlyCashFlow:         monthlyCashFlow,
		SolverMethod:            in.Method,
		OptimizationTimeSeconds: in.Elapsed.Seconds(),
	}, nil
}

func sortByStartDate(allocations []models.Allocation) {
	sort.Slice(allocations, func(i, j int) bool { return allocations[i].StartDate < allocations[j].StartDate })
}

func parseWindows(windows []models.MeasurementWindow) ([]ledger.Window, error) {
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

// windowBreakdowns intersects [start, end] with every window it overlaps and
// recomputes the business-hours count (and its cost) on the intersection.
func windowBreakdowns(start, end time.Time, windows []ledger.Window, region calendar.Region, rate float64) []models.WindowBreakdown {
	var out []models.WindowBreakdown
	for _, w := range windows {
		intersectStart := start
		if w.Start.After(intersectStart) {
			intersectStart = w.Start
		}
		intersectEnd := end
		if w.End.Before(intersectEnd) {
			intersectEnd = w.End
		}
		if intersectEnd.Before(intersectStart) {
			continue
		}
		hours := calendar.BusinessHours(intersectStart, intersectEnd, region)
		out = append(out, models.WindowBreakdown{
			WindowID:      w.ID,
			CostImpact:    float64(hours) * rate,
			BillableHours: hours,
		})
	}
	return out
}

// cltComplianceCheck returns true when every employee's non-ABONO allocation
// count matches the number of periods their resolved strategy expects.
func cltComplianceCheck(req models.OptimizationRequest, employees []models.Employee, allocations []models.Allocation) bool {
	counts := make(map[string]int, len(employees))
	for _, a := range allocations {
		if a.Type == models.AllocationAbono {
			continue
		}
		counts[a.EmployeeID]++
	}
	for _, e := range employees {
		exp := strategy.Expand(e, req.StrategyPreference, req.PresetPeriods)
		if counts[e.ID] != len(exp.Periods) {
			return false
		}
	}
	return true
}
