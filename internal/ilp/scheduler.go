package ilp

import (
	"sort"
	"time"

	"github.com/mcordeiromrc/SmartVacations/internal/calendar"
	"github.com/mcordeiromrc/SmartVacations/internal/candidates"
	"github.com/mcordeiromrc/SmartVacations/internal/ledger"
	"github.com/mcordeiromrc/SmartVacations/internal/logging"
	"github.com/mcordeiromrc/SmartVacations/internal/models"
)

var log = logging.Get("ilp")

const sellDays = 10
const sellDaysHours = 80

// Schedule runs the branch-and-bound search for the whole employee pool and
// returns the resulting allocations plus accumulated financial_savings from
// any sell-day blocks. ok is false when the search proved infeasible or ran
// past its wall-clock budget without proving optimality — callers fall back
// to internal/heuristic in both cases, per §4.3's solver contract.
func Schedule(req models.OptimizationRequest, employees []models.Employee) ([]models.Allocation, float64, bool) {
	if len(employees) == 0 {
		return nil, 0, true
	}

	ctx, err := req.ResolvedProjectContext()
	if err != nil {
		log.Error().Err(err).Msg("resolving project context")
		return nil, 0, false
	}
	preferredWeekday := calendar.ResolvePreferredWeekday(ctx.PreferredStartWeekday)

	starts, err := candidates.ForILP(req, employees, preferredWeekday)
	if err != nil {
		log.Error().Err(err).Msg("building ilp candidate set")
		return nil, 0, false
	}

	plans := buildPlans(req, employees, starts, preferredWeekday)

	var tasks []periodTask
	orderedPlans := append([]employeePlan(nil), plans...)
	sort.SliceStable(orderedPlans, func(i, j int) bool {
		return orderedPlans[i].Employee.HourlyRate > orderedPlans[j].Employee.HourlyRate
	})
	for _, plan := range orderedPlans {
		tasks = append(tasks, plan.Tasks...)
	}
	for _, task := range tasks {
		if len(task.Options) == 0 {
			log.Warn().Int("employee_idx", task.EmployeeIdx).Msg("no feasible candidate start for period")
			return nil, 0, false
		}
	}

	windows, err := windowsForLedger(req.Windows)
	if err != nil {
		log.Error().Err(err).Msg("parsing measurement windows")
		return nil, 0, false
	}
	caps := clientSizes(employees)

	maxSimul := ledger.MaxSimultaneous(len(employees), ctx.MaxConcurrencyPercent)

	timeout := req.ResolvedSolverTimeout()
	deadline := time.Now().Add(time.Duration(timeout) * time.Second)

	commits, ok := solve(tasks, windows, caps, maxSimul, deadline)
	if !ok {
		return nil, 0, false
	}

	byEmployee := make(map[int][]commit)
	for _, c := range commits {
		byEmployee[c.EmployeeIdx] = append(byEmployee[c.EmployeeIdx], c)
	}

	var allocations []models.Allocation
	var financialSavings float64
	for planIdx, plan := range plans {
		periodCommits := byEmployee[planIdx]
		sort.Slice(periodCommits, func(i, j int) bool { return periodCommits[i].PeriodIdx < periodCommits[j].PeriodIdx })

		for _, c := range periodCommits {
			allocType := models.AllocationStandard
			if len(plan.Tasks) > 1 {
				allocType = models.SplitType(c.PeriodIdx)
			}
			allocations = append(allocations, models.Allocation{
				EmployeeID:    plan.Employee.ID,
				StartDate:     c.Start.Format("2006-01-02"),
				EndDate:       c.End.Format("2006-01-02"),
				DurationDays:  int(c.End.Sub(c.Start).Hours()/24) + 1,
				CostImpact:    c.Cost,
				BillableHours: c.Hours,
				Type:          allocType,
			})
		}

		if plan.SellDays > 0 {
			lastEnd := periodCommits[len(periodCommits)-1].End
			abonoStart := lastEnd.AddDate(0, 0, 1)
			abonoEnd := abonoStart.AddDate(0, 0, sellDays-1)
			allocations = append(allocations, models.Allocation{
				EmployeeID:    plan.Employee.ID,
				StartDate:     abonoStart.Format("2006-01-02"),
				EndDate:       abonoEnd.Format("2006-01-02"),
				DurationDays:  sellDays,
				CostImpact:    0,
				BillableHours: sellDaysHours,
				Type:          models.AllocationAbono,
			})
			financialSavings += plan.Employee.HourlyRate * 8 * sellDays
		}
	}

	sort.Slice(allocations, func(i, j int) bool { return allocations[i].StartDate < allocations[j].StartDate })
	return allocations, financialSavings, true
}
