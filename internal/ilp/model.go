// Package ilp implements the exact scheduler: a branch-and-bound search over
// binary decision variables x[e,s,i] (employee e's i-th period starts on
// candidate date s), built and solved the way internal/heuristic commits
// greedily, except this package explores alternatives before settling and
// only accepts a placement once the whole employee pool is satisfied.
package ilp

import (
	"sort"
	"time"

	"github.com/mcordeiromrc/SmartVacations/internal/calendar"
	"github.com/mcordeiromrc/SmartVacations/internal/ledger"
	"github.com/mcordeiromrc/SmartVacations/internal/models"
	"github.com/mcordeiromrc/SmartVacations/internal/strategy"
)

// option is one feasible-cost candidate start for a single period of a
// single employee, used to drive the branch order (cheapest first) and to
// compute the lower bound on unassigned work.
type option struct {
	Start time.Time
	Hours int
	Cost  float64
}

// periodTask is one (employee, period-index) decision to make.
type periodTask struct {
	EmployeeIdx int
	PeriodIdx   int
	Duration    int
	Region      calendar.Region
	ClientID    string
	Rate        float64
	Options     []option // ascending by cost
}

// employeePlan groups every task belonging to one employee, in period order,
// so the 30-day separation constraint can be checked incrementally as tasks
// for the same employee are committed one after another.
type employeePlan struct {
	Employee models.Employee
	Region   calendar.Region
	Tasks    []periodTask
	SellDays int
}

// buildPlans resolves each employee's strategy expansion into priced
// candidate options. Plans come back in the order of employees (a plan's
// index is its tasks' EmployeeIdx); Schedule sorts them rate-descending
// before searching.
func buildPlans(req models.OptimizationRequest, employees []models.Employee, starts []time.Time, preferredWeekday time.Weekday) []employeePlan {
	plans := make([]employeePlan, 0, len(employees))
	for _, e := range employees {
		exp := strategy.Expand(e, req.StrategyPreference, req.PresetPeriods)
		region := calendar.RegionOfLocality(e.Locality)

		plan := employeePlan{Employee: e, Region: region, SellDays: exp.SellDays}
		for pi, dur := range exp.Periods {
			task := periodTask{
				EmployeeIdx: len(plans),
				PeriodIdx:   pi,
				Duration:    dur,
				Region:      region,
				ClientID:    e.ClientID,
				Rate:        e.HourlyRate,
			}
			for _, s := range starts {
				end := s.AddDate(0, 0, dur-1)
				if s.Weekday() != preferredWeekday {
					continue
				}
				hours := calendar.BusinessHours(s, end, region)
				task.Options = append(task.Options, option{Start: s, Hours: hours, Cost: e.HourlyRate * float64(hours)})
			}
			sort.Slice(task.Options, func(i, j int) bool { return task.Options[i].Cost < task.Options[j].Cost })
			plan.Tasks = append(plan.Tasks, task)
		}
		plans = append(plans, plan)
	}
	return plans
}

// windowsForLedger converts request windows into ledger.Window values once,
// reused across every feasibility check during the search.
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

// clientSizes counts employees per client, used to derive each window's
// per-client cap via ledger.PerClientCap.
func clientSizes(employees []models.Employee) map[string]int {
	sizes := make(map[string]int)
	for _, e := range employees {
		sizes[e.ClientID]++
	}
	return sizes
}
