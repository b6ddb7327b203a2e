package ilp

import (
	"time"

	"github.com/mcordeiromrc/SmartVacations/internal/ledger"
)

// commit is one accepted (employee, period) placement.
type commit struct {
	EmployeeIdx int
	PeriodIdx   int
	Start       time.Time
	End         time.Time
	Hours       int
	Cost        float64
}

// searchState is the mutable state threaded through the recursive search. It
// holds a single shared ledger that every branch commits into and backs out
// of (via ledger.Uncommit) so no copying is needed between branches.
type searchState struct {
	tasks       []periodTask
	windows     []ledger.Window
	clientCaps  map[string]int
	maxSimul    int
	deadline    time.Time
	timedOut    bool
	led         *ledger.Ledger
	employeeOf  map[int][]time.Time // employeeIdx -> starts committed so far
	pending     []commit            // commits made on the current DFS path
	best        []commit
	bestCost    float64
	haveBest    bool
}

// remainingLowerBound sums the cheapest option of every task at or after idx,
// ignoring feasibility, giving an admissible (never-overestimating) bound for
// pruning: no fully feasible completion can cost less than this.
func remainingLowerBound(tasks []periodTask, idx int) float64 {
	var bound float64
	for i := idx; i < len(tasks); i++ {
		if len(tasks[i].Options) == 0 {
			return -1 // infeasible task, signalled by a negative bound
		}
		bound += tasks[i].Options[0].Cost
	}
	return bound
}

func separationOK(starts []time.Time, candidate time.Time) bool {
	for _, s := range starts {
		diff := candidate.Sub(s).Hours() / 24
		if diff < 0 {
			diff = -diff
		}
		if diff < 30 {
			return false
		}
	}
	return true
}

// search explores task idx onward, having already committed partialCost for
// tasks [0, idx). It records the cheapest complete assignment found in
// st.best before the deadline expires.
func search(st *searchState, idx int, partialCost float64) {
	if st.timedOut {
		return
	}
	if time.Now().After(st.deadline) {
		st.timedOut = true
		return
	}
	if st.haveBest && partialCost >= st.bestCost {
		return
	}
	if idx == len(st.tasks) {
		st.best = append([]commit(nil), st.pending...)
		st.bestCost = partialCost
		st.haveBest = true
		return
	}

	lb := remainingLowerBound(st.tasks, idx)
	if lb < 0 {
		return // some later task has no candidates at all: this branch can't complete
	}
	if st.haveBest && partialCost+lb >= st.bestCost {
		return
	}

	task := st.tasks[idx]
	limit := ledger.PerClientCap(st.clientCaps[task.ClientID])
	priorStarts := st.employeeOf[task.EmployeeIdx]

	for _, opt := range task.Options {
		if st.haveBest && partialCost+opt.Cost >= st.bestCost {
			break // options are cost-ascending, nothing cheaper follows
		}
		if !separationOK(priorStarts, opt.Start) {
			continue
		}
		end := opt.Start.AddDate(0, 0, task.Duration-1)
		if !st.led.CanPlace(opt.Start, end, st.maxSimul) {
			continue
		}
		overlapping := ledger.OverlappingWindows(opt.Start, end, st.windows)
		if !st.led.CanPlaceInWindows(overlapping, task.ClientID, limit) {
			continue
		}

		st.led.Commit(opt.Start, end, overlapping, task.ClientID)
		st.employeeOf[task.EmployeeIdx] = append(priorStarts, opt.Start)
		st.pending = append(st.pending, commit{
			EmployeeIdx: task.EmployeeIdx,
			PeriodIdx:   task.PeriodIdx,
			Start:       opt.Start,
			End:         end,
			Hours:       opt.Hours,
			Cost:        opt.Cost,
		})

		search(st, idx+1, partialCost+opt.Cost)

		st.pending = st.pending[:len(st.pending)-1]
		st.employeeOf[task.EmployeeIdx] = priorStarts
		st.led.Uncommit(opt.Start, end, overlapping, task.ClientID)

		if st.timedOut {
			return
		}
	}
}

// solve runs the branch-and-bound search to completion or until deadline.
// It returns (commits, true) only when the search exhausted every branch
// without timing out, matching the "no solution unless optimality proven"
// contract in §4.3.
func solve(tasks []periodTask, windows []ledger.Window, clientCaps map[string]int, maxSimul int, deadline time.Time) ([]commit, bool) {
	st := &searchState{
		tasks:      tasks,
		windows:    windows,
		clientCaps: clientCaps,
		maxSimul:   maxSimul,
		deadline:   deadline,
		led:        ledger.New(),
		employeeOf: make(map[int][]time.Time),
	}
	search(st, 0, 0)
	if st.timedOut || !st.haveBest {
		return nil, false
	}
	return st.best, true
}
