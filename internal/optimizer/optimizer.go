// Package optimizer is the top-level entry point: it validates a request,
// dispatches to the AI seam (disabled), the ILP scheduler, then the
// heuristic scheduler in that order, and packages whichever path succeeds
// into the external result contract.
package optimizer

import (
	"time"

	"github.com/mcordeiromrc/SmartVacations/internal/assembler"
	"github.com/mcordeiromrc/SmartVacations/internal/heuristic"
	"github.com/mcordeiromrc/SmartVacations/internal/ilp"
	"github.com/mcordeiromrc/SmartVacations/internal/logging"
	"github.com/mcordeiromrc/SmartVacations/internal/models"
)

var log = logging.Get("optimizer")

// Run validates req and produces an OptimizationResult, per §6's dispatch
// order: AI (if configured) → ILP (if use_advanced_solver) → heuristic. The
// heuristic is the only path guaranteed to produce a result.
func Run(req models.OptimizationRequest) (models.OptimizationResult, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return models.OptimizationResult{}, err
	}

	employees := req.Employees
	if len(employees) == 0 {
		return assembler.Assemble(assembler.Inputs{
			Request: req,
			Method:  models.SolverHeuristic,
			Elapsed: time.Since(start),
		})
	}

	var (
		allocations      []models.Allocation
		savings          float64
		holidayConflicts int
		method           models.SolverMethod
	)

	if AI != nil {
		if allocs, sav, ok := AI.Allocate(req, employees); ok {
			allocations, savings, method = allocs, sav, models.SolverAI
			log.Info().Msg("ai allocator produced a result")
		}
	}

	if method == "" && req.UseAdvancedSolver {
		if allocs, sav, ok := ilp.Schedule(req, employees); ok {
			allocations, savings, method = allocs, sav, models.SolverILP
			log.Info().Msg("ilp scheduler produced a result")
		} else {
			log.Info().Msg("ilp scheduler found no proven-optimal solution, falling back to heuristic")
		}
	}

	if method == "" {
		result, err := heuristic.Schedule(req, employees)
		if err != nil {
			return models.OptimizationResult{}, err
		}
		allocations = result.Allocations
		savings = result.FinancialSavings
		holidayConflicts = result.HolidayConflictsAvoided
		method = models.SolverHeuristic
	}

	return assembler.Assemble(assembler.Inputs{
		Request:          req,
		Employees:        employees,
		Allocations:      allocations,
		FinancialSavings: savings,
		HolidayConflicts: holidayConflicts,
		Method:           method,
		Elapsed:          time.Since(start),
	})
}
