package assembler

import (
	"testing"
	"time"

	"github.com/mcordeiromrc/SmartVacations/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_TotalImpactMatchesAllocationSum(t *testing.T) {
	req := models.OptimizationRequest{
		Year:               2025,
		StrategyPreference: models.StrategyStandard30,
		ProjectContext:     &models.ProjectContext{Budget: 120000},
	}
	employees := []models.Employee{{ID: "e1", HourlyRate: 100, Locality: "São Paulo"}}
	allocations := []models.Allocation{
		{EmployeeID: "e1", StartDate: "2025-02-03", EndDate: "2025-03-04", DurationDays: 30, CostImpact: 1000, BillableHours: 10, Type: models.AllocationStandard},
	}

	result, err := Assemble(Inputs{Request: req, Employees: employees, Allocations: allocations, Method: models.SolverHeuristic, Elapsed: time.Second})
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, result.TotalImpact, 1e-6)
	assert.Equal(t, 10000.0, result.MonthlyRevenueTarget)
	assert.Equal(t, 1000.0, result.MonthlyCashFlow["FEV"])
	assert.True(t, result.CLTComplianceCheck)
	assert.Equal(t, models.SolverHeuristic, result.SolverMethod)
}

func TestAssemble_WindowBreakdownIntersectsInterval(t *testing.T) {
	req := models.OptimizationRequest{
		Year:               2025,
		StrategyPreference: models.StrategyStandard30,
		Windows: []models.MeasurementWindow{
			{ID: "w1", StartDate: "2025-02-15", EndDate: "2025-02-28"},
		},
	}
	employees := []models.Employee{{ID: "e1", HourlyRate: 100}}
	allocations := []models.Allocation{
		{EmployeeID: "e1", StartDate: "2025-02-03", EndDate: "2025-03-04", DurationDays: 30, CostImpact: 1000, BillableHours: 10, Type: models.AllocationStandard},
	}

	result, err := Assemble(Inputs{Request: req, Employees: employees, Allocations: allocations, Method: models.SolverHeuristic})
	require.NoError(t, err)
	require.Len(t, result.Allocations, 1)
	require.Len(t, result.Allocations[0].WindowBreakdown, 1)
	assert.Equal(t, "w1", result.Allocations[0].WindowBreakdown[0].WindowID)
}

func TestAssemble_EmptyAllocationsZeroTotals(t *testing.T) {
	req := models.OptimizationRequest{Year: 2025, StrategyPreference: models.StrategyStandard30}
	result, err := Assemble(Inputs{Request: req, Method: models.SolverHeuristic})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.TotalImpact)
	assert.True(t, result.CLTComplianceCheck)
}
