package optimizer

import (
	"testing"

	"github.com/mcordeiromrc/SmartVacations/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_HeuristicPathByDefault(t *testing.T) {
	req := models.OptimizationRequest{
		Year:               2025,
		Rules:              models.VacationRules{StandardDays: 30, MinMainPeriod: 1, MinOtherPeriod: 1},
		StrategyPreference: models.StrategyStandard30,
		Employees: []models.Employee{
			{ID: "e1", Name: "Ana", AdmissionDate: "2020-01-01", ClientID: "c1", HourlyRate: 100},
		},
	}

	result, err := Run(req)
	require.NoError(t, err)
	assert.Equal(t, models.SolverHeuristic, result.SolverMethod)
	assert.Len(t, result.Allocations, 1)
}

func TestRun_ILPPathWhenRequested(t *testing.T) {
	req := models.OptimizationRequest{
		Year:               2025,
		Rules:              models.VacationRules{StandardDays: 30, MinMainPeriod: 1, MinOtherPeriod: 1},
		StrategyPreference: models.StrategyStandard30,
		UseAdvancedSolver:  true,
		Employees: []models.Employee{
			{ID: "e1", Name: "Ana", AdmissionDate: "2020-01-01", ClientID: "c1", HourlyRate: 100},
		},
	}

	result, err := Run(req)
	require.NoError(t, err)
	assert.Equal(t, models.SolverILP, result.SolverMethod)
}

func TestRun_EmptyEmployeesNeverErrors(t *testing.T) {
	req := models.OptimizationRequest{
		Year:               2025,
		Rules:              models.VacationRules{StandardDays: 30, MinMainPeriod: 1, MinOtherPeriod: 1},
		StrategyPreference: models.StrategyStandard30,
	}

	result, err := Run(req)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.TotalImpact)
}

func TestRun_RejectsInvalidRequest(t *testing.T) {
	req := models.OptimizationRequest{}
	_, err := Run(req)
	require.Error(t, err)
}
