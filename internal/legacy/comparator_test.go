package legacy

import (
	"testing"
	"time"

	"github.com/mcordeiromrc/SmartVacations/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SingleEmployeeStandard30(t *testing.T) {
	req := models.OptimizationRequest{
		Year:               2025,
		StrategyPreference: models.StrategyStandard30,
	}
	employees := []models.Employee{
		{ID: "e1", ClientID: "c1", HourlyRate: 150},
	}

	result, err := Run(req, employees)
	require.NoError(t, err)
	require.Len(t, result.Allocations, 1)
	require.Len(t, result.Rows, 1)

	row := result.Rows[0]
	assert.Equal(t, "30", row.Breakdown)
	assert.Equal(t, 150.0*8*30, row.WorstCaseImpact)
	assert.GreaterOrEqual(t, row.Savings, 0.0)
	assert.Equal(t, row.Savings, row.WorstCaseImpact-row.RealizedImpact)
}

func TestRun_AllocationsStartOnMonday(t *testing.T) {
	req := models.OptimizationRequest{
		Year:               2025,
		StrategyPreference: models.StrategyStandard30,
	}
	employees := []models.Employee{
		{ID: "e1", ClientID: "c1", HourlyRate: 90},
	}

	result, err := Run(req, employees)
	require.NoError(t, err)
	require.Len(t, result.Allocations, 1)

	start, err := time.Parse("2006-01-02", result.Allocations[0].StartDate)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, start.Weekday())
}

func TestRun_EmptyEmployeePool(t *testing.T) {
	req := models.OptimizationRequest{Year: 2025, StrategyPreference: models.StrategyStandard30}
	result, err := Run(req, nil)
	require.NoError(t, err)
	assert.Nil(t, result.Allocations)
	assert.Nil(t, result.Rows)
}
