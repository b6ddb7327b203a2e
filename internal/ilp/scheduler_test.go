package ilp

import (
	"testing"

	"github.com/mcordeiromrc/SmartVacations/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_SingleEmployeeStandard30(t *testing.T) {
	req := models.OptimizationRequest{
		Year:               2025,
		StrategyPreference: models.StrategyStandard30,
	}
	employees := []models.Employee{
		{ID: "e1", Name: "Ana", ClientID: "c1", HourlyRate: 100, Locality: "São Paulo"},
	}

	allocations, savings, ok := Schedule(req, employees)
	require.True(t, ok)
	require.Len(t, allocations, 1)
	assert.Equal(t, 0.0, savings)

	alloc := allocations[0]
	assert.Equal(t, models.AllocationStandard, alloc.Type)
	assert.Equal(t, 30, alloc.DurationDays)
	assert.Equal(t, alloc.CostImpact, float64(alloc.BillableHours)*100)
}

func TestSchedule_EmptyEmployeePool(t *testing.T) {
	req := models.OptimizationRequest{Year: 2025, StrategyPreference: models.StrategyStandard30}
	allocations, savings, ok := Schedule(req, nil)
	assert.True(t, ok)
	assert.Nil(t, allocations)
	assert.Equal(t, 0.0, savings)
}

func TestSchedule_SellDaysEmitsAbono(t *testing.T) {
	req := models.OptimizationRequest{
		Year:               2025,
		StrategyPreference: models.StrategySell10,
	}
	employees := []models.Employee{
		{ID: "e1", Name: "Bruno", ClientID: "c1", HourlyRate: 200, Locality: "Rio de Janeiro"},
	}

	allocations, savings, ok := Schedule(req, employees)
	require.True(t, ok)
	require.Len(t, allocations, 2)
	assert.Equal(t, 200.0*8*10, savings)

	var sawAbono bool
	for _, a := range allocations {
		if a.Type == models.AllocationAbono {
			sawAbono = true
			assert.Equal(t, 0.0, a.CostImpact)
			assert.Equal(t, 80, a.BillableHours)
			assert.Equal(t, 10, a.DurationDays)
		}
	}
	assert.True(t, sawAbono)
}

func TestSchedule_RespectsGlobalConcurrencyCap(t *testing.T) {
	req := models.OptimizationRequest{
		Year:               2025,
		StrategyPreference: models.StrategyStandard30,
		ProjectContext:     &models.ProjectContext{MaxConcurrencyPercent: 100, PreferredStartWeekday: 1},
	}
	employees := []models.Employee{
		{ID: "e1", ClientID: "c1", HourlyRate: 100},
		{ID: "e2", ClientID: "c2", HourlyRate: 90},
	}

	allocations, _, ok := Schedule(req, employees)
	require.True(t, ok)
	assert.Len(t, allocations, 2)
}
