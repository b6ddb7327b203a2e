package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRequest() OptimizationRequest {
	return OptimizationRequest{
		Year: 2025,
		Rules: VacationRules{
			StandardDays:   30,
			MinMainPeriod:  14,
			MinOtherPeriod: 5,
		},
		StrategyPreference: StrategyStandard30,
		Employees: []Employee{
			{ID: "e1", Name: "Ana", AdmissionDate: "2020-01-01", HourlyRate: 100, ClientID: "c1"},
		},
	}
}

func TestValidate_RejectsInvalidConcurrencyPercent(t *testing.T) {
	req := baseRequest()
	req.ProjectContext = &ProjectContext{MaxConcurrencyPercent: 150}
	require.Error(t, req.Validate())

	_, err := req.ResolvedProjectContext()
	assert.Error(t, err)
}

func TestValidate_WindowEndBeforeStart(t *testing.T) {
	req := baseRequest()
	req.Windows = []MeasurementWindow{
		{ID: "w1", StartDate: "2025-06-01", EndDate: "2025-01-01"},
	}
	assert.Error(t, req.Validate())
}

func TestValidate_DuplicateWindowIDs(t *testing.T) {
	req := baseRequest()
	req.Windows = []MeasurementWindow{
		{ID: "w1", StartDate: "2025-01-01", EndDate: "2025-06-30"},
		{ID: "w1", StartDate: "2025-07-01", EndDate: "2025-12-31"},
	}
	assert.Error(t, req.Validate())
}

func TestResolvedProjectContext_MergesDefaults(t *testing.T) {
	req := baseRequest()
	resolved, err := req.ResolvedProjectContext()
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxConcurrencyPercent, resolved.MaxConcurrencyPercent)
	assert.Equal(t, DefaultPreferredStartWeekday, resolved.PreferredStartWeekday)
}

func TestResolvedProjectContext_CallerOverride(t *testing.T) {
	req := baseRequest()
	req.ProjectContext = &ProjectContext{MaxConcurrencyPercent: 25, PreferredStartWeekday: 2}
	resolved, err := req.ResolvedProjectContext()
	require.NoError(t, err)
	assert.Equal(t, 25, resolved.MaxConcurrencyPercent)
	assert.Equal(t, 2, resolved.PreferredStartWeekday)
}
