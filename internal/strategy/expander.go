// Package strategy maps a strategy preference to a concrete list of vacation
// period durations, plus an optional sell-day count.
package strategy

import "github.com/mcordeiromrc/SmartVacations/internal/models"

// smartHybridThreshold is the hourly rate above which SMART_HYBRID resolves
// to SELL_10 instead of STANDARD_30.
const smartHybridThreshold = 180

// Expansion is the resolved strategy for one employee: the list of period
// durations to schedule, how many days (if any) are sold instead of taken,
// and the strategy actually applied (useful when SMART_HYBRID resolves
// per-employee).
type Expansion struct {
	Periods     []int
	SellDays    int
	Resolved    models.Strategy
}

// Expand resolves pref into an Expansion for employee. Explicit preset
// periods on the request override the strategy table entirely.
func Expand(employee models.Employee, pref models.Strategy, presetPeriods []int) Expansion {
	if len(presetPeriods) > 0 {
		periods := make([]int, len(presetPeriods))
		copy(periods, presetPeriods)
		return Expansion{Periods: periods, Resolved: pref}
	}

	resolved := pref
	if pref == models.StrategySmartHybrid {
		if employee.HourlyRate > smartHybridThreshold {
			resolved = models.StrategySell10
		} else {
			resolved = models.StrategyStandard30
		}
	}

	switch resolved {
	case models.StrategySell10:
		return Expansion{Periods: []int{20}, SellDays: 10, Resolved: resolved}
	case models.StrategySplit2Periods:
		return Expansion{Periods: []int{15, 15}, Resolved: resolved}
	case models.StrategySplit3Periods:
		return Expansion{Periods: []int{14, 8, 8}, Resolved: resolved}
	case models.StrategyStandard30:
		fallthrough
	default:
		return Expansion{Periods: []int{30}, Resolved: resolved}
	}
}
