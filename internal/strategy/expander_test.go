package strategy

import (
	"testing"

	"github.com/mcordeiromrc/SmartVacations/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestExpand_StandardTable(t *testing.T) {
	cases := []struct {
		pref     models.Strategy
		periods  []int
		sellDays int
	}{
		{models.StrategyStandard30, []int{30}, 0},
		{models.StrategySell10, []int{20}, 10},
		{models.StrategySplit2Periods, []int{15, 15}, 0},
		{models.StrategySplit3Periods, []int{14, 8, 8}, 0},
	}
	emp := models.Employee{HourlyRate: 100}
	for _, c := range cases {
		exp := Expand(emp, c.pref, nil)
		assert.Equal(t, c.periods, exp.Periods, c.pref)
		assert.Equal(t, c.sellDays, exp.SellDays, c.pref)
	}
}

func TestExpand_SmartHybrid(t *testing.T) {
	highRate := models.Employee{HourlyRate: 250}
	exp := Expand(highRate, models.StrategySmartHybrid, nil)
	assert.Equal(t, models.StrategySell10, exp.Resolved)
	assert.Equal(t, 10, exp.SellDays)

	lowRate := models.Employee{HourlyRate: 100}
	exp = Expand(lowRate, models.StrategySmartHybrid, nil)
	assert.Equal(t, models.StrategyStandard30, exp.Resolved)
	assert.Equal(t, 0, exp.SellDays)
}

func TestExpand_PresetOverrides(t *testing.T) {
	emp := models.Employee{HourlyRate: 999}
	exp := Expand(emp, models.StrategyStandard30, []int{10, 10, 10})
	assert.Equal(t, []int{10, 10, 10}, exp.Periods)
	assert.Equal(t, 0, exp.SellDays)
}
