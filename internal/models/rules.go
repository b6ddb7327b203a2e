package models

// VacationRules captures the labor rules a strategy expansion and scheduler
// must respect.
type VacationRules struct {
	StandardDays           int      `json:"standard_days" validate:"required,gt=0"`
	AllowSplit             bool     `json:"allow_split"`
	MinMainPeriod          int      `json:"min_main_period" validate:"gt=0"`
	MinOtherPeriod         int      `json:"min_other_period" validate:"gt=0"`
	SellDaysLimit          int      `json:"sell_days_limit" validate:"gte=0"`
	AllowStartBeforeHoliday bool    `json:"allow_start_before_holiday"`
	BlackoutDates          []string `json:"blackout_dates"`
}
