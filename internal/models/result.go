package models

// MonthAbbreviations are the 3-letter Portuguese month keys used in the
// monthly cash-flow roll-up, indexed by time.Month (1-12) at position
// month-1.
var MonthAbbreviations = [12]string{
	"JAN", "FEV", "MAR", "ABR", "MAI", "JUN",
	"JUL", "AGO", "SET", "OUT", "NOV", "DEZ",
}

// OptimizationResult is the external result contract (§6).
type OptimizationResult struct {
	TotalImpact              float64            `json:"total_impact"`
	FinancialSavings         float64            `json:"financial_savings"`
	Allocations              []Allocation       `json:"allocations"`
	CLTComplianceCheck       bool               `json:"clt_compliance_check"`
	HolidayConflictsAvoided  int                `json:"holiday_conflicts_avoided"`
	MonthlyRevenueTarget     float64            `json:"monthly_revenue_target"`
	MonthlyCashFlow          map[string]float64 `json:"monthly_cash_flow"`
	SolverMethod             SolverMethod       `json:"solver_method"`
	OptimizationTimeSeconds  float64            `json:"optimization_time_seconds"`
}
