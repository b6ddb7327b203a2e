package models

import "strconv"

// AllocationType distinguishes a standard vacation block from a split
// sub-period or a monetized abono pecuniário block.
type AllocationType string

const (
	AllocationStandard AllocationType = "STANDARD"
	AllocationAbono    AllocationType = "ABONO_PECUNIARIO"
)

// SplitType returns the SPLIT_k label for the i-th (0-indexed) period of a
// split strategy.
func SplitType(index int) AllocationType {
	return AllocationType("SPLIT_" + strconv.Itoa(index+1))
}

// WindowBreakdown is the cost/hour contribution of one allocation to one
// measurement window, computed by intersecting the allocation interval with
// the window interval.
type WindowBreakdown struct {
	WindowID     string  `json:"window_id"`
	CostImpact   float64 `json:"cost_impact"`
	BillableHours int    `json:"billable_hours"`
}

// Allocation is a concrete scheduled vacation interval for one employee.
type Allocation struct {
	EmployeeID    string            `json:"employee_id"`
	StartDate     string            `json:"start_date"`
	EndDate       string            `json:"end_date"`
	DurationDays  int               `json:"duration_days"`
	CostImpact    float64           `json:"cost_impact"`
	BillableHours int               `json:"billable_hours"`
	Type          AllocationType    `json:"type"`
	WindowBreakdown []WindowBreakdown `json:"window_breakdown,omitempty"`
}
