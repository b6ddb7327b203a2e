package optimizer

import "github.com/mcordeiromrc/SmartVacations/internal/models"

// AIAllocator is the seam an AI-assisted allocator would implement: given a
// request and its employees, return allocations, accumulated financial
// savings, and whether it produced a usable result. No implementation ships
// in this repository — callers supplying a real language-model-backed
// allocator are the out-of-scope collaborator described by the dispatch
// order below.
type AIAllocator interface {
	Allocate(req models.OptimizationRequest, employees []models.Employee) (allocations []models.Allocation, financialSavings float64, ok bool)
}

// AI is the active allocator, always nil in this repository so the AI branch
// of Run's dispatch order is permanently skipped.
var AI AIAllocator
