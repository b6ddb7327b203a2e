package models

import (
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the struct-tag invariants declared on OptimizationRequest
// and its nested structs, then the cross-field invariants the tags cannot
// express (start ≤ end, unique window ids, min_main_period +
// min_other_period within standard_days).
func (r *OptimizationRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	if r.Rules.MinMainPeriod+r.Rules.MinOtherPeriod > r.Rules.StandardDays {
		return fmt.Errorf("invalid request: min_main_period + min_other_period exceeds standard_days")
	}

	seen := make(map[string]struct{}, len(r.Windows))
	for _, w := range r.Windows {
		if _, dup := seen[w.ID]; dup {
			return fmt.Errorf("invalid request: duplicate measurement window id %q", w.ID)
		}
		seen[w.ID] = struct{}{}

		start, err := time.Parse("2006-01-02", w.StartDate)
		if err != nil {
			return fmt.Errorf("invalid request: window %q start_date: %w", w.ID, err)
		}
		end, err := time.Parse("2006-01-02", w.EndDate)
		if err != nil {
			return fmt.Errorf("invalid request: window %q end_date: %w", w.ID, err)
		}
		if end.Before(start) {
			return fmt.Errorf("invalid request: window %q end_date before start_date", w.ID)
		}
	}

	if r.DateRangeStart != "" || r.DateRangeEnd != "" {
		start, err := time.Parse("2006-01-02", r.DateRangeStart)
		if err != nil {
			return fmt.Errorf("invalid request: date_range_start: %w", err)
		}
		end, err := time.Parse("2006-01-02", r.DateRangeEnd)
		if err != nil {
			return fmt.Errorf("invalid request: date_range_end: %w", err)
		}
		if end.Before(start) {
			return fmt.Errorf("invalid request: date_range_end before date_range_start")
		}
	}

	return nil
}

// ResolvedProjectContext merges a caller-supplied, possibly partial
// ProjectContext over the package defaults, so optional fields (concurrency
// percent, preferred weekday) are never left at their zero value.
func (r *OptimizationRequest) ResolvedProjectContext() (ProjectContext, error) {
	resolved := Defaults()
	if r.ProjectContext != nil {
		if err := mergo.Merge(&resolved, *r.ProjectContext, mergo.WithOverride); err != nil {
			return ProjectContext{}, fmt.Errorf("merging project context: %w", err)
		}
	}
	if resolved.MaxConcurrencyPercent < 1 || resolved.MaxConcurrencyPercent > 100 {
		return ProjectContext{}, fmt.Errorf("invalid project context: max_concurrency_percent %d out of [1,100]", resolved.MaxConcurrencyPercent)
	}
	return resolved, nil
}

// ResolvedSolverTimeout returns the request's solver timeout, defaulting to
// DefaultSolverTimeoutSeconds when unset.
func (r *OptimizationRequest) ResolvedSolverTimeout() int {
	if r.SolverTimeoutSeconds <= 0 {
		return DefaultSolverTimeoutSeconds
	}
	return r.SolverTimeoutSeconds
}
