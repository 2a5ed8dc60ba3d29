package core

import "math"

// BudgetStatus is the three-tier spend classification.
type BudgetStatus string

const (
	BudgetGood    BudgetStatus = "good"
	BudgetWarning BudgetStatus = "warning"
	BudgetDanger  BudgetStatus = "danger"
)

// BudgetStats summarizes spend against a trip's budget ceiling.
type BudgetStats struct {
	TotalExpenses float64      `json:"totalExpenses"`
	Percentage    float64      `json:"percentage"`
	Remaining     float64      `json:"remaining"`
	Status        BudgetStatus `json:"status"`
}

// EvaluateBudget computes spend-to-budget stats for one trip, or nil when
// the trip has no budget set. Percentage is clamped to 100 for display,
// but the status tiers classify the raw ratio: below 50% good, below 75%
// warning, everything from 75% up danger. Remaining goes negative once
// spend exceeds the budget.
func EvaluateBudget(trip Trip, expenses []Expense) *BudgetStats {
	if trip.Budget <= 0 {
		return nil
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}

	raw := total / trip.Budget * 100
	status := BudgetGood
	switch {
	case raw < 50:
		status = BudgetGood
	case raw < 75:
		status = BudgetWarning
	default:
		status = BudgetDanger
	}

	return &BudgetStats{
		TotalExpenses: total,
		Percentage:    math.Min(raw, 100),
		Remaining:     trip.Budget - total,
		Status:        status,
	}
}
