package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"tripledger/internal/core"
	"tripledger/internal/notify"
	"tripledger/internal/storage"
)

// ExpenseService manages expense records and the read models built from
// them. Record construction itself lives in core; this layer resolves the
// roster, persists and notifies.
type ExpenseService struct {
	store    storage.Store
	notifier notify.Notifier
	mu       *sync.Mutex
}

// Add builds an expense record from a form submission against the trip's
// roster and stores it. Validation failures write nothing and surface the
// combined message both as the error and as an error notification.
func (s *ExpenseService) Add(ctx context.Context, tripID string, form core.ExpenseForm) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var friends []core.Friend
	if err := s.store.Get(ctx, storage.KeyFriends, &friends); err != nil {
		return core.Expense{}, fmt.Errorf("load friends: %w", err)
	}
	roster := make([]core.Friend, 0)
	for _, f := range friends {
		if f.TripID == tripID {
			roster = append(roster, f)
		}
	}

	expense, err := core.BuildExpense(form, roster, tripID)
	if err != nil {
		s.notifier.Notify(ctx, err.Error(), notify.VariantError)
		return core.Expense{}, err
	}

	var expenses []core.Expense
	if err := s.store.Get(ctx, storage.KeyExpenses, &expenses); err != nil {
		return core.Expense{}, fmt.Errorf("load expenses: %w", err)
	}

	expense.ID = uuid.NewString()
	expenses = append(expenses, expense)
	if err := s.store.Set(ctx, storage.KeyExpenses, expenses); err != nil {
		s.notifier.Notify(ctx, "Failed to save expense", notify.VariantError)
		return core.Expense{}, fmt.Errorf("save expenses: %w", err)
	}

	s.notifier.Notify(ctx, "Expense added successfully!", notify.VariantSuccess)
	return expense, nil
}

// Delete removes one expense record.
func (s *ExpenseService) Delete(ctx context.Context, tripID, expenseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expenses []core.Expense
	if err := s.store.Get(ctx, storage.KeyExpenses, &expenses); err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}

	remaining := expenses[:0:0]
	for _, e := range expenses {
		if e.TripID == tripID && e.ID == expenseID {
			continue
		}
		remaining = append(remaining, e)
	}
	if len(remaining) == len(expenses) {
		return fmt.Errorf("expense %s: %w", expenseID, ErrNotFound)
	}

	if err := s.store.Set(ctx, storage.KeyExpenses, remaining); err != nil {
		s.notifier.Notify(ctx, "Failed to delete expense", notify.VariantError)
		return fmt.Errorf("save expenses: %w", err)
	}

	s.notifier.Notify(ctx, "Expense deleted", notify.VariantSuccess)
	return nil
}

// ListByTrip returns a trip's expenses newest first.
func (s *ExpenseService) ListByTrip(ctx context.Context, tripID string) ([]core.Expense, error) {
	expenses, err := s.tripExpenses(ctx, tripID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
	return expenses, nil
}

// GroupedByDate returns a trip's expenses bucketed by calendar day,
// newest day first.
func (s *ExpenseService) GroupedByDate(ctx context.Context, tripID string) ([]core.DateGroup, error) {
	expenses, err := s.tripExpenses(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return core.GroupByDate(expenses), nil
}

// GroupedByCategory returns a trip's expenses bucketed by category.
func (s *ExpenseService) GroupedByCategory(ctx context.Context, tripID string) ([]core.CategoryGroup, error) {
	expenses, err := s.tripExpenses(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return core.GroupByCategory(expenses), nil
}

// SplitBreakdown resolves one expense's split against the trip roster.
// An empty result means the expense has no renderable split.
func (s *ExpenseService) SplitBreakdown(ctx context.Context, tripID, expenseID string) ([]core.SplitEntry, error) {
	expenses, err := s.tripExpenses(ctx, tripID)
	if err != nil {
		return nil, err
	}

	var target *core.Expense
	for i := range expenses {
		if expenses[i].ID == expenseID {
			target = &expenses[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("expense %s: %w", expenseID, ErrNotFound)
	}

	var friends []core.Friend
	if err := s.store.Get(ctx, storage.KeyFriends, &friends); err != nil {
		return nil, fmt.Errorf("load friends: %w", err)
	}
	roster := make([]core.Friend, 0)
	for _, f := range friends {
		if f.TripID == tripID {
			roster = append(roster, f)
		}
	}

	return core.RenderSplitDetail(target.SplitDetails, roster), nil
}

// BudgetReport evaluates a trip's spend against its budget. A nil report
// means the trip has no budget set.
func (s *ExpenseService) BudgetReport(ctx context.Context, tripID string) (*core.BudgetStats, error) {
	var trips []core.Trip
	if err := s.store.Get(ctx, storage.KeyTrips, &trips); err != nil {
		return nil, fmt.Errorf("load trips: %w", err)
	}

	var trip *core.Trip
	for i := range trips {
		if trips[i].ID == tripID {
			trip = &trips[i]
			break
		}
	}
	if trip == nil {
		return nil, fmt.Errorf("trip %s: %w", tripID, ErrNotFound)
	}

	expenses, err := s.tripExpenses(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return core.EvaluateBudget(*trip, expenses), nil
}

func (s *ExpenseService) tripExpenses(ctx context.Context, tripID string) ([]core.Expense, error) {
	var expenses []core.Expense
	if err := s.store.Get(ctx, storage.KeyExpenses, &expenses); err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	scoped := make([]core.Expense, 0)
	for _, e := range expenses {
		if e.TripID == tripID {
			scoped = append(scoped, e)
		}
	}
	return scoped, nil
}
