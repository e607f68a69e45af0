package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Mohajiro/moneyponey/models"
	"github.com/Mohajiro/moneyponey/store"
	"github.com/Mohajiro/moneyponey/utils"
)

// ============================================================================
// ERROR TAXONOMY
// ============================================================================

// ValidationError reports required create fields that were missing.
// It is raised before any store access.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// StoreError wraps any fault from the persistence layer. The wrapped
// detail is for logging; callers surface a generic server fault.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ============================================================================
// EXPENSE SERVICE
// ============================================================================

type ExpenseService struct {
	store  store.Store
	events EventPublisher // optional, nil disables publishing
}

func NewExpenseService(st store.Store, events EventPublisher) *ExpenseService {
	return &ExpenseService{store: st, events: events}
}

// List returns all expenses matching the filter in store order. It
// never mutates state; a store fault yields a StoreError and no
// partial results.
func (s *ExpenseService) List(ctx context.Context, f models.ExpenseFilter) ([]models.Expense, error) {
	expenses, err := s.store.ListExpenses(ctx, f)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return expenses, nil
}

// Create validates field presence, inserts the record and returns the
// store-assigned id. An amount that is empty or parses to zero counts
// as absent, not as a validation failure in its own right.
func (s *ExpenseService) Create(ctx context.Context, in models.ExpenseInput) (int64, error) {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Amount.IsZero() {
		missing = append(missing, "amount")
	}
	if in.Date == "" {
		missing = append(missing, "date")
	}
	if in.CategoryID == 0 {
		missing = append(missing, "category_id")
	}
	if len(missing) > 0 {
		return 0, &ValidationError{Missing: missing}
	}

	id, err := s.store.CreateExpense(ctx, in)
	if err != nil {
		return 0, &StoreError{Op: "create", Err: err}
	}

	s.publish(ctx, ExpenseCreated, id)
	return id, nil
}

// Update overwrites all four fields of the record matching id. Callers
// are presumed to supply complete data, so there is no presence check.
// The returned flag distinguishes a real edit from a no-op on an id
// that matched nothing.
func (s *ExpenseService) Update(ctx context.Context, id int64, in models.ExpenseInput) (bool, error) {
	found, err := s.store.UpdateExpense(ctx, id, in)
	if err != nil {
		return false, &StoreError{Op: "update", Err: err}
	}

	if found {
		s.publish(ctx, ExpenseUpdated, id)
	}
	return found, nil
}

// Delete removes the record matching id. Deleting an id that does not
// exist succeeds silently.
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteExpense(ctx, id); err != nil {
		return &StoreError{Op: "delete", Err: err}
	}

	s.publish(ctx, ExpenseDeleted, id)
	return nil
}

// Summary lists the filtered expenses and reduces them into the daily
// chart series and the running grand total.
func (s *ExpenseService) Summary(ctx context.Context, f models.ExpenseFilter) (models.ExpenseSummary, error) {
	expenses, err := s.List(ctx, f)
	if err != nil {
		return models.ExpenseSummary{}, err
	}

	days, err := DailyTotals(expenses)
	if err != nil {
		return models.ExpenseSummary{}, err
	}
	total, err := GrandTotal(expenses)
	if err != nil {
		return models.ExpenseSummary{}, err
	}

	return models.ExpenseSummary{Days: days, Total: total}, nil
}

// publish emits a mutation event on a best-effort basis. A broker
// failure must never fail the request that caused it.
func (s *ExpenseService) publish(ctx context.Context, eventType string, expenseID int64) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, NewExpenseEvent(eventType, expenseID)); err != nil {
		utils.SafeWarn("Failed to publish %s event for expense %d: %v", eventType, expenseID, err)
	}
}
