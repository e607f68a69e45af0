package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Mohajiro/moneyponey/models"
)

// Store is the record store adapter boundary. It executes
// parameterized statements only and carries no business logic.
type Store interface {
	ListExpenses(ctx context.Context, f models.ExpenseFilter) ([]models.Expense, error)
	CreateExpense(ctx context.Context, in models.ExpenseInput) (int64, error)
	UpdateExpense(ctx context.Context, id int64, in models.ExpenseInput) (bool, error)
	DeleteExpense(ctx context.Context, id int64) error
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// ListExpenses returns every expense matching the filter, in store
// order. The result is never nil so the transport can serialize an
// empty array rather than null.
func (s *PostgresStore) ListExpenses(ctx context.Context, f models.ExpenseFilter) ([]models.Expense, error) {
	query, args := BuildListQuery(f)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var (
			e      models.Expense
			amount string
			date   time.Time
		)
		if err := rows.Scan(&e.ID, &e.Title, &amount, &date, &e.CategoryID); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Amount = models.Amount(amount)
		e.Date = date.Format("2006-01-02")
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return expenses, nil
}

// CreateExpense inserts a record and returns the store-assigned id.
func (s *PostgresStore) CreateExpense(ctx context.Context, in models.ExpenseInput) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO expenses (title, amount, date, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, in.Title, string(in.Amount), in.Date, in.CategoryID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}

	return id, nil
}

// UpdateExpense overwrites all four fields of the record matching id.
// It reports whether a row was actually touched so callers can tell a
// real edit from a no-op on a missing id.
func (s *PostgresStore) UpdateExpense(ctx context.Context, id int64, in models.ExpenseInput) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE expenses
		SET title = $1, amount = $2, date = $3, category_id = $4
		WHERE id = $5
	`, in.Title, string(in.Amount), in.Date, in.CategoryID, id)
	if err != nil {
		return false, fmt.Errorf("update expense %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update expense %d: rows affected: %w", id, err)
	}

	return affected > 0, nil
}

// DeleteExpense removes the record matching id. Deleting an id that
// does not exist is not an error.
func (s *PostgresStore) DeleteExpense(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}
	return nil
}
