package store

import (
	"fmt"
	"strings"

	"github.com/Mohajiro/moneyponey/models"
)

const listExpensesBase = `SELECT id, title, amount, date, category_id FROM expenses`

// BuildListQuery turns the optional filter triple into a SELECT with a
// conjunctive WHERE clause and the matching ordered argument list.
// Each present filter contributes exactly one clause and one bound
// parameter; absent filters contribute nothing. Filter values are
// never interpolated into the statement text.
//
// dateFrom > dateTo is accepted as-is and simply matches no rows.
func BuildListQuery(f models.ExpenseFilter) (string, []any) {
	var clauses []string
	args := make([]any, 0, 3)

	if f.CategoryID != 0 {
		args = append(args, f.CategoryID)
		clauses = append(clauses, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if f.DateFrom != "" {
		args = append(args, f.DateFrom)
		clauses = append(clauses, fmt.Sprintf("date >= $%d", len(args)))
	}
	if f.DateTo != "" {
		args = append(args, f.DateTo)
		clauses = append(clauses, fmt.Sprintf("date <= $%d", len(args)))
	}

	query := listExpensesBase
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	return query, args
}
