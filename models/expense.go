package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ============================================================================
// EXPENSE MODEL
// ============================================================================

type Expense struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Amount     Amount `json:"amount"`
	Date       string `json:"date"` // YYYY-MM-DD
	CategoryID int    `json:"category_id"`
}

// ExpenseInput is the body of both POST and PUT /expenses.
// Field presence is checked by the service, not by binding tags,
// so that updates can skip the presence check entirely.
type ExpenseInput struct {
	Title      string `json:"title"`
	Amount     Amount `json:"amount"`
	Date       string `json:"date"`
	CategoryID int    `json:"category_id"`
}

// ExpenseFilter is the optional filter triple of GET /expenses.
// Zero values mean "filter absent".
type ExpenseFilter struct {
	CategoryID int
	DateFrom   string
	DateTo     string
}

// Day truncates a stored date to its calendar day (YYYY-MM-DD prefix).
func Day(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}

// ============================================================================
// AMOUNT
// ============================================================================

// Amount holds a decimal currency value as its textual form. The store
// keeps amounts in a NUMERIC column and hands them back as strings;
// clients may post either a JSON number or a numeric string, so both
// are accepted on decode.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a number or a numeric string: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

// Float64 parses the amount as a floating-point decimal.
func (a Amount) Float64() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(a)), 64)
}

// IsZero reports whether the amount counts as absent for the create
// presence check: empty, or parseable and equal to zero.
func (a Amount) IsZero() bool {
	s := strings.TrimSpace(string(a))
	if s == "" {
		return true
	}
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && v == 0
}

// ============================================================================
// CATEGORIES
// ============================================================================

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Categories is the closed display-time enumeration. It is not a
// database table and is not enforced on writes; the client's select
// input is the only gatekeeper.
var Categories = []Category{
	{ID: 1, Name: "groceries"},
	{ID: 2, Name: "transport"},
	{ID: 3, Name: "entertainment"},
	{ID: 4, Name: "utilities"},
}

// ============================================================================
// AGGREGATES
// ============================================================================

// DailyTotal is one point of the chart series: the sum of all amounts
// recorded on a single calendar day.
type DailyTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// ExpenseSummary is the response of GET /expenses/summary.
type ExpenseSummary struct {
	Days  []DailyTotal `json:"days"`
	Total string       `json:"total"`
}
