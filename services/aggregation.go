package services

import (
	"fmt"
	"sort"

	"github.com/Mohajiro/moneyponey/models"
)

// DailyTotals reduces a record set into the per-day chart series: one
// (day, total) pair per distinct calendar day, where the day is the
// YYYY-MM-DD prefix of the record's date. The series is sorted
// chronologically so the chart renders the same regardless of fetch
// order.
//
// A record whose amount does not parse is a data-integrity fault and
// aborts the reduction instead of poisoning the sum.
func DailyTotals(expenses []models.Expense) ([]models.DailyTotal, error) {
	totals := make(map[string]float64, len(expenses))

	for _, e := range expenses {
		v, err := e.Amount.Float64()
		if err != nil {
			return nil, fmt.Errorf("expense %d has unparseable amount %q: %w", e.ID, e.Amount, err)
		}
		totals[models.Day(e.Date)] += v
	}

	days := make([]models.DailyTotal, 0, len(totals))
	for day, total := range totals {
		days = append(days, models.DailyTotal{Date: day, Total: total})
	}

	// YYYY-MM-DD sorts chronologically as text
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return days, nil
}

// GrandTotal sums every amount in the input and formats the result to
// two decimal places for display. Summation is plain floating-point
// addition; currency-display precision tolerates the rounding error.
func GrandTotal(expenses []models.Expense) (string, error) {
	var sum float64
	for _, e := range expenses {
		v, err := e.Amount.Float64()
		if err != nil {
			return "", fmt.Errorf("expense %d has unparseable amount %q: %w", e.ID, e.Amount, err)
		}
		sum += v
	}

	return fmt.Sprintf("%.2f", sum), nil
}
