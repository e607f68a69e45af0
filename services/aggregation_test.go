package services

import (
	"reflect"
	"testing"

	"github.com/Mohajiro/moneyponey/models"
)

func TestDailyTotals(t *testing.T) {
	expenses := []models.Expense{
		{ID: 1, Date: "2024-01-01", Amount: "10"},
		{ID: 2, Date: "2024-01-01", Amount: "5"},
		{ID: 3, Date: "2024-01-02", Amount: "3"},
	}

	days, err := DailyTotals(expenses)
	if err != nil {
		t.Fatalf("DailyTotals: %v", err)
	}

	want := []models.DailyTotal{
		{Date: "2024-01-01", Total: 15},
		{Date: "2024-01-02", Total: 3},
	}
	if !reflect.DeepEqual(days, want) {
		t.Errorf("series = %v, want %v", days, want)
	}
}

func TestDailyTotalsSortsChronologically(t *testing.T) {
	// fetch order deliberately reversed
	expenses := []models.Expense{
		{ID: 1, Date: "2024-03-10", Amount: "1"},
		{ID: 2, Date: "2024-01-02", Amount: "2"},
		{ID: 3, Date: "2024-02-20", Amount: "4"},
	}

	days, err := DailyTotals(expenses)
	if err != nil {
		t.Fatalf("DailyTotals: %v", err)
	}

	got := []string{days[0].Date, days[1].Date, days[2].Date}
	want := []string{"2024-01-02", "2024-02-20", "2024-03-10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("day order = %v, want %v", got, want)
	}
}

func TestDailyTotalsTruncatesDateTimes(t *testing.T) {
	expenses := []models.Expense{
		{ID: 1, Date: "2024-01-01T09:00:00Z", Amount: "2"},
		{ID: 2, Date: "2024-01-01T18:30:00Z", Amount: "3"},
	}

	days, err := DailyTotals(expenses)
	if err != nil {
		t.Fatalf("DailyTotals: %v", err)
	}
	if len(days) != 1 || days[0].Date != "2024-01-01" || days[0].Total != 5 {
		t.Errorf("series = %v, want single 2024-01-01 day totaling 5", days)
	}
}

func TestDailyTotalsEmptyInput(t *testing.T) {
	days, err := DailyTotals(nil)
	if err != nil {
		t.Fatalf("DailyTotals: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("series = %v, want empty", days)
	}
}

func TestDailyTotalsUnparseableAmount(t *testing.T) {
	expenses := []models.Expense{
		{ID: 1, Date: "2024-01-01", Amount: "10"},
		{ID: 7, Date: "2024-01-01", Amount: "not a number"},
	}

	if _, err := DailyTotals(expenses); err == nil {
		t.Fatal("expected a per-record error for the unparseable amount")
	}
}

func TestGrandTotal(t *testing.T) {
	expenses := []models.Expense{
		{ID: 1, Date: "2024-01-01", Amount: "10"},
		{ID: 2, Date: "2024-01-01", Amount: "5"},
		{ID: 3, Date: "2024-01-02", Amount: "3"},
	}

	total, err := GrandTotal(expenses)
	if err != nil {
		t.Fatalf("GrandTotal: %v", err)
	}
	if total != "18.00" {
		t.Errorf("total = %q, want 18.00", total)
	}
}

func TestGrandTotalEmptyInput(t *testing.T) {
	total, err := GrandTotal(nil)
	if err != nil {
		t.Fatalf("GrandTotal: %v", err)
	}
	if total != "0.00" {
		t.Errorf("total = %q, want 0.00", total)
	}
}

func TestGrandTotalUnparseableAmount(t *testing.T) {
	expenses := []models.Expense{{ID: 9, Date: "2024-01-01", Amount: "12,34"}}

	if _, err := GrandTotal(expenses); err == nil {
		t.Fatal("expected a per-record error for the unparseable amount")
	}
}
