package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Mohajiro/moneyponey/models"
)

// mockStore records calls and returns scripted results.
type mockStore struct {
	listResult []models.Expense
	listErr    error
	createID   int64
	createErr  error
	updateOK   bool
	updateErr  error
	deleteErr  error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	lastFilter models.ExpenseFilter
	lastInput  models.ExpenseInput
	lastID     int64
}

func (m *mockStore) ListExpenses(ctx context.Context, f models.ExpenseFilter) ([]models.Expense, error) {
	m.listCalls++
	m.lastFilter = f
	return m.listResult, m.listErr
}

func (m *mockStore) CreateExpense(ctx context.Context, in models.ExpenseInput) (int64, error) {
	m.createCalls++
	m.lastInput = in
	return m.createID, m.createErr
}

func (m *mockStore) UpdateExpense(ctx context.Context, id int64, in models.ExpenseInput) (bool, error) {
	m.updateCalls++
	m.lastID = id
	m.lastInput = in
	return m.updateOK, m.updateErr
}

func (m *mockStore) DeleteExpense(ctx context.Context, id int64) error {
	m.deleteCalls++
	m.lastID = id
	return m.deleteErr
}

// mockPublisher captures published events.
type mockPublisher struct {
	events []ExpenseEvent
	err    error
}

func (m *mockPublisher) Publish(ctx context.Context, event ExpenseEvent) error {
	m.events = append(m.events, event)
	return m.err
}

func (m *mockPublisher) Close() error { return nil }

func validInput() models.ExpenseInput {
	return models.ExpenseInput{
		Title:      "bus ticket",
		Amount:     "2.40",
		Date:       "2024-01-05",
		CategoryID: 2,
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*models.ExpenseInput)
		wantMissing []string
	}{
		{"missing title", func(in *models.ExpenseInput) { in.Title = "" }, []string{"title"}},
		{"missing amount", func(in *models.ExpenseInput) { in.Amount = "" }, []string{"amount"}},
		{"zero amount counts as absent", func(in *models.ExpenseInput) { in.Amount = "0" }, []string{"amount"}},
		{"missing date", func(in *models.ExpenseInput) { in.Date = "" }, []string{"date"}},
		{"missing category", func(in *models.ExpenseInput) { in.CategoryID = 0 }, []string{"category_id"}},
		{
			"everything missing",
			func(in *models.ExpenseInput) { *in = models.ExpenseInput{} },
			[]string{"title", "amount", "date", "category_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &mockStore{}
			svc := NewExpenseService(st, nil)

			in := validInput()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if len(verr.Missing) != len(tt.wantMissing) {
				t.Errorf("missing = %v, want %v", verr.Missing, tt.wantMissing)
			}
			if st.createCalls != 0 {
				t.Error("store must not be touched when validation fails")
			}
		})
	}
}

func TestCreateSuccess(t *testing.T) {
	st := &mockStore{createID: 42}
	pub := &mockPublisher{}
	svc := NewExpenseService(st, pub)

	id, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 42 {
		t.Errorf("id = %d, want 42", id)
	}
	if st.lastInput != validInput() {
		t.Errorf("stored input = %+v, want %+v", st.lastInput, validInput())
	}
	if len(pub.events) != 1 || pub.events[0].Type != ExpenseCreated || pub.events[0].ExpenseID != 42 {
		t.Errorf("events = %+v, want one %s for expense 42", pub.events, ExpenseCreated)
	}
}

func TestCreateStoreFailure(t *testing.T) {
	st := &mockStore{createErr: errors.New("connection refused")}
	svc := NewExpenseService(st, nil)

	_, err := svc.Create(context.Background(), validInput())

	var serr *StoreError
	if !errors.As(err, &serr) {
		t.Fatalf("error = %v, want StoreError", err)
	}
	if serr.Op != "create" {
		t.Errorf("op = %q, want create", serr.Op)
	}
}

func TestCreatePublishFailureDoesNotFailRequest(t *testing.T) {
	st := &mockStore{createID: 7}
	pub := &mockPublisher{err: errors.New("broker gone")}
	svc := NewExpenseService(st, pub)

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("Create must succeed despite publish failure, got %v", err)
	}
}

func TestList(t *testing.T) {
	stored := []models.Expense{
		{ID: 1, Title: "milk", Amount: "2.50", Date: "2024-01-01", CategoryID: 1},
	}
	st := &mockStore{listResult: stored}
	svc := NewExpenseService(st, nil)

	filter := models.ExpenseFilter{CategoryID: 1, DateFrom: "2024-01-01"}
	expenses, err := svc.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(expenses) != 1 || expenses[0].ID != 1 {
		t.Errorf("expenses = %+v, want the stored record", expenses)
	}
	if st.lastFilter != filter {
		t.Errorf("filter passed to store = %+v, want %+v", st.lastFilter, filter)
	}
}

func TestListStoreFailure(t *testing.T) {
	st := &mockStore{listErr: errors.New("timeout")}
	svc := NewExpenseService(st, nil)

	_, err := svc.List(context.Background(), models.ExpenseFilter{})

	var serr *StoreError
	if !errors.As(err, &serr) {
		t.Fatalf("error = %v, want StoreError", err)
	}
}

func TestUpdate(t *testing.T) {
	t.Run("existing id", func(t *testing.T) {
		st := &mockStore{updateOK: true}
		pub := &mockPublisher{}
		svc := NewExpenseService(st, pub)

		// update skips the presence check entirely
		found, err := svc.Update(context.Background(), 5, models.ExpenseInput{})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if !found {
			t.Error("found = false, want true")
		}
		if st.lastID != 5 {
			t.Errorf("id passed to store = %d, want 5", st.lastID)
		}
		if len(pub.events) != 1 || pub.events[0].Type != ExpenseUpdated {
			t.Errorf("events = %+v, want one %s", pub.events, ExpenseUpdated)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		st := &mockStore{updateOK: false}
		pub := &mockPublisher{}
		svc := NewExpenseService(st, pub)

		found, err := svc.Update(context.Background(), 999, validInput())
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if found {
			t.Error("found = true, want false")
		}
		if len(pub.events) != 0 {
			t.Errorf("no event expected for a no-op update, got %+v", pub.events)
		}
	})
}

func TestDelete(t *testing.T) {
	st := &mockStore{}
	pub := &mockPublisher{}
	svc := NewExpenseService(st, pub)

	if err := svc.Delete(context.Background(), 11); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if st.lastID != 11 {
		t.Errorf("id passed to store = %d, want 11", st.lastID)
	}
	if len(pub.events) != 1 || pub.events[0].Type != ExpenseDeleted {
		t.Errorf("events = %+v, want one %s", pub.events, ExpenseDeleted)
	}
}

func TestSummary(t *testing.T) {
	st := &mockStore{listResult: []models.Expense{
		{ID: 1, Date: "2024-01-01", Amount: "10"},
		{ID: 2, Date: "2024-01-01", Amount: "5"},
		{ID: 3, Date: "2024-01-02", Amount: "3"},
	}}
	svc := NewExpenseService(st, nil)

	summary, err := svc.Summary(context.Background(), models.ExpenseFilter{})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.Total != "18.00" {
		t.Errorf("total = %q, want 18.00", summary.Total)
	}
	if len(summary.Days) != 2 || summary.Days[0].Total != 15 || summary.Days[1].Total != 3 {
		t.Errorf("days = %+v, want [15, 3]", summary.Days)
	}
}

func TestSummaryEmpty(t *testing.T) {
	st := &mockStore{}
	svc := NewExpenseService(st, nil)

	summary, err := svc.Summary(context.Background(), models.ExpenseFilter{})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.Total != "0.00" {
		t.Errorf("total = %q, want 0.00", summary.Total)
	}
	if len(summary.Days) != 0 {
		t.Errorf("days = %+v, want empty", summary.Days)
	}
}
