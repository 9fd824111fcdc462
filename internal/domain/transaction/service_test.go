package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/shared"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/transaction"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeTransactionRepository struct {
	createFn          func(ctx context.Context, tx *transaction.Transaction) error
	updateFn          func(ctx context.Context, tx *transaction.Transaction) error
	getByIDFn         func(ctx context.Context, id ulid.ULID) (*transaction.Transaction, error)
	getDueRecurringFn func(ctx context.Context, now time.Time) ([]*transaction.Transaction, error)
}

func (f *fakeTransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	if f.createFn != nil {
		return f.createFn(ctx, tx)
	}
	return nil
}

func (f *fakeTransactionRepository) Update(ctx context.Context, tx *transaction.Transaction) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, tx)
	}
	return nil
}

func (f *fakeTransactionRepository) Delete(ctx context.Context, id ulid.ULID) error { return nil }

func (f *fakeTransactionRepository) GetByID(ctx context.Context, id ulid.ULID) (*transaction.Transaction, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeTransactionRepository) GetAll(ctx context.Context, filters transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	return nil, 0, nil
}

func (f *fakeTransactionRepository) GetByUser(ctx context.Context, userID int) ([]*transaction.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepository) GetInWindow(ctx context.Context, userID int, from, to time.Time) ([]*transaction.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepository) GetDueRecurring(ctx context.Context, now time.Time) ([]*transaction.Transaction, error) {
	if f.getDueRecurringFn != nil {
		return f.getDueRecurringFn(ctx, now)
	}
	return nil, nil
}

func (f *fakeTransactionRepository) SumByUserAndType(ctx context.Context, userID int, txType transaction.Types) (float64, error) {
	return 0, nil
}

type fakeUserGetter struct {
	existsFn func(ctx context.Context, userID int) error
}

func (f *fakeUserGetter) Exists(ctx context.Context, userID int) error {
	if f.existsFn != nil {
		return f.existsFn(ctx, userID)
	}
	return nil
}

func newService(repo *fakeTransactionRepository, users *fakeUserGetter) *transaction.Service {
	return transaction.NewService(repo, shared.NewUserCheckerService(users))
}

func TestCreateValidations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tx      *transaction.Transaction
		wantMsg string
	}{
		{
			name:    "unknown type",
			tx:      &transaction.Transaction{UserID: 1, Type: "loan", Category: "food", Sum: 10, Description: "x"},
			wantMsg: "type must be either 'income' or 'expense'",
		},
		{
			name:    "category not in vocabulary",
			tx:      &transaction.Transaction{UserID: 1, Type: "expense", Category: "gadgets", Sum: 10, Description: "x"},
			wantMsg: "category is not valid for the given type",
		},
		{
			name:    "income category on expense",
			tx:      &transaction.Transaction{UserID: 1, Type: "expense", Category: "salary", Sum: 10, Description: "x"},
			wantMsg: "category is not valid for the given type",
		},
		{
			name:    "negative sum",
			tx:      &transaction.Transaction{UserID: 1, Type: "expense", Category: "food", Sum: -5, Description: "x"},
			wantMsg: "sum must be a positive number",
		},
		{
			name:    "blank description",
			tx:      &transaction.Transaction{UserID: 1, Type: "expense", Category: "food", Sum: 10, Description: "   "},
			wantMsg: "description is required",
		},
		{
			name: "past date",
			tx: &transaction.Transaction{
				UserID: 1, Type: "expense", Category: "food", Sum: 10, Description: "x",
				CreatedAt: time.Now().AddDate(0, 0, -3),
			},
			wantMsg: "cannot add transactions with dates in the past",
		},
		{
			name:    "bad currency",
			tx:      &transaction.Transaction{UserID: 1, Type: "expense", Category: "food", Sum: 10, Description: "x", Currency: "GBP"},
			wantMsg: "currency must be one of: ILS, USD, EUR",
		},
	}

	ctx := context.Background()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(&fakeTransactionRepository{}, &fakeUserGetter{})

			err := svc.Create(ctx, tt.tx)
			if err == nil {
				t.Fatal("expected error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected VALIDATION_ERROR, got %s", appErr.Code)
			}
			if appErr.Message != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, appErr.Message)
			}
		})
	}
}

func TestCreateRejectsUnknownUser(t *testing.T) {
	t.Parallel()

	users := &fakeUserGetter{
		existsFn: func(ctx context.Context, userID int) error {
			return errors.New("no such row")
		},
	}
	repo := &fakeTransactionRepository{
		createFn: func(ctx context.Context, tx *transaction.Transaction) error {
			t.Fatal("transaction persisted for an unknown user")
			return nil
		},
	}
	svc := newService(repo, users)

	err := svc.Create(context.Background(), &transaction.Transaction{
		UserID: 99, Type: "expense", Category: "food", Sum: 10, Description: "Lunch",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, _ := appErrors.AsAppError(err)
	if appErr == nil || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestCreateNormalizesAndDefaults(t *testing.T) {
	t.Parallel()

	var created *transaction.Transaction
	repo := &fakeTransactionRepository{
		createFn: func(ctx context.Context, tx *transaction.Transaction) error {
			created = tx
			return nil
		},
	}
	svc := newService(repo, &fakeUserGetter{})

	err := svc.Create(context.Background(), &transaction.Transaction{
		UserID:      1,
		Type:        "EXPENSE",
		Category:    "Food",
		Sum:         12.5,
		Description: "  Lunch  ",
		Tags:        []string{" work ", "", "remote"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected the transaction to be persisted")
	}
	if created.Type != transaction.TypeExpense || created.Category != "food" {
		t.Fatalf("type/category not normalized: %s/%s", created.Type, created.Category)
	}
	if created.Description != "Lunch" {
		t.Fatalf("description not trimmed: %q", created.Description)
	}
	if created.Currency != "ILS" {
		t.Fatalf("expected default currency ILS, got %s", created.Currency)
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected a default creation date")
	}
	if pkg.IsEmptyULID(created.ID) {
		t.Fatal("expected a generated id")
	}
	if len(created.Tags) != 2 || created.Tags[0] != "work" || created.Tags[1] != "remote" {
		t.Fatalf("tags not cleaned: %v", created.Tags)
	}
}

func TestCreateRecurringRequiresSchedule(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeTransactionRepository{}, &fakeUserGetter{})

	err := svc.Create(context.Background(), &transaction.Transaction{
		UserID: 1, Type: "expense", Category: "housing", Sum: 2100, Description: "Rent",
		Recurring: transaction.Recurring{Enabled: true, Frequency: "monthly"},
	})
	if err == nil {
		t.Fatal("expected error for recurring without next_date")
	}

	err = svc.Create(context.Background(), &transaction.Transaction{
		UserID: 1, Type: "expense", Category: "housing", Sum: 2100, Description: "Rent",
		Recurring: transaction.Recurring{Enabled: true, Frequency: "fortnightly"},
	})
	if err == nil {
		t.Fatal("expected error for unknown frequency")
	}
}

func TestMaterializeRecurring(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.June, 1, 3, 0, 0, 0, time.Local)
	nextDate := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local)

	template := &transaction.Transaction{
		ID:          pkg.GenerateULID(),
		UserID:      1,
		Type:        transaction.TypeExpense,
		Category:    "housing",
		Sum:         2100,
		Description: "Rent",
		Recurring: transaction.Recurring{
			Enabled:   true,
			Frequency: transaction.FrequencyMonthly,
			NextDate:  &nextDate,
		},
	}

	var created *transaction.Transaction
	var updated *transaction.Transaction
	repo := &fakeTransactionRepository{
		createFn: func(ctx context.Context, tx *transaction.Transaction) error {
			created = tx
			return nil
		},
		updateFn: func(ctx context.Context, tx *transaction.Transaction) error {
			updated = tx
			return nil
		},
	}
	svc := newService(repo, &fakeUserGetter{})

	if err := svc.MaterializeRecurring(context.Background(), template, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("expected a concrete transaction")
	}
	if created.Recurring.Enabled {
		t.Fatal("materialized transaction must not itself recur")
	}
	if !created.CreatedAt.Equal(nextDate) {
		t.Fatalf("materialized date = %v, want %v", created.CreatedAt, nextDate)
	}
	if created.ID == template.ID {
		t.Fatal("materialized transaction must get its own id")
	}

	if updated == nil {
		t.Fatal("expected the template to be advanced")
	}
	wantNext := nextDate.AddDate(0, 1, 0)
	if !updated.Recurring.NextDate.Equal(wantNext) {
		t.Fatalf("next_date = %v, want %v", updated.Recurring.NextDate, wantNext)
	}
}
