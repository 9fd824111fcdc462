package budget_test

import (
	"context"
	"testing"
	"time"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/budget"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/shared"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/transaction"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeBudgetRepository struct {
	createFn func(ctx context.Context, b *budget.Budget) error
	getAllFn func(ctx context.Context, filters budget.Filters) ([]*budget.Budget, error)
}

func (f *fakeBudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	if f.createFn != nil {
		return f.createFn(ctx, b)
	}
	return nil
}

func (f *fakeBudgetRepository) Update(ctx context.Context, b *budget.Budget) error { return nil }
func (f *fakeBudgetRepository) Delete(ctx context.Context, id ulid.ULID) error     { return nil }

func (f *fakeBudgetRepository) GetByID(ctx context.Context, id ulid.ULID) (*budget.Budget, error) {
	return nil, appErrors.ErrBudgetNotFound
}

func (f *fakeBudgetRepository) GetAll(ctx context.Context, filters budget.Filters) ([]*budget.Budget, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, filters)
	}
	return nil, nil
}

type fakeWindowedReader struct {
	getInWindowFn func(ctx context.Context, userID int, from, to time.Time) ([]*transaction.Transaction, error)
}

func (f *fakeWindowedReader) GetInWindow(ctx context.Context, userID int, from, to time.Time) ([]*transaction.Transaction, error) {
	if f.getInWindowFn != nil {
		return f.getInWindowFn(ctx, userID, from, to)
	}
	return nil, nil
}

type fakeUserGetter struct{}

func (fakeUserGetter) Exists(ctx context.Context, userID int) error { return nil }

func TestCreateValidations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		budget *budget.Budget
	}{
		{
			name:   "unknown type",
			budget: &budget.Budget{UserID: 1, Year: 2025, Month: 6, Type: "weekly", Amount: 100},
		},
		{
			name:   "month out of range",
			budget: &budget.Budget{UserID: 1, Year: 2025, Month: 13, Type: "total", Amount: 100},
		},
		{
			name:   "non-positive amount",
			budget: &budget.Budget{UserID: 1, Year: 2025, Month: 6, Type: "total", Amount: 0},
		},
		{
			name:   "category budget with income category",
			budget: &budget.Budget{UserID: 1, Year: 2025, Month: 6, Type: "category", Category: "salary", Amount: 100},
		},
	}

	ctx := context.Background()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := budget.NewService(&fakeBudgetRepository{}, &fakeWindowedReader{},
				shared.NewUserCheckerService(fakeUserGetter{}))

			err := svc.Create(ctx, tt.budget)
			if err == nil {
				t.Fatal("expected error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected VALIDATION_ERROR, got %v", err)
			}
		})
	}
}

func TestCreateClearsCategoryOnTotalBudget(t *testing.T) {
	t.Parallel()

	var created *budget.Budget
	repo := &fakeBudgetRepository{
		createFn: func(ctx context.Context, b *budget.Budget) error {
			created = b
			return nil
		},
	}
	svc := budget.NewService(repo, &fakeWindowedReader{},
		shared.NewUserCheckerService(fakeUserGetter{}))

	err := svc.Create(context.Background(), &budget.Budget{
		UserID: 1, Year: 2025, Month: 6, Type: "total", Category: "food", Amount: 3000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Category != "" {
		t.Fatalf("total budget kept a category: %q", created.Category)
	}
	if pkg.IsEmptyULID(created.ID) {
		t.Fatal("expected a generated id")
	}
}

func TestStatusComputesSpending(t *testing.T) {
	t.Parallel()

	budgets := []*budget.Budget{
		{UserID: 1, Year: 2025, Month: 6, Type: budget.TypeTotal, Amount: 3000},
		{UserID: 1, Year: 2025, Month: 6, Type: budget.TypeCategory, Category: "food", Amount: 500},
		{UserID: 1, Year: 2025, Month: 6, Type: budget.TypeCategory, Category: "sports", Amount: 100},
	}
	repo := &fakeBudgetRepository{
		getAllFn: func(ctx context.Context, filters budget.Filters) ([]*budget.Budget, error) {
			return budgets, nil
		},
	}
	reader := &fakeWindowedReader{
		getInWindowFn: func(ctx context.Context, userID int, from, to time.Time) ([]*transaction.Transaction, error) {
			day := func(d int) time.Time {
				return time.Date(2025, time.June, d, 12, 0, 0, 0, time.Local)
			}
			return []*transaction.Transaction{
				{UserID: 1, Type: transaction.TypeExpense, Category: "food", Sum: 320, CreatedAt: day(3)},
				{UserID: 1, Type: transaction.TypeExpense, Category: "food", Sum: 250, CreatedAt: day(18)},
				{UserID: 1, Type: transaction.TypeExpense, Category: "housing", Sum: 2100, CreatedAt: day(1)},
				// Income never counts as spending.
				{UserID: 1, Type: transaction.TypeIncome, Category: "salary", Sum: 9000, CreatedAt: day(1)},
			}, nil
		},
	}
	svc := budget.NewService(repo, reader, shared.NewUserCheckerService(fakeUserGetter{}))

	status, err := svc.Status(context.Background(), 1, 2025, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if status.Total != 2670 {
		t.Fatalf("total spending = %v, want 2670", status.Total)
	}
	if len(status.Budgets) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(status.Budgets))
	}

	total := status.Budgets[0]
	if total.Spent != 2670 || total.Exceeded {
		t.Fatalf("total budget: spent=%v exceeded=%v", total.Spent, total.Exceeded)
	}

	food := status.Budgets[1]
	if food.Spent != 570 || !food.Exceeded || food.Remaining != -70 {
		t.Fatalf("food budget: spent=%v remaining=%v exceeded=%v",
			food.Spent, food.Remaining, food.Exceeded)
	}

	sports := status.Budgets[2]
	if sports.Spent != 0 || sports.Exceeded {
		t.Fatalf("sports budget: spent=%v exceeded=%v", sports.Spent, sports.Exceeded)
	}
}
