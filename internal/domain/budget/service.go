package budget

import (
	"context"
	"strings"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/report"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/shared"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/transaction"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/logger"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository   Repository
	Transactions report.TransactionReader
	UserChecker  *shared.UserCheckerService
}

func NewService(repo Repository, transactions report.TransactionReader, userChecker *shared.UserCheckerService) *Service {
	return &Service{Repository: repo, Transactions: transactions, UserChecker: userChecker}
}

func (s *Service) Create(ctx context.Context, b *Budget) error {
	b.Type = Types(strings.ToLower(string(b.Type)))
	if !b.Type.IsValid() {
		return appErrors.NewValidationError("type", "type must be either 'total' or 'category'")
	}
	if b.Month < 1 || b.Month > 12 {
		return appErrors.NewValidationError("month", "month must be between 1 and 12")
	}
	if b.Amount <= 0 {
		return appErrors.NewValidationError("amount", "amount must be a positive number")
	}

	if b.Type == TypeCategory {
		b.Category = strings.ToLower(b.Category)
		if !transaction.IsValidCategory(transaction.TypeExpense, b.Category) {
			return appErrors.NewValidationError("category", "category must be a valid expense category")
		}
	} else {
		b.Category = ""
	}

	if b.Currency == "" {
		b.Currency = "ILS"
	}
	b.Currency = strings.ToUpper(b.Currency)
	if !transaction.IsValidCurrency(b.Currency) {
		return appErrors.NewValidationError("currency", "currency must be one of: ILS, USD, EUR")
	}

	if err := s.UserChecker.EnsureUserExists(ctx, b.UserID); err != nil {
		return err
	}

	b.ID = pkg.GenerateULID()
	if err := s.Repository.Create(ctx, b); err != nil {
		return err
	}

	logger.Info().
		Str("budget_id", b.ID.String()).
		Int("userid", b.UserID).
		Msg("Budget created")
	return nil
}

func (s *Service) GetAll(ctx context.Context, filters Filters) ([]*Budget, error) {
	if filters.UserID != 0 {
		if err := s.UserChecker.EnsureUserExists(ctx, filters.UserID); err != nil {
			return nil, err
		}
	}
	return s.Repository.GetAll(ctx, filters)
}

func (s *Service) Update(ctx context.Context, id ulid.ULID, amount *float64, currency, category string) (*Budget, error) {
	b, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if amount != nil {
		if *amount <= 0 {
			return nil, appErrors.NewValidationError("amount", "amount must be a positive number")
		}
		b.Amount = *amount
	}
	if currency != "" {
		b.Currency = strings.ToUpper(currency)
		if !transaction.IsValidCurrency(b.Currency) {
			return nil, appErrors.NewValidationError("currency", "currency must be one of: ILS, USD, EUR")
		}
	}
	if category != "" && b.Type == TypeCategory {
		b.Category = strings.ToLower(category)
		if !transaction.IsValidCategory(transaction.TypeExpense, b.Category) {
			return nil, appErrors.NewValidationError("category", "category must be a valid expense category")
		}
	}

	if err := s.Repository.Update(ctx, b); err != nil {
		return nil, err
	}
	logger.Info().Str("budget_id", b.ID.String()).Msg("Budget updated")
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id ulid.ULID) error {
	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Str("budget_id", id.String()).Msg("Budget deleted")
	return nil
}

// Status computes spent-versus-allocated for every budget of the period.
func (s *Service) Status(ctx context.Context, userID, year, month int) (*PeriodStatus, error) {
	if month < 1 || month > 12 {
		return nil, appErrors.NewValidationError("month", "month must be between 1 and 12")
	}
	if err := s.UserChecker.EnsureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	budgets, err := s.Repository.GetAll(ctx, Filters{UserID: userID, Year: year, Month: month})
	if err != nil {
		return nil, err
	}

	start, end := report.MonthWindow(year, month)
	transactions, err := s.Transactions.GetInWindow(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	var total float64
	perCategory := make(map[string]float64)
	for _, tx := range transactions {
		if tx.Type != transaction.TypeExpense {
			continue
		}
		total += tx.Sum
		perCategory[tx.Category] += tx.Sum
	}

	statuses := make([]Status, 0, len(budgets))
	for _, b := range budgets {
		spent := total
		if b.Type == TypeCategory {
			spent = perCategory[b.Category]
		}
		statuses = append(statuses, Status{
			Budget:    b,
			Spent:     spent,
			Remaining: b.Amount - spent,
			Exceeded:  spent > b.Amount,
		})
	}

	return &PeriodStatus{
		UserID:  userID,
		Year:    year,
		Month:   month,
		Budgets: statuses,
		Total:   total,
	}, nil
}
