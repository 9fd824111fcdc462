package transaction

import (
	"context"
	"strings"
	"time"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/shared"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/logger"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository  Repository
	UserChecker *shared.UserCheckerService
}

func NewService(repo Repository, userChecker *shared.UserCheckerService) *Service {
	return &Service{Repository: repo, UserChecker: userChecker}
}

func (s *Service) Create(ctx context.Context, tx *Transaction) error {
	tx.Type = Types(strings.ToLower(string(tx.Type)))
	tx.Category = strings.ToLower(tx.Category)
	tx.Description = strings.TrimSpace(tx.Description)

	if !tx.Type.IsValid() {
		return appErrors.NewValidationError("type", "type must be either 'income' or 'expense'")
	}
	if !IsValidCategory(tx.Type, tx.Category) {
		return appErrors.NewValidationError("category", "category is not valid for the given type")
	}
	if tx.Sum < 0 {
		return appErrors.NewValidationError("sum", "sum must be a positive number")
	}
	if tx.Description == "" {
		return appErrors.NewValidationError("description", "description is required")
	}

	if err := s.UserChecker.EnsureUserExists(ctx, tx.UserID); err != nil {
		return err
	}

	now := pkg.SetTimestamps()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	} else if tx.CreatedAt.Before(now.Add(-time.Minute)) {
		// Entries may be dated now or in the future, never in the past.
		return appErrors.NewValidationError("created_at", "cannot add transactions with dates in the past")
	}

	if tx.Currency == "" {
		tx.Currency = "ILS"
	}
	tx.Currency = strings.ToUpper(tx.Currency)
	if !IsValidCurrency(tx.Currency) {
		return appErrors.NewValidationError("currency", "currency must be one of: ILS, USD, EUR")
	}

	if tx.Type == TypeExpense && tx.PaymentMethod != "" {
		tx.PaymentMethod = strings.ToLower(tx.PaymentMethod)
		if !IsValidPaymentMethod(tx.PaymentMethod) {
			return appErrors.NewValidationError("payment_method", "payment_method must be one of: credit_card, cash, bit, check")
		}
	} else {
		tx.PaymentMethod = ""
	}

	if tx.Recurring.Enabled {
		if !tx.Recurring.Frequency.IsValid() {
			return appErrors.NewValidationError("recurring.frequency", "frequency must be one of: daily, weekly, monthly, yearly")
		}
		if tx.Recurring.NextDate == nil {
			return appErrors.NewValidationError("recurring.next_date", "next_date is required when recurring is enabled")
		}
	} else {
		tx.Recurring = Recurring{}
	}

	cleaned := make([]string, 0, len(tx.Tags))
	for _, tag := range tx.Tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	tx.Tags = cleaned

	tx.ID = pkg.GenerateULID()
	tx.UpdatedAt = now

	if err := s.Repository.Create(ctx, tx); err != nil {
		return err
	}

	logger.Info().
		Str("transaction_id", tx.ID.String()).
		Str("type", string(tx.Type)).
		Int("userid", tx.UserID).
		Msg("Transaction created")
	return nil
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*Transaction, error) {
	return s.Repository.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context, filters Filters, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	if filters.UserID != 0 {
		if err := s.UserChecker.EnsureUserExists(ctx, filters.UserID); err != nil {
			return nil, 0, err
		}
	}
	if filters.Type != "" {
		filters.Type = Types(strings.ToLower(string(filters.Type)))
		if !filters.Type.IsValid() {
			return nil, 0, appErrors.NewValidationError("type", "type must be either 'income' or 'expense'")
		}
	}
	if filters.Category != "" {
		filters.Category = strings.ToLower(filters.Category)
	}
	if filters.Month != 0 && (filters.Month < 1 || filters.Month > 12) {
		return nil, 0, appErrors.NewValidationError("month", "month must be between 1 and 12")
	}
	return s.Repository.GetAll(ctx, filters, pagination)
}

// TotalExpenses sums every expense transaction of the user.
func (s *Service) TotalExpenses(ctx context.Context, userID int) (float64, error) {
	return s.Repository.SumByUserAndType(ctx, userID, TypeExpense)
}

func (s *Service) Delete(ctx context.Context, id ulid.ULID) error {
	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Str("transaction_id", id.String()).Msg("Transaction deleted")
	return nil
}

// MaterializeRecurring inserts a concrete transaction for a due recurring
// template and advances its next_date by one frequency step.
func (s *Service) MaterializeRecurring(ctx context.Context, template *Transaction, now time.Time) error {
	if !template.Recurring.Enabled || template.Recurring.NextDate == nil {
		return nil
	}

	materialized := *template
	materialized.ID = pkg.GenerateULID()
	materialized.CreatedAt = *template.Recurring.NextDate
	materialized.Recurring = Recurring{}
	materialized.UpdatedAt = now

	if err := s.Repository.Create(ctx, &materialized); err != nil {
		return err
	}

	next := advance(*template.Recurring.NextDate, template.Recurring.Frequency)
	template.Recurring.NextDate = &next
	template.UpdatedAt = now
	return s.Repository.Update(ctx, template)
}

func advance(from time.Time, freq Frequency) time.Time {
	switch freq {
	case FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}
