package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/report"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/transaction"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

func (r *TransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	if err := r.DB.WithContext(ctx).Create(tx).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *TransactionRepository) Update(ctx context.Context, tx *transaction.Transaction) error {
	if err := r.DB.WithContext(ctx).Model(&transaction.Transaction{}).
		Where("id = ?", tx.ID.String()).
		Select("*").
		Updates(tx).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Where("id = ?", id.String()).Delete(&transaction.Transaction{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id ulid.ULID) (*transaction.Transaction, error) {
	var tx transaction.Transaction
	if err := r.DB.WithContext(ctx).Where("id = ?", id.String()).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTransactionNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return &tx, nil
}

func (r *TransactionRepository) GetAll(ctx context.Context, filters transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	query := r.DB.WithContext(ctx).Model(&transaction.Transaction{})
	if filters.UserID != 0 {
		query = query.Where("user_id = ?", filters.UserID)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", string(filters.Type))
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Year != 0 && filters.Month != 0 {
		start, end := report.MonthWindow(filters.Year, filters.Month)
		query = query.Where("created_at BETWEEN ? AND ?", start, end)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var transactions []*transaction.Transaction
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	return transactions, total, nil
}

func (r *TransactionRepository) GetByUser(ctx context.Context, userID int) ([]*transaction.Transaction, error) {
	var transactions []*transaction.Transaction
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return transactions, nil
}

func (r *TransactionRepository) GetInWindow(ctx context.Context, userID int, from, to time.Time) ([]*transaction.Transaction, error) {
	var transactions []*transaction.Transaction
	if err := r.DB.WithContext(ctx).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, from, to).
		Order("created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return transactions, nil
}

func (r *TransactionRepository) GetDueRecurring(ctx context.Context, now time.Time) ([]*transaction.Transaction, error) {
	var transactions []*transaction.Transaction
	if err := r.DB.WithContext(ctx).
		Where("recurring_enabled = ? AND recurring_next_date <= ?", true, now).
		Find(&transactions).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return transactions, nil
}

func (r *TransactionRepository) SumByUserAndType(ctx context.Context, userID int, txType transaction.Types) (float64, error) {
	var sum float64
	if err := r.DB.WithContext(ctx).Model(&transaction.Transaction{}).
		Where("user_id = ? AND type = ?", userID, string(txType)).
		Select("COALESCE(SUM(sum), 0)").
		Scan(&sum).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return sum, nil
}
