package infrastructure

import (
	"context"
	"errors"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/budget"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type BudgetRepository struct {
	DB *gorm.DB
}

func (r *BudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	if err := r.DB.WithContext(ctx).Create(b).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *BudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	if err := r.DB.WithContext(ctx).Model(&budget.Budget{}).
		Where("id = ?", b.ID.String()).
		Updates(b).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *BudgetRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Where("id = ?", id.String()).Delete(&budget.Budget{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrBudgetNotFound
	}
	return nil
}

func (r *BudgetRepository) GetByID(ctx context.Context, id ulid.ULID) (*budget.Budget, error) {
	var b budget.Budget
	if err := r.DB.WithContext(ctx).Where("id = ?", id.String()).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrBudgetNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return &b, nil
}

func (r *BudgetRepository) GetAll(ctx context.Context, filters budget.Filters) ([]*budget.Budget, error) {
	query := r.DB.WithContext(ctx).Model(&budget.Budget{})
	if filters.UserID != 0 {
		query = query.Where("user_id = ?", filters.UserID)
	}
	if filters.Year != 0 {
		query = query.Where("year = ?", filters.Year)
	}
	if filters.Month != 0 {
		query = query.Where("month = ?", filters.Month)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", string(filters.Type))
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	var budgets []*budget.Budget
	if err := query.Order("year DESC, month DESC, type ASC, category ASC").Find(&budgets).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return budgets, nil
}
