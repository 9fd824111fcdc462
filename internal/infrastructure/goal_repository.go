package infrastructure

import (
	"context"
	"errors"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/goal"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type GoalRepository struct {
	DB *gorm.DB
}

func (r *GoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	if err := r.DB.WithContext(ctx).Create(g).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *GoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	if err := r.DB.WithContext(ctx).Model(&goal.Goal{}).
		Where("id = ?", g.ID.String()).
		Select("*").
		Updates(g).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Where("id = ?", id.String()).Delete(&goal.Goal{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrGoalNotFound
	}
	return nil
}

func (r *GoalRepository) GetByID(ctx context.Context, id ulid.ULID) (*goal.Goal, error) {
	var g goal.Goal
	if err := r.DB.WithContext(ctx).Where("id = ?", id.String()).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrGoalNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return &g, nil
}

func (r *GoalRepository) GetByUser(ctx context.Context, userID int, status goal.Status) ([]*goal.Goal, error) {
	query := r.DB.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var goals []*goal.Goal
	if err := query.Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return goals, nil
}
