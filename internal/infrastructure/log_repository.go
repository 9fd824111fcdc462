package infrastructure

import (
	"context"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/logs"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"

	"gorm.io/gorm"
)

type LogRepository struct {
	DB *gorm.DB
}

func (r *LogRepository) Insert(ctx context.Context, e *logs.Entry) error {
	if err := r.DB.WithContext(ctx).Create(e).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *LogRepository) Recent(ctx context.Context, filters logs.Filters) ([]*logs.Entry, error) {
	query := r.DB.WithContext(ctx).Model(&logs.Entry{})
	if filters.Level != "" {
		query = query.Where("level = ?", filters.Level)
	}
	if filters.Endpoint != "" {
		query = query.Where("endpoint = ?", filters.Endpoint)
	}

	var entries []*logs.Entry
	if err := query.Order("timestamp DESC").Limit(filters.Limit).Find(&entries).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return entries, nil
}
