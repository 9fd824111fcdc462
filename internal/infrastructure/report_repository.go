package infrastructure

import (
	"context"
	"errors"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/report"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"

	"gorm.io/gorm"
)

// ReportRepository persists cached report rows. The composite unique index
// on (user_id, year, month) is the only guard against concurrent
// cache-fills; a losing insert surfaces as report.ErrDuplicateReport.
type ReportRepository struct {
	DB *gorm.DB
}

func (r *ReportRepository) Find(ctx context.Context, userID, year, month int) (*report.Report, error) {
	var row report.Report
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return &row, nil
}

func (r *ReportRepository) Insert(ctx context.Context, row *report.Report) error {
	if err := r.DB.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return report.ErrDuplicateReport
		}
		return appErrors.NewDatabaseError(err)
	}
	return nil
}
