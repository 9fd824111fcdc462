package fx

import (
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/config"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newUserRepository,
		newTransactionRepository,
		newReportRepository,
		newBudgetRepository,
		newGoalRepository,
		newLogRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return &infrastructure.UserRepository{DB: db}
}

func newTransactionRepository(db *gorm.DB) *infrastructure.TransactionRepository {
	return &infrastructure.TransactionRepository{DB: db}
}

func newReportRepository(db *gorm.DB) *infrastructure.ReportRepository {
	return &infrastructure.ReportRepository{DB: db}
}

func newBudgetRepository(db *gorm.DB) *infrastructure.BudgetRepository {
	return &infrastructure.BudgetRepository{DB: db}
}

func newGoalRepository(db *gorm.DB) *infrastructure.GoalRepository {
	return &infrastructure.GoalRepository{DB: db}
}

func newLogRepository(db *gorm.DB) *infrastructure.LogRepository {
	return &infrastructure.LogRepository{DB: db}
}
