package fx

import (
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/config"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/admin"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/analytics"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/auth"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/budget"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/goal"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/logs"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/report"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/shared"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/transaction"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/user"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/infrastructure"

	"go.uber.org/fx"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newUserServiceAdapter,
		newUserCheckerService,

		newAuthService,

		newTransactionService,

		newReportVariant,
		newReportGenerator,
		newReportService,

		newBudgetService,
		newGoalService,
		newAnalyticsService,
		newLogsService,
		newAdminService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newUserServiceAdapter(userSvc *user.Service) *user.UserServiceAdapter {
	return user.NewUserServiceAdapter(userSvc)
}

func newUserCheckerService(adapter *user.UserServiceAdapter) *shared.UserCheckerService {
	return shared.NewUserCheckerService(adapter)
}

func newAuthService(userSvc *user.Service, cfg *config.Config) *auth.Service {
	return auth.NewService(userSvc, cfg.JWT.Secret, cfg.JWT.ExpiresIn)
}

func newTransactionService(
	repo *infrastructure.TransactionRepository,
	userChecker *shared.UserCheckerService,
) *transaction.Service {
	return transaction.NewService(repo, userChecker)
}

func newReportVariant(cfg *config.Config) report.Variant {
	if cfg.Report.Variant == "extended" {
		return report.ExtendedVariant
	}
	return report.BasicVariant
}

func newReportGenerator(
	repo *infrastructure.TransactionRepository,
	variant report.Variant,
) *report.Generator {
	return report.NewGenerator(repo, variant)
}

func newReportService(
	repo *infrastructure.ReportRepository,
	generator *report.Generator,
	userChecker *shared.UserCheckerService,
) *report.Service {
	return report.NewService(repo, generator, userChecker, nil)
}

func newBudgetService(
	repo *infrastructure.BudgetRepository,
	transactionRepo *infrastructure.TransactionRepository,
	userChecker *shared.UserCheckerService,
) *budget.Service {
	return budget.NewService(repo, transactionRepo, userChecker)
}

func newGoalService(
	repo *infrastructure.GoalRepository,
	userChecker *shared.UserCheckerService,
) *goal.Service {
	return goal.NewService(repo, userChecker)
}

func newAnalyticsService(
	repo *infrastructure.TransactionRepository,
	userChecker *shared.UserCheckerService,
) *analytics.Service {
	return analytics.NewService(repo, repo, userChecker)
}

func newLogsService(repo *infrastructure.LogRepository) *logs.Service {
	return logs.NewService(repo)
}

func newAdminService(logsSvc *logs.Service) *admin.Service {
	return admin.NewService(logsSvc)
}
