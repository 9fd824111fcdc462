package fx

import (
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/admin"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/analytics"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/auth"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/budget"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/goal"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/report"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/transaction"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/user"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/routes"

	"go.uber.org/fx"
)

var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
	),
)

func newHandler(
	userSvc *user.Service,
	authSvc *auth.Service,
	transactionSvc *transaction.Service,
	reportSvc *report.Service,
	budgetSvc *budget.Service,
	goalSvc *goal.Service,
	analyticsSvc *analytics.Service,
	adminSvc *admin.Service,
) *routes.Handler {
	return routes.NewHandler(
		userSvc,
		authSvc,
		transactionSvc,
		reportSvc,
		budgetSvc,
		goalSvc,
		analyticsSvc,
		adminSvc,
	)
}
