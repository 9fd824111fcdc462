package fx

import (
	"context"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/config"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/transaction"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/infrastructure"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/jobs"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		newRecurringMaterializer,
	),
	fx.Invoke(
		scheduleRecurringJob,
	),
)

func newRecurringMaterializer(
	transactionSvc *transaction.Service,
	repo *infrastructure.TransactionRepository,
) *jobs.RecurringMaterializer {
	return jobs.NewRecurringMaterializer(transactionSvc, repo)
}

func scheduleRecurringJob(
	lc fx.Lifecycle,
	cfg *config.Config,
	materializer *jobs.RecurringMaterializer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return materializer.Start(cfg.Recurring.Spec)
		},
		OnStop: func(ctx context.Context) error {
			materializer.Stop()
			return nil
		},
	})
}
