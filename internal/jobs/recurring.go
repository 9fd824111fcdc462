package jobs

import (
	"context"
	"time"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/transaction"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/logger"

	"github.com/robfig/cron/v3"
)

// RecurringMaterializer periodically turns due recurring templates into
// concrete transactions.
type RecurringMaterializer struct {
	Transactions *transaction.Service
	Repository   transaction.Repository
	cron         *cron.Cron
}

func NewRecurringMaterializer(svc *transaction.Service, repo transaction.Repository) *RecurringMaterializer {
	return &RecurringMaterializer{
		Transactions: svc,
		Repository:   repo,
		cron:         cron.New(),
	}
}

// Start schedules the job with the given cron spec.
func (m *RecurringMaterializer) Start(spec string) error {
	_, err := m.cron.AddFunc(spec, func() {
		m.Run(context.Background(), time.Now())
	})
	if err != nil {
		return err
	}
	m.cron.Start()
	logger.Info().Str("spec", spec).Msg("Recurring transaction job scheduled")
	return nil
}

func (m *RecurringMaterializer) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
}

// Run materializes every template due at now. Per-template failures are
// logged and skipped so one bad row cannot stall the rest.
func (m *RecurringMaterializer) Run(ctx context.Context, now time.Time) {
	due, err := m.Repository.GetDueRecurring(ctx, now)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list due recurring transactions")
		return
	}

	for _, template := range due {
		if err := m.Transactions.MaterializeRecurring(ctx, template, now); err != nil {
			logger.Error().
				Err(err).
				Str("transaction_id", template.ID.String()).
				Msg("Failed to materialize recurring transaction")
			continue
		}
		logger.Info().
			Str("transaction_id", template.ID.String()).
			Msg("Recurring transaction materialized")
	}
}
