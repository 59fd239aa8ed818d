package jobs

import (
	"context"
	"log/slog"

	"commerce/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// CODReconciliationJob periodically reports delivered COD deliveries whose
// cash has not been settled yet. The job is read-only; settlement itself
// happens through CollectCODCommand when the partner remits.
type CODReconciliationJob struct {
	handler queries.GetUncollectedCODQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCODReconciliationJob creates a job that reports outstanding COD
// collections. Uses GetUncollectedCODQueryHandler for the read.
func NewCODReconciliationJob(
	handler queries.GetUncollectedCODQueryHandler, logger *slog.Logger,
) *CODReconciliationJob {
	return &CODReconciliationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "cod_reconciliation_job"),
	}
}

// Start begins the reconciliation job to run at the top of every hour.
func (j *CODReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()
		query := queries.NewGetUncollectedCODQuery()

		outstanding, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "COD reconciliation job failed", "error", err)
			return
		}

		if len(outstanding) == 0 {
			j.logger.InfoContext(ctx, "No outstanding COD collections")
			return
		}

		for _, item := range outstanding {
			j.logger.WarnContext(ctx, "COD collection outstanding",
				"delivery_id", item.DeliveryID.String(),
				"order_id", item.OrderID.String(),
				"partner", item.PartnerName,
				"amount", item.CODAmount,
				"delivered_at", item.DeliveredAt,
			)
		}
		j.logger.InfoContext(ctx, "COD reconciliation completed", "outstanding", len(outstanding))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "COD reconciliation job started (running hourly)")
	return nil
}

// Stop stops the reconciliation job.
func (j *CODReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "COD reconciliation job stopped")
}
