// Package jobs contains the scheduled background work of the application.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"lytefood/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderExpiryJob cancels orders that sat unpaid for too long. It runs every
// minute and sweeps everything older than the configured age in one pass.
type OrderExpiryJob struct {
	handler commands.ExpireStaleOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderExpiryJob creates the expiry job. maxAge is how long an unpaid
// order may wait before it is cancelled.
func NewOrderExpiryJob(
	handler commands.ExpireStaleOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *OrderExpiryJob {
	return &OrderExpiryJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(),
		logger:  logger.With("component", "order_expiry_job"),
	}
}

// Start schedules the job to run every minute.
func (j *OrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireStaleOrdersCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order expiry command rejected", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order expiry job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale orders", "count", expired)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry job.
func (j *OrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiry job stopped")
}
