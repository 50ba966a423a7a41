package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"faithcafe/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BoardRefreshJob periodically rebuilds the staff order board. Orders that
// cannot move to ready because no rider is assigned are surfaced in the
// log, mirroring the staff notification banner.
type BoardRefreshJob struct {
	handler  queries.GetOrderBoardQueryHandler
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBoardRefreshJob creates a job that refreshes the order board at the
// given interval.
func NewBoardRefreshJob(handler queries.GetOrderBoardQueryHandler, interval time.Duration, logger *slog.Logger) *BoardRefreshJob {
	return &BoardRefreshJob{
		handler:  handler,
		interval: interval,
		cron:     cron.New(),
		logger:   logger.With("component", "board_refresh_job"),
	}
}

// Start begins the board refresh job.
func (j *BoardRefreshJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()

		board, err := j.handler.Handle(ctx, queries.NewGetOrderBoardQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Board refresh failed", "error", err)
			return
		}

		needRider := 0
		for _, view := range board {
			if view.NeedsRider {
				needRider++
			}
		}
		if needRider > 0 {
			j.logger.WarnContext(ctx, "Orders waiting for a rider",
				"count", needRider)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board refresh job started",
		"interval", j.interval.String())
	return nil
}

// Stop stops the board refresh job.
func (j *BoardRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Board refresh job stopped")
}
