package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"faithcafe/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// TrackingRefreshJob periodically rebuilds the tracking view for the
// logged-in customer so the delivery status and ETA stay current between
// page loads.
type TrackingRefreshJob struct {
	tracking queries.GetCustomerTrackingQueryHandler
	session  queries.GetSessionQueryHandler
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewTrackingRefreshJob creates a job that refreshes customer tracking at
// the given interval.
func NewTrackingRefreshJob(
	tracking queries.GetCustomerTrackingQueryHandler,
	session queries.GetSessionQueryHandler,
	interval time.Duration,
	logger *slog.Logger,
) *TrackingRefreshJob {
	return &TrackingRefreshJob{
		tracking: tracking,
		session:  session,
		interval: interval,
		cron:     cron.New(),
		logger:   logger.With("component", "tracking_refresh_job"),
	}
}

// Start begins the tracking refresh job. Ticks without a logged-in
// customer are no-ops.
func (j *TrackingRefreshJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()

		sessionView, err := j.session.Handle(ctx, queries.NewGetSessionQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Tracking refresh failed to read session", "error", err)
			return
		}
		if sessionView.CurrentUser == nil {
			return
		}

		query, err := queries.NewGetCustomerTrackingQuery(sessionView.CurrentUser.Username)
		if err != nil {
			j.logger.ErrorContext(ctx, "Tracking refresh failed", "error", err)
			return
		}

		view, err := j.tracking.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Tracking refresh failed", "error", err)
			return
		}

		if view.Tracked != nil {
			j.logger.DebugContext(ctx, "Tracking refreshed",
				"order", view.Tracked.ID,
				"status", view.Tracked.Status,
				"eta", view.Tracked.ETA)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking refresh job started",
		"interval", j.interval.String())
	return nil
}

// Stop stops the tracking refresh job.
func (j *TrackingRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking refresh job stopped")
}
