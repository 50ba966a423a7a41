package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"faithcafe/internal/core/application/usecases/queries"
)

// Intervals configures how often each refresh job runs.
type Intervals struct {
	Board    time.Duration
	Tracking time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	boardRefreshJob    *BoardRefreshJob
	trackingRefreshJob *TrackingRefreshJob
}

// NewJobManager creates a job manager with all required jobs. Takes query
// handlers as dependencies to wire up the job execution.
func NewJobManager(
	boardHandler queries.GetOrderBoardQueryHandler,
	trackingHandler queries.GetCustomerTrackingQueryHandler,
	sessionHandler queries.GetSessionQueryHandler,
	intervals Intervals,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		boardRefreshJob:    NewBoardRefreshJob(boardHandler, intervals.Board, logger),
		trackingRefreshJob: NewTrackingRefreshJob(trackingHandler, sessionHandler, intervals.Tracking, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.boardRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start board refresh job: %w", err)
	}

	if err := jm.trackingRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.boardRefreshJob.Stop()
		return fmt.Errorf("failed to start tracking refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.trackingRefreshJob.Stop()
	jm.boardRefreshJob.Stop()
}
