// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to replace the page-level polling of the original storefront.
//
// # Available Jobs
//
// 1. BoardRefreshJob - periodically rebuilds the staff order board and
// surfaces orders that are stuck without a rider.
// 2. TrackingRefreshJob - periodically rebuilds the tracking view for the
// logged-in customer so the delivery status stays current.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(boardHandler, trackingHandler, sessionHandler, intervals, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs log failures and keep running; a broken storage read on one
// tick is not fatal.
package jobs
