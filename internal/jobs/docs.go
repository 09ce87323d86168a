// Package jobs provides scheduled background tasks for the dealership system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the store.
//
// # Available Jobs
//
// 1. DailySalesReportJob - Runs once a day to log a sales rollup for the previous day
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(salesSummaryHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The report job uses the cron expression "0 6 * * *", firing at 06:00 UTC so
// the previous UTC day is complete when the rollup runs.
//
// # Error Handling
//
// The report job is read only, so every error it logs indicates a system
// issue rather than an expected business scenario.
package jobs
