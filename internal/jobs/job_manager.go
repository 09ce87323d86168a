package jobs

import (
	"fmt"
	"log/slog"

	"dealership/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dailySalesReportJob *DailySalesReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	salesSummaryHandler queries.GetSalesSummaryQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dailySalesReportJob: NewDailySalesReportJob(salesSummaryHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dailySalesReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily sales report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dailySalesReportJob.Stop()
}
