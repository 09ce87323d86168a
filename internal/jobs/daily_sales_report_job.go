package jobs

import (
	"context"
	"log/slog"
	"time"

	"dealership/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// dailyReportSchedule fires at 06:00 UTC and reports on the previous calendar day.
const dailyReportSchedule = "0 6 * * *"

// DailySalesReportJob logs a sales rollup for the previous day.
// Read only: it aggregates placed orders, it never changes them.
type DailySalesReportJob struct {
	handler queries.GetSalesSummaryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewDailySalesReportJob creates the daily report job.
// Uses GetSalesSummaryQueryHandler to compute the previous day's figures.
func NewDailySalesReportJob(
	handler queries.GetSalesSummaryQueryHandler,
	logger *slog.Logger,
) *DailySalesReportJob {
	return &DailySalesReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "daily_sales_report_job"),
		now:     time.Now,
	}
}

// Start schedules the report to run once a day.
func (j *DailySalesReportJob) Start() error {
	_, err := j.cron.AddFunc(dailyReportSchedule, j.Run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily sales report job started")
	return nil
}

// Run computes and logs the summary for the previous UTC day.
// Exposed so the report can also be triggered on demand.
func (j *DailySalesReportJob) Run() {
	ctx := context.Background()

	to := j.now().UTC().Truncate(24 * time.Hour)
	from := to.Add(-24 * time.Hour)

	query, err := queries.NewGetSalesSummaryQuery(from, to)
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily sales report query rejected", "error", err)
		return
	}

	summary, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily sales report failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Daily sales report",
		"from", summary.From.Format(time.RFC3339),
		"to", summary.To.Format(time.RFC3339),
		"orders_placed", summary.OrdersPlaced,
		"orders_cancelled", summary.OrdersCancelled,
		"vehicles_sold", summary.VehiclesSold,
		"gross_sales", summary.GrossSales.StringFixed(2),
		"tax_collected", summary.TaxCollected.StringFixed(2),
	)
}

// Stop stops the daily report job.
func (j *DailySalesReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily sales report job stopped")
}
