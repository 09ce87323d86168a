package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalesSummaryResponse holds the aggregated sales figures for one window.
// Cancelled orders are counted separately and excluded from the money totals.
type SalesSummaryResponse struct {
	From            time.Time
	To              time.Time
	OrdersPlaced    int64
	OrdersCancelled int64
	VehiclesSold    int64
	GrossSales      decimal.Decimal
	TaxCollected    decimal.Decimal
}

// GetSalesSummaryQueryHandler computes sales rollups straight from the orders
// tables. Read only, never touches the domain model.
type GetSalesSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetSalesSummaryQueryHandler creates a handler for sales summaries.
// Requires a GORM database connection for query execution.
func NewGetSalesSummaryQueryHandler(db *gorm.DB) GetSalesSummaryQueryHandler {
	return GetSalesSummaryQueryHandler{db: db}
}

// Handle executes the rollup for the query's window.
func (h GetSalesSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetSalesSummaryQuery,
) (SalesSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return SalesSummaryResponse{}, err
	}

	var totals struct {
		OrdersPlaced    int64
		OrdersCancelled int64
		GrossSales      decimal.Decimal
		TaxCollected    decimal.Decimal
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status <> 'cancelled') AS orders_placed,
			COUNT(*) FILTER (WHERE status = 'cancelled') AS orders_cancelled,
			COALESCE(SUM(total_amount) FILTER (WHERE status <> 'cancelled'), 0) AS gross_sales,
			COALESCE(SUM(tax_amount) FILTER (WHERE status <> 'cancelled'), 0) AS tax_collected
		FROM orders
		WHERE created_at >= ? AND created_at < ?
	`, query.From(), query.To()).Scan(&totals).Error
	if err != nil {
		return SalesSummaryResponse{}, err
	}

	var vehiclesSold int64
	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(oi.quantity), 0)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at >= ? AND o.created_at < ? AND o.status <> 'cancelled'
	`, query.From(), query.To()).Scan(&vehiclesSold).Error
	if err != nil {
		return SalesSummaryResponse{}, err
	}

	return SalesSummaryResponse{
		From:            query.From(),
		To:              query.To(),
		OrdersPlaced:    totals.OrdersPlaced,
		OrdersCancelled: totals.OrdersCancelled,
		VehiclesSold:    vehiclesSold,
		GrossSales:      totals.GrossSales,
		TaxCollected:    totals.TaxCollected,
	}, nil
}
