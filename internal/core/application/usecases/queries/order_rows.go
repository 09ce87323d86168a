package queries

import (
	"context"
	"time"

	"dealership/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRow mirrors the orders table columns the read side cares about.
type orderRow struct {
	ID           uuid.UUID
	OrderNumber  string
	UserID       uuid.UUID
	Status       string
	Subtotal     decimal.Decimal
	TaxAmount    decimal.Decimal
	TotalAmount  decimal.Decimal
	CardType     string
	CardLastFour string
	AdminNotes   string
	ProcessedAt  *time.Time
	ShippedAt    *time.Time
	DeliveredAt  *time.Time
	CreatedAt    time.Time
}

// orderItemRow mirrors the order_items table columns.
type orderItemRow struct {
	OrderID      uuid.UUID
	VehicleID    uuid.UUID
	VehicleBrand string
	VehicleModel string
	VehicleYear  int
	Quantity     int
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
}

const orderColumns = `
	id,
	order_number,
	user_id,
	status,
	subtotal,
	tax_amount,
	total_amount,
	card_type,
	card_last_four,
	admin_notes,
	processed_at,
	shipped_at,
	delivered_at,
	created_at`

func (r orderRow) toResponse() (OrderResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	userID, err := kernel.UUIDFromBytes(r.UserID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:           id,
		OrderNumber:  r.OrderNumber,
		UserID:       userID,
		Status:       r.Status,
		Subtotal:     r.Subtotal,
		TaxAmount:    r.TaxAmount,
		TotalAmount:  r.TotalAmount,
		CardType:     r.CardType,
		CardLastFour: r.CardLastFour,
		AdminNotes:   r.AdminNotes,
		ProcessedAt:  r.ProcessedAt,
		ShippedAt:    r.ShippedAt,
		DeliveredAt:  r.DeliveredAt,
		CreatedAt:    r.CreatedAt,
	}, nil
}

func (r orderItemRow) toResponse() (OrderItemResponse, error) {
	vehicleID, err := kernel.UUIDFromBytes(r.VehicleID[:])
	if err != nil {
		return OrderItemResponse{}, err
	}

	return OrderItemResponse{
		VehicleID:    vehicleID,
		VehicleBrand: r.VehicleBrand,
		VehicleModel: r.VehicleModel,
		VehicleYear:  r.VehicleYear,
		Quantity:     r.Quantity,
		UnitPrice:    r.UnitPrice,
		TotalPrice:   r.TotalPrice,
	}, nil
}

// attachItems loads the item snapshots for the given orders in one query and
// distributes them onto the responses keyed by raw order id.
func attachItems(
	ctx context.Context,
	db *gorm.DB,
	ids []uuid.UUID,
	responses map[uuid.UUID]*OrderResponse,
) error {
	if len(ids) == 0 {
		return nil
	}

	var itemRows []orderItemRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			vehicle_id,
			vehicle_brand,
			vehicle_model,
			vehicle_year,
			quantity,
			unit_price,
			total_price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY vehicle_id
	`, ids).Scan(&itemRows).Error
	if err != nil {
		return err
	}

	for _, itemRow := range itemRows {
		response, ok := responses[itemRow.OrderID]
		if !ok {
			continue
		}
		item, itemErr := itemRow.toResponse()
		if itemErr != nil {
			return itemErr
		}
		response.Items = append(response.Items, item)
	}
	return nil
}
