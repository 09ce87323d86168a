// Package queries contains read-only operations for the CQRS architecture.
// Query handlers bypass the domain model and read the database directly,
// returning flat response structures shaped for the caller.
package queries

import (
	"time"

	"dealership/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Requester identifies who is asking. Identity is established by the
// surrounding application; query handlers only apply visibility rules.
type Requester struct {
	UserID  kernel.UUID
	IsAdmin bool
}

// Validate checks that the requester carries a usable identity.
func (r Requester) Validate() error {
	return r.UserID.Validate()
}

// OrderResponse is the read-model row for one order.
type OrderResponse struct {
	ID           kernel.UUID
	OrderNumber  string
	UserID       kernel.UUID
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
	Items        []OrderItemResponse
}

// OrderItemResponse is the read-model row for one order line snapshot.
type OrderItemResponse struct {
	VehicleID    kernel.UUID
	VehicleBrand string
	VehicleModel string
	VehicleYear  int
	Quantity     int
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
}
