package ports

import (
	"context"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are append-mostly: they are created once by checkout and afterwards
// only their status, notes and lifecycle timestamps change.
type OrderRepository interface {
	// Add persists a new order together with its item snapshots.
	// Returns errs.ErrOrderNumberTaken when the order number collides with
	// the unique constraint, so the caller can regenerate and retry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists lifecycle changes (status, notes, timestamps) of an
	// existing order. The order must already exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// OrderNumberExists reports whether an order number is already in use.
	// This pre-check is an optimization only; the unique constraint remains
	// the source of truth under concurrency.
	OrderNumberExists(ctx context.Context, orderNumber string) (bool, error)
}
