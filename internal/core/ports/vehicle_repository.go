package ports

import (
	"context"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the catalog access checkout needs: reading the
// vehicles a cart references and atomically reserving their stock.
type VehicleRepository interface {
	// GetByIDs retrieves the vehicles for the given ids. Missing ids are
	// simply absent from the result; the caller decides what a gap means.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*vehicle.Vehicle, error)

	// ReserveStock decrements a vehicle's quantity by the requested amount
	// using a compare-and-swap (quantity >= requested) so stock can never go
	// negative under concurrent checkouts. Returns errs.ErrInventoryShortage
	// when the guard fails and errs.ErrVehicleUnavailable when the row is gone.
	ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error
}
