package order

import (
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem")

// Item is an immutable snapshot of one order line, taken at order-creation
// time. The unit price and the denormalized vehicle attributes are frozen so
// that later catalog changes never retroactively alter historical orders.
type Item struct {
	vehicleID    kernel.UUID
	vehicleBrand string
	vehicleModel string
	vehicleYear  int
	quantity     int
	unitPrice    kernel.Money
	totalPrice   kernel.Money

	isConstructed bool
}

// NewItem creates an order-line snapshot. The line total is computed here,
// once, as unitPrice x quantity.
func NewItem(vehicleID kernel.UUID, brand, model string, year, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := vehicleID.Validate(); err != nil {
		return Item{}, err
	}
	if brand == "" {
		return Item{}, errs.NewValueIsRequiredError("vehicleBrand")
	}
	if model == "" {
		return Item{}, errs.NewValueIsRequiredError("vehicleModel")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not at least 1", quantity),
		)
	}

	return Item{
		vehicleID:     vehicleID,
		vehicleBrand:  brand,
		vehicleModel:  model,
		vehicleYear:   year,
		quantity:      quantity,
		unitPrice:     unitPrice,
		totalPrice:    unitPrice.MulInt(quantity),
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs an Item from persistence, keeping the stored
// total price rather than recomputing it.
func RestoreItem(
	vehicleID kernel.UUID,
	brand, model string,
	year, quantity int,
	unitPrice, totalPrice kernel.Money,
) (Item, error) {
	item, err := NewItem(vehicleID, brand, model, year, quantity, unitPrice)
	if err != nil {
		return Item{}, err
	}
	item.totalPrice = totalPrice
	return item, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// VehicleID returns the referenced vehicle's identifier.
func (i Item) VehicleID() kernel.UUID {
	return i.vehicleID
}

// VehicleBrand returns the brand frozen at order time.
func (i Item) VehicleBrand() string {
	return i.vehicleBrand
}

// VehicleModel returns the model frozen at order time.
func (i Item) VehicleModel() string {
	return i.vehicleModel
}

// VehicleYear returns the model year frozen at order time.
func (i Item) VehicleYear() int {
	return i.vehicleYear
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price frozen at order time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns the frozen line total.
func (i Item) TotalPrice() kernel.Money {
	return i.totalPrice
}
