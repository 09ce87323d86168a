// Package vehicle contains the catalog aggregate seen by the checkout engine.
// Catalog management itself (CRUD, imports) lives outside this service; checkout
// only reads vehicles and decrements their stock.
package vehicle

import (
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not created
// through NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle")

// Vehicle is a catalog entry with a price and an integer stock level.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Brand and model must be non-empty
//   - Price is non-negative (enforced by kernel.Money)
//   - Quantity is never negative
type Vehicle struct {
	id       kernel.UUID
	brand    string
	model    string
	year     int
	price    kernel.Money
	quantity int

	isConstructed bool
}

// NewVehicle creates a Vehicle with validation of all catalog attributes.
func NewVehicle(id kernel.UUID, brand, model string, year int, price kernel.Money, quantity int) (*Vehicle, error) {
	v := &Vehicle{isConstructed: true}

	if err := errors.Join(
		v.setID(id),
		v.setBrand(brand),
		v.setModel(model),
		v.setYear(year),
		v.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	v.price = price
	return v, nil
}

// RestoreVehicle reconstructs a Vehicle from persistence.
// The same invariants apply as for NewVehicle.
func RestoreVehicle(id kernel.UUID, brand, model string, year int, price kernel.Money, quantity int) (*Vehicle, error) {
	return NewVehicle(id, brand, model, year, price, quantity)
}

// Validate ensures the Vehicle was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Brand returns the manufacturer name.
func (v *Vehicle) Brand() string {
	return v.brand
}

// Model returns the model name.
func (v *Vehicle) Model() string {
	return v.model
}

// Year returns the model year.
func (v *Vehicle) Year() int {
	return v.year
}

// Price returns the current catalog price.
func (v *Vehicle) Price() kernel.Money {
	return v.price
}

// Quantity returns the units currently in stock.
func (v *Vehicle) Quantity() int {
	return v.quantity
}

// CanFulfill reports whether the stock covers the requested quantity.
func (v *Vehicle) CanFulfill(requested int) bool {
	return requested >= 1 && v.quantity >= requested
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setBrand(brand string) error {
	if brand == "" {
		return errs.NewValueIsRequiredError("brand")
	}
	v.brand = brand
	return nil
}

func (v *Vehicle) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	v.model = model
	return nil
}

func (v *Vehicle) setYear(year int) error {
	if year < 1900 {
		return errs.NewValueIsInvalidErrorWithCause("year", fmt.Errorf("%d is not a plausible model year", year))
	}
	v.year = year
	return nil
}

func (v *Vehicle) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	v.quantity = quantity
	return nil
}
