// Package cart contains the shopping-cart aggregate consumed by checkout.
// Carts are created and filled by the surrounding application; checkout only
// reads them and empties them on success.
package cart

import (
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through NewCart or RestoreCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")

// Item is one cart line: a vehicle reference and a quantity of at least one.
type Item struct {
	VehicleID kernel.UUID
	Quantity  int
}

// Cart holds a single user's pending line items. Item order is not significant.
type Cart struct {
	id     kernel.UUID
	userID kernel.UUID
	items  []Item

	isConstructed bool
}

// NewCart creates a Cart for a user with the given items.
// Every item must reference a valid vehicle id and have quantity >= 1.
func NewCart(id, userID kernel.UUID, items []Item) (*Cart, error) {
	c := &Cart{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
		c.setItems(items),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCart reconstructs a Cart from persistence.
func RestoreCart(id, userID kernel.UUID, items []Item) (*Cart, error) {
	return NewCart(id, userID, items)
}

// Validate ensures the Cart was properly constructed.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// UserID returns the owning user's identifier.
func (c *Cart) UserID() kernel.UUID {
	return c.userID
}

// Items returns a copy of the cart's line items.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *Cart) setItems(items []Item) error {
	for _, item := range items {
		if err := item.VehicleID.Validate(); err != nil {
			return err
		}
		if item.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("%d is not at least 1", item.Quantity),
			)
		}
	}
	c.items = make([]Item, len(items))
	copy(c.items, items)
	return nil
}
