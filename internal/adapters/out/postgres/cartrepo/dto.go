// Package cartrepo persists shopping carts. Checkout only ever loads a user's
// cart and clears it; adding items is the surrounding application's job.
package cartrepo

import (
	"dealership/internal/core/domain/model/cart"
	"dealership/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database row for a user's cart.
type CartDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	Items []CartItemDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for carts.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one cart line.
type CartItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CartID    uuid.UUID `gorm:"type:uuid;index;not null"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null;check:quantity >= 1"`
}

// TableName specifies the database table name for cart items.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	items := make([]CartItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, CartItemDTO{
			ID:        uuid.New(),
			CartID:    aggregate.ID().Bytes(),
			VehicleID: item.VehicleID.Bytes(),
			Quantity:  item.Quantity,
		})
	}
	return CartDTO{
		ID:     aggregate.ID().Bytes(),
		UserID: aggregate.UserID().Bytes(),
		Items:  items,
	}
}

// toDomain converts a database row (with items) back to a cart aggregate.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]cart.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		vehicleID, itemErr := kernel.UUIDFromBytes(itemDTO.VehicleID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, cart.Item{VehicleID: vehicleID, Quantity: itemDTO.Quantity})
	}

	return cart.RestoreCart(id, userID, items)
}
