package ports

import (
	"context"

	"dealership/internal/core/domain/model/cart"
	"dealership/internal/core/domain/model/kernel"
)

// CartRepository defines the read/clear contract checkout needs for carts.
// Cart creation and item management belong to the surrounding application.
type CartRepository interface {
	// GetByUserID retrieves the user's cart with all its items.
	// A user without a cart is indistinguishable from a user with an empty
	// one: both return a cart whose IsEmpty is true.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// Clear deletes every item of the given cart.
	Clear(ctx context.Context, cartID kernel.UUID) error
}
