package cartrepo

import (
	"context"
	"errors"

	"dealership/internal/core/domain/model/cart"
	"dealership/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Add saves a cart with its items. Used by tests and seeding; cart management
// belongs to the surrounding application.
func (r *GormCartRepository) Add(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByUserID retrieves the user's cart with its items. A user without a cart
// row gets a fresh empty cart, which checkout then rejects as empty.
func (r *GormCartRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cart.RestoreCart(kernel.NewUUID(), userID, nil)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Clear deletes every item of the given cart. Clearing an already empty cart
// is a no-op.
func (r *GormCartRepository) Clear(ctx context.Context, cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID.Bytes()).
		Delete(&CartItemDTO{}).Error
}
