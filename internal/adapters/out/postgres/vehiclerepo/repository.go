package vehiclerepo

import (
	"context"
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Add saves a new vehicle to the database. Used by tests and seeding; the
// catalog itself is managed outside this service.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByIDs retrieves the vehicles for the given ids, ordered by id so that
// callers touching several rows always do so in the same order.
func (r *GormVehicleRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*vehicle.Vehicle, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).
		Where("id IN ?", raw).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

// ReserveStock decrements a vehicle's quantity with a compare-and-swap:
//
//	UPDATE vehicles SET quantity = quantity - ? WHERE id = ? AND quantity >= ?
//
// A zero affected-row count means either the row vanished or the remaining
// stock cannot cover the request; the follow-up read tells the two apart and
// reports the quantity still available.
func (r *GormVehicleRepository) ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ? AND quantity >= ?", id.Bytes(), quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewVehicleUnavailableError(id.String())
		}
		return err
	}
	return errs.NewInventoryError(id.String(), quantity, dto.Quantity)
}
