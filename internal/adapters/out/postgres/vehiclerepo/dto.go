// Package vehiclerepo persists the vehicle catalog rows checkout reads and
// whose stock it decrements. Catalog CRUD lives in the surrounding application;
// this repository only exposes what checkout needs.
package vehiclerepo

import (
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleDTO represents the database row for a catalog vehicle.
type VehicleDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Brand    string    `gorm:"size:64;not null"`
	Model    string    `gorm:"size:64;not null"`
	Year     int
	Price    decimal.Decimal `gorm:"type:numeric(14,2)"`
	Quantity int             `gorm:"not null;check:quantity >= 0"`
}

// TableName specifies the database table name for vehicles.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:       aggregate.ID().Bytes(),
		Brand:    aggregate.Brand(),
		Model:    aggregate.Model(),
		Year:     aggregate.Year(),
		Price:    aggregate.Price().Decimal(),
		Quantity: aggregate.Quantity(),
	}
}

// toDomain converts a database row back to a vehicle aggregate.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return vehicle.RestoreVehicle(id, dto.Brand, dto.Model, dto.Year, price, dto.Quantity)
}
