// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database row for an order aggregate.
// order_number carries the unique index that is the system-wide source of
// truth for order-number uniqueness.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber  string          `gorm:"size:32;uniqueIndex;not null"`
	UserID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	Status       string          `gorm:"size:16;index;not null"`
	Subtotal     decimal.Decimal `gorm:"type:numeric(14,2)"`
	TaxAmount    decimal.Decimal `gorm:"type:numeric(14,2)"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(14,2)"`
	Billing      AddressDTO      `gorm:"embedded;embeddedPrefix:billing_"`
	Shipping     AddressDTO      `gorm:"embedded;embeddedPrefix:shipping_"`
	CardType     string          `gorm:"size:16"`
	CardLastFour string          `gorm:"size:4"`
	AdminNotes   string
	ProcessedAt  *time.Time
	ShippedAt    *time.Time
	DeliveredAt  *time.Time
	CreatedAt    time.Time `gorm:"index"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one immutable order-line snapshot row.
type OrderItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index;not null"`
	VehicleID    uuid.UUID `gorm:"type:uuid;not null"`
	VehicleBrand string    `gorm:"size:64"`
	VehicleModel string    `gorm:"size:64"`
	VehicleYear  int
	Quantity     int
	UnitPrice    decimal.Decimal `gorm:"type:numeric(14,2)"`
	TotalPrice   decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for order item snapshots.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// AddressDTO is the embedded billing/shipping snapshot within the order row.
type AddressDTO struct {
	FirstName string `gorm:"size:64"`
	LastName  string `gorm:"size:64"`
	Email     string `gorm:"size:128"`
	Phone     string `gorm:"size:32"`
	Street    string `gorm:"size:128"`
	City      string `gorm:"size:64"`
	Province  string `gorm:"size:64"`
	Country   string `gorm:"size:64"`
	Zip       string `gorm:"size:16"`
}

func addressFromDomain(a order.Address) AddressDTO {
	return AddressDTO{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Phone:     a.Phone,
		Street:    a.Street,
		City:      a.City,
		Province:  a.Province,
		Country:   a.Country,
		Zip:       a.Zip,
	}
}

func addressToDomain(dto AddressDTO) order.Address {
	return order.Address{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Phone:     dto.Phone,
		Street:    dto.Street,
		City:      dto.City,
		Province:  dto.Province,
		Country:   dto.Country,
		Zip:       dto.Zip,
	}
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:           uuid.New(),
			OrderID:      aggregate.ID().Bytes(),
			VehicleID:    item.VehicleID().Bytes(),
			VehicleBrand: item.VehicleBrand(),
			VehicleModel: item.VehicleModel(),
			VehicleYear:  item.VehicleYear(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice().Decimal(),
			TotalPrice:   item.TotalPrice().Decimal(),
		})
	}

	totals := aggregate.Totals()
	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		OrderNumber:  aggregate.OrderNumber(),
		UserID:       aggregate.UserID().Bytes(),
		Status:       aggregate.Status().String(),
		Subtotal:     totals.Subtotal.Decimal(),
		TaxAmount:    totals.TaxAmount.Decimal(),
		TotalAmount:  totals.TotalAmount.Decimal(),
		Billing:      addressFromDomain(aggregate.Billing()),
		Shipping:     addressFromDomain(aggregate.Shipping()),
		CardType:     string(aggregate.Card().Brand),
		CardLastFour: aggregate.Card().LastFour,
		AdminNotes:   aggregate.AdminNotes(),
		ProcessedAt:  aggregate.ProcessedAt(),
		ShippedAt:    aggregate.ShippedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		CreatedAt:    aggregate.CreatedAt(),
		Items:        items,
	}
}

// toDomain converts a database row (with items) back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		vehicleID, itemErr := kernel.UUIDFromBytes(itemDTO.VehicleID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		unitPrice, itemErr := kernel.NewMoney(itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		totalPrice, itemErr := kernel.NewMoney(itemDTO.TotalPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.RestoreItem(
			vehicleID,
			itemDTO.VehicleBrand, itemDTO.VehicleModel,
			itemDTO.VehicleYear, itemDTO.Quantity,
			unitPrice, totalPrice,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	tax, err := kernel.NewMoney(dto.TaxAmount)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		userID,
		items,
		order.Totals{Subtotal: subtotal, TaxAmount: tax, TotalAmount: total},
		addressToDomain(dto.Billing),
		addressToDomain(dto.Shipping),
		order.CardSummary{Brand: payment.Brand(dto.CardType), LastFour: dto.CardLastFour},
		status,
		dto.AdminNotes,
		dto.ProcessedAt, dto.ShippedAt, dto.DeliveredAt,
		dto.CreatedAt,
	)
}
