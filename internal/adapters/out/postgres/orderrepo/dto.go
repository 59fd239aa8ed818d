// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary amounts are stored as numeric columns; enum fields are stored as
// their integer codes and re-validated on restore.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber    string    `gorm:"uniqueIndex"`
	Status         int       `gorm:"index"`
	PaymentStatus  int
	PaymentMethod  int
	Subtotal       decimal.Decimal `gorm:"type:numeric"`
	Discount       decimal.Decimal `gorm:"type:numeric"`
	ShippingCharge decimal.Decimal `gorm:"type:numeric"`
	Total          decimal.Decimal `gorm:"type:numeric"`
	Address        AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	Items          []ItemDTO       `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping address snapshot within the
// orders table.
type AddressDTO struct {
	Name     string
	Phone    string
	Line1    string
	Line2    string
	City     string
	Postcode string
}

// ItemDTO represents one priced order line in the order_items table.
// Lines are immutable after placement; rows are only ever inserted together
// with their order.
type ItemDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductName string
	VariantName string
	SKU         string
	Price       decimal.Decimal `gorm:"type:numeric"`
	Quantity    int
	LineTotal   decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			ProductName: item.ProductName(),
			VariantName: item.VariantName(),
			SKU:         item.SKU(),
			Price:       item.Price().Amount(),
			Quantity:    item.Quantity(),
			LineTotal:   item.LineTotal().Amount(),
		})
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		OrderNumber:    aggregate.OrderNumber(),
		Status:         int(aggregate.Status()),
		PaymentStatus:  int(aggregate.PaymentStatus()),
		PaymentMethod:  int(aggregate.PaymentMethod()),
		Subtotal:       aggregate.Subtotal().Amount(),
		Discount:       aggregate.Discount().Amount(),
		ShippingCharge: aggregate.ShippingCharge().Amount(),
		Total:          aggregate.Total().Amount(),
		Address: AddressDTO{
			Name:     aggregate.Address().Name(),
			Phone:    aggregate.Address().Phone(),
			Line1:    aggregate.Address().Line1(),
			Line2:    aggregate.Address().Line2(),
			City:     aggregate.Address().City(),
			Postcode: aggregate.Address().Postcode(),
		},
		Items:     itemDTOs,
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items using RestoreOrder,
// which re-validates every invariant.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(
		dto.Address.Name,
		dto.Address.Phone,
		dto.Address.Line1,
		dto.Address.Line2,
		dto.Address.City,
		dto.Address.Postcode,
	)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(
			itemDTO.ProductName, itemDTO.VariantName, itemDTO.SKU, price, itemDTO.Quantity,
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
	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return nil, err
	}
	shippingCharge, err := kernel.NewMoney(dto.ShippingCharge)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		order.PaymentMethod(dto.PaymentMethod),
		address,
		items,
		subtotal,
		discount,
		shippingCharge,
		total,
		dto.CreatedAt,
	)
}
