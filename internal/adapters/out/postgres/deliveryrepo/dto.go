// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence.
package deliveryrepo

import (
	"time"

	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The unique order index enforces one delivery per order.
type DeliveryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Status         int       `gorm:"index"`
	PartnerName    string
	TrackingNumber string
	TrackingURL    string
	DeliveredAt    *time.Time
	IsCOD          bool
	CODAmount      decimal.Decimal `gorm:"type:numeric"`
	CODCollected   bool
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		Status:         int(aggregate.Status()),
		PartnerName:    aggregate.PartnerName(),
		TrackingNumber: aggregate.TrackingNumber(),
		TrackingURL:    aggregate.TrackingURL(),
		DeliveredAt:    aggregate.DeliveredAt(),
		IsCOD:          aggregate.IsCOD(),
		CODAmount:      aggregate.CODAmount().Amount(),
		CODCollected:   aggregate.CODCollected(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate using
// RestoreDelivery, which re-validates every invariant.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	codAmount, err := kernel.NewMoney(dto.CODAmount)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		delivery.Status(dto.Status),
		dto.PartnerName,
		dto.TrackingNumber,
		dto.TrackingURL,
		dto.DeliveredAt,
		dto.IsCOD,
		codAmount,
		dto.CODCollected,
	)
}
