// Package paymentrepo provides data transfer objects and mapping functions
// for the append-only payment ledger.
package paymentrepo

import (
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents one ledger row in the payments table.
// Amount is signed: positive for captures, negative for refunds.
type PaymentDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;index"`
	Amount       decimal.Decimal `gorm:"type:numeric"`
	Method       int
	Status       int
	RefundAmount decimal.Decimal `gorm:"type:numeric"`
	RefundReason string
	CreatedAt    time.Time
}

// TableName specifies the database table name for ledger entries.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:           entry.ID().Bytes(),
		OrderID:      entry.OrderID().Bytes(),
		Amount:       entry.Amount(),
		Method:       int(entry.Method()),
		Status:       int(entry.Status()),
		RefundAmount: entry.RefundAmount().Amount(),
		RefundReason: entry.RefundReason(),
		CreatedAt:    entry.CreatedAt(),
	}
}

// toDomain converts a database DTO to a ledger entry using RestorePayment,
// which re-validates the sign conventions.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	refundAmount, err := kernel.NewMoney(dto.RefundAmount)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		orderID,
		dto.Amount,
		order.PaymentMethod(dto.Method),
		payment.EntryStatus(dto.Status),
		refundAmount,
		dto.RefundReason,
		dto.CreatedAt,
	)
}
