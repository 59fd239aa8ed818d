package paymentrepo

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/payment"
	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements the append-only PaymentRepository using
// GORM. There is no update or delete path; corrections are new entries.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment ledger repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a ledger entry.
func (r *GormPaymentRepository) Add(ctx context.Context, entry *payment.Payment) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewRemoteWriteFailureError("add payment entry", err)
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// GetAllForOrder retrieves all ledger entries for an order in append order.
func (r *GormPaymentRepository) GetAllForOrder(
	ctx context.Context, orderID kernel.UUID,
) ([]*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PaymentDTO
	if err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	entries := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
