package queries

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrGetDeliveryProgressQueryIsNotConstructed = errors.New(
	"GetDeliveryProgressQuery must be created via NewGetDeliveryProgressQuery constructor",
)

// GetDeliveryProgressQuery retrieves the tracking state of one delivery,
// including its progress fraction along the happy path.
type GetDeliveryProgressQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryProgressQuery creates a query for a delivery's progress.
// Validates that the delivery ID is valid.
func NewGetDeliveryProgressQuery(deliveryID kernel.UUID) (GetDeliveryProgressQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryProgressQuery{}, err
	}

	return GetDeliveryProgressQuery{deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryProgressQueryIsNotConstructed)
}

// DeliveryID returns the identifier of the requested delivery.
func (q GetDeliveryProgressQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// GetDeliveryProgressQueryResponse represents a delivery's tracking state.
// Progress is a fraction in [0, 1]: the position of the current status on
// the pending to delivered path; failed deliveries report zero.
type GetDeliveryProgressQueryResponse struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	Status         string
	Progress       float64
	PartnerName    string
	TrackingNumber string
	TrackingURL    string
	DeliveredAt    *time.Time
}
