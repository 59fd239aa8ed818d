package queries

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrGetUncollectedCODQueryIsNotConstructed = errors.New(
	"GetUncollectedCODQuery must be created via NewGetUncollectedCODQuery constructor",
)

// GetUncollectedCODQuery retrieves delivered cash-on-delivery deliveries
// whose cash has not been collected yet. Used by the reconciliation report.
type GetUncollectedCODQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncollectedCODQuery creates a query for outstanding COD
// collections. This is a parameterless query.
func NewGetUncollectedCODQuery() GetUncollectedCODQuery {
	return GetUncollectedCODQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUncollectedCODQuery) Validate() error {
	return q.guard.Validate(ErrGetUncollectedCODQueryIsNotConstructed)
}

// GetUncollectedCODQueryResponse represents one delivered COD delivery
// still awaiting cash collection.
type GetUncollectedCODQueryResponse struct {
	DeliveryID  kernel.UUID
	OrderID     kernel.UUID
	PartnerName string
	CODAmount   string
	DeliveredAt time.Time
}
