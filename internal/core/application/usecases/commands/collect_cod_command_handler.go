package commands

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/payment"
)

// CollectCODCommandHandler handles cash-on-delivery settlement.
// One transaction flips the delivery's collected flag, appends a COD capture
// entry to the ledger, and marks the order paid. Collecting twice fails on
// the delivery aggregate, so the capture cannot be duplicated.
type CollectCODCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewCollectCODCommandHandler creates a handler for COD collection.
// Requires a SettlementUoWFactory because settlement spans all three
// aggregates.
func NewCollectCODCommandHandler(uowFactory SettlementUoWFactory) CollectCODCommandHandler {
	return CollectCODCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the COD collection command.
func (h *CollectCODCommandHandler) Handle(ctx context.Context, cmd CollectCODCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	deliveryAggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = deliveryAggregate.MarkCODCollected(); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	orderAggregate, err := orderRepo.Get(ctx, deliveryAggregate.OrderID())
	if err != nil {
		return err
	}

	if err = orderAggregate.MarkPaid(); err != nil {
		return err
	}

	capture, err := payment.NewCapture(
		kernel.NewUUID(), orderAggregate.ID(), order.MethodCOD, deliveryAggregate.CODAmount(),
	)
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, capture); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, deliveryAggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
