package commands

import (
	"context"
	"time"
)

// UpdateDeliveryStatusCommandHandler handles delivery tracking updates.
// Partner webhooks can skip intermediate stages, so the aggregate accepts
// any forward move; the handler stamps the delivered time when a move lands
// on "delivered".
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// status updates.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery status update command.
// Backward moves and moves out of a terminal status fail with
// InvalidTransitionError and leave the delivery unchanged.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	if err = deliveryAggregate.ChangeStatus(cmd.Target(), time.Now().UTC()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, deliveryAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
