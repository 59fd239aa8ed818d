package commands

import (
	"context"
)

// AssignDeliveryPartnerCommandHandler handles delivery partner assignment.
// Assignment moves a pending delivery to "assigned" and records the partner
// name and tracking references; re-assignment while still "assigned" is
// allowed so a handover to another partner does not need a reset.
type AssignDeliveryPartnerCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAssignDeliveryPartnerCommandHandler creates a handler for partner
// assignment operations.
func NewAssignDeliveryPartnerCommandHandler(uowFactory DeliveryUoWFactory) AssignDeliveryPartnerCommandHandler {
	return AssignDeliveryPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner assignment command.
// Assignment after the parcel is already moving fails with
// InvalidTransitionError.
func (h *AssignDeliveryPartnerCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryPartnerCommand) error {
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

	if err = deliveryAggregate.AssignPartner(
		cmd.PartnerName(), cmd.TrackingNumber(), cmd.TrackingURL(),
	); err != nil {
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
