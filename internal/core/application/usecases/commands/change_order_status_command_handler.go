package commands

import (
	"context"

	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
// When an order enters "confirmed" the handler also creates the delivery
// record for it, in the same transaction, so fulfillment can never observe
// a confirmed order without a delivery.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.StatusConfirmed)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
//	// Order is confirmed and its delivery exists in "pending" status
type ChangeOrderStatusCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for order status
// transitions. Requires a FulfillmentUoWFactory because confirmation spans
// the order and delivery aggregates.
func NewChangeOrderStatusCommandHandler(uowFactory FulfillmentUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Illegal transitions surface as InvalidTransitionError and leave the order
// unchanged.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	orderAggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderAggregate.ChangeStatus(cmd.Target()); err != nil {
		return err
	}

	if cmd.Target() == order.StatusConfirmed {
		if err = h.createDelivery(ctx, uow, orderAggregate); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *ChangeOrderStatusCommandHandler) createDelivery(
	ctx context.Context, uow FulfillmentUoW, orderAggregate *order.Order,
) error {
	codAmount := kernel.ZeroMoney()
	if orderAggregate.IsCOD() {
		codAmount = orderAggregate.Total()
	}

	newDelivery, err := delivery.NewDelivery(
		kernel.NewUUID(), orderAggregate.ID(), orderAggregate.IsCOD(), codAmount,
	)
	if err != nil {
		return err
	}

	return uow.DeliveryRepository().Add(ctx, newDelivery)
}
