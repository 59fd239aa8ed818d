package commands

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/payment"
)

// RecordPaymentCommandHandler handles payment attempt outcomes.
// A success appends a capture entry to the ledger and flips the order's
// payment status to "paid" in one transaction; a failure updates only the
// order. The ledger never records failed attempts.
type RecordPaymentCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
// Requires an OrderPaymentUoWFactory because a capture spans the order and
// its ledger.
func NewRecordPaymentCommandHandler(uowFactory OrderPaymentUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment outcome command.
// Recording a success against an already paid order fails in the aggregate,
// so duplicate captures cannot inflate the ledger.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	if cmd.Succeeded() {
		if err = orderAggregate.MarkPaid(); err != nil {
			return err
		}

		capture, captureErr := payment.NewCapture(
			kernel.NewUUID(), orderAggregate.ID(), cmd.Method(), cmd.Amount(),
		)
		if captureErr != nil {
			return captureErr
		}

		if err = uow.PaymentRepository().Add(ctx, capture); err != nil {
			return err
		}
	} else {
		if err = orderAggregate.MarkPaymentFailed(); err != nil {
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
