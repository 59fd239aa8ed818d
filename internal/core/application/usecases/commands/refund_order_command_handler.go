package commands

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/payment"
	"commerce/internal/pkg/errs"
)

// RefundOrderCommandHandler handles refund requests against a paid order.
// The refundable amount is derived from the ledger, not from a stored
// counter: order total minus the sum of all prior refund entries. Appending
// the refund entry and updating the order's payment status happen in one
// transaction.
type RefundOrderCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
}

// NewRefundOrderCommandHandler creates a handler for order refunds.
func NewRefundOrderCommandHandler(uowFactory OrderPaymentUoWFactory) RefundOrderCommandHandler {
	return RefundOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the refund command.
// A request exceeding the remaining refundable amount fails with
// RefundExceedsCapturedError and writes nothing. Refunding the exact
// remainder moves the order to "refunded"; anything less moves it to
// "partially refunded".
func (h *RefundOrderCommandHandler) Handle(ctx context.Context, cmd RefundOrderCommand) error {
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

	paymentRepo := uow.PaymentRepository()
	entries, err := paymentRepo.GetAllForOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	available := orderAggregate.Total().SubFloored(sumRefunds(entries))
	if cmd.Amount().GreaterThan(available) {
		return errs.NewRefundExceedsCapturedError(cmd.Amount().String(), available.String())
	}

	if err = orderAggregate.ApplyRefund(cmd.Amount().IsEqual(available)); err != nil {
		return err
	}

	refund, err := payment.NewRefund(
		kernel.NewUUID(), orderAggregate.ID(), orderAggregate.PaymentMethod(), cmd.Amount(), cmd.Reason(),
	)
	if err != nil {
		return err
	}

	if err = paymentRepo.Add(ctx, refund); err != nil {
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

func sumRefunds(entries []*payment.Payment) kernel.Money {
	refunded := kernel.ZeroMoney()
	for _, entry := range entries {
		if entry.Status() == payment.EntryRefunded {
			refunded = refunded.Add(entry.RefundAmount())
		}
	}

	return refunded
}
