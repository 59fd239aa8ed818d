package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/pricing"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Resolves each line against the product catalog, applies the best active
// offer per product, validates and applies an optional coupon, computes
// totals through the pricing engine, and persists the order in "new" status.
//
// Stock shortfalls and ineligible coupons reject the whole placement; no
// partial order is ever written.
type PlaceOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	catalog       ports.ProductCatalog
	coupons       ports.CouponRepository
	offers        ports.OfferRepository
	pricingEngine services.PricingEngine
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires the catalog and pricing collaborators plus an OrderUoWFactory
// for transactional persistence.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductCatalog,
	coupons ports.CouponRepository,
	offers ports.OfferRepository,
	pricingEngine services.PricingEngine,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:    uowFactory,
		catalog:       catalog,
		coupons:       coupons,
		offers:        offers,
		pricingEngine: pricingEngine,
	}
}

// Handle processes the order placement command.
// Catalog, offer, and coupon reads happen before the transaction; only the
// order write itself runs inside it.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := h.resolveItems(ctx, cmd.Lines())
	if err != nil {
		return err
	}

	coupon, err := h.resolveCoupon(ctx, cmd.CouponCode())
	if err != nil {
		return err
	}

	totals, err := h.pricingEngine.ComputeTotals(items, coupon)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		generateOrderNumber(cmd.OrderID().String()),
		cmd.PaymentMethod(),
		cmd.Address(),
		items,
		totals.Subtotal,
		totals.Discount,
		totals.ShippingCharge,
		totals.Total,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// resolveItems turns requested lines into priced order items. The effective
// unit price is the catalog price after the single best applicable offer.
func (h *PlaceOrderCommandHandler) resolveItems(
	ctx context.Context, lines []OrderLine,
) ([]order.Item, error) {
	items := make([]order.Item, 0, len(lines))

	for _, line := range lines {
		product, err := h.catalog.GetBySKU(ctx, line.SKU)
		if err != nil {
			return nil, err
		}

		if line.Quantity > product.StockQuantity {
			return nil, errs.NewInsufficientStockError(line.SKU, line.Quantity, product.StockQuantity)
		}

		activeOffers, err := h.offers.GetActiveForProduct(ctx, product.SKU, product.Category)
		if err != nil {
			return nil, err
		}

		price := product.Price
		if offer := pricing.ResolveOffer(activeOffers, product.SKU, product.Category); offer != nil {
			price = offer.Apply(price)
		}

		item, err := order.NewItem(product.Name, product.VariantName, product.SKU, price, line.Quantity)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// resolveCoupon looks up an optional coupon code. An unknown code is
// reported as ineligible rather than not found so callers see one error
// family for every coupon rejection.
func (h *PlaceOrderCommandHandler) resolveCoupon(
	ctx context.Context, code string,
) (*pricing.Coupon, error) {
	if code == "" {
		return nil, nil //nolint:nilnil //absence of a coupon is not an error
	}

	coupon, err := h.coupons.GetByCode(ctx, pricing.NormalizeCode(code))
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewCouponIneligibleError(code, "unknown code")
		}
		return nil, err
	}

	return &coupon, nil
}

// generateOrderNumber derives the human-facing order number from the order
// identifier so retried placements of the same ID reuse the same number.
func generateOrderNumber(orderID string) string {
	compact := strings.ToUpper(strings.ReplaceAll(orderID, "-", ""))
	return fmt.Sprintf("ORD-%s", compact[:12])
}
