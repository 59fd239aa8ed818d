package ports

import (
	"context"

	"commerce/internal/core/domain/model/pricing"
)

// CouponRepository defines read access to coupon definitions.
// Coupons are managed outside this core; placement only looks them up.
type CouponRepository interface {
	// GetByCode retrieves a coupon by its normalized (uppercase) code.
	// Returns an ObjectNotFoundError when no such coupon exists.
	GetByCode(ctx context.Context, code string) (pricing.Coupon, error)
}

// OfferRepository defines read access to promotional offers.
type OfferRepository interface {
	// GetActiveForProduct retrieves the active offers whose scope matches
	// the product's SKU or category. Resolution to the single applicable
	// offer happens in the pricing domain.
	GetActiveForProduct(ctx context.Context, sku, category string) ([]pricing.Offer, error)
}
