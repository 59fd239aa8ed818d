package pricingrepo

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/pricing"
	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCouponRepository implements CouponRepository using GORM.
// Read-only: coupons are written by a back office outside this service.
type GormCouponRepository struct {
	db *gorm.DB
}

// NewGormCouponRepository creates a new GORM coupon repository.
func NewGormCouponRepository(db *gorm.DB) *GormCouponRepository {
	return &GormCouponRepository{db: db}
}

// GetByCode retrieves a coupon by its normalized code.
func (r *GormCouponRepository) GetByCode(ctx context.Context, code string) (pricing.Coupon, error) {
	var dto CouponDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.Coupon{}, errs.NewObjectNotFoundError("coupon", code)
		}
		return pricing.Coupon{}, err
	}

	return couponToDomain(dto)
}

// GormOfferRepository implements OfferRepository using GORM.
type GormOfferRepository struct {
	db *gorm.DB
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB) *GormOfferRepository {
	return &GormOfferRepository{db: db}
}

// GetActiveForProduct retrieves the active offers scoped to the product's
// SKU or category. Picking the single applicable offer happens in the
// pricing domain, not here.
func (r *GormOfferRepository) GetActiveForProduct(
	ctx context.Context, sku, category string,
) ([]pricing.Offer, error) {
	var dtos []OfferDTO
	if err := r.db.WithContext(ctx).
		Where("is_active").
		Where(r.db.Where("product_sku = ?", sku).Or("category = ?", category)).
		Order("priority, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	offers := make([]pricing.Offer, 0, len(dtos))
	for _, dto := range dtos {
		offer, err := offerToDomain(dto)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}

	return offers, nil
}
