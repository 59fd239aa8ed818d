// Package pricingrepo provides read-only repositories for coupon and offer
// definitions. Pricing rules are managed outside the order core; placement
// only looks them up.
package pricingrepo

import (
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

// CouponDTO represents one coupon definition in the coupons table.
type CouponDTO struct {
	Code          string `gorm:"primaryKey"`
	DiscountType  int
	Value         decimal.Decimal `gorm:"type:numeric"`
	MinOrderValue decimal.Decimal `gorm:"type:numeric"`
	MaxDiscount   decimal.Decimal `gorm:"type:numeric"`
	IsActive      bool
}

// TableName specifies the database table name for coupon definitions.
func (CouponDTO) TableName() string {
	return "coupons"
}

// OfferDTO represents one promotional offer in the offers table.
// Exactly one of ProductSKU or Category is set.
type OfferDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	Name         string
	ProductSKU   string `gorm:"index"`
	Category     string `gorm:"index"`
	DiscountType int
	Value        decimal.Decimal `gorm:"type:numeric"`
	MaxDiscount  decimal.Decimal `gorm:"type:numeric"`
	Priority     int
	IsActive     bool
}

// TableName specifies the database table name for offers.
func (OfferDTO) TableName() string {
	return "offers"
}

// couponToDomain converts a coupon row to its domain value object.
// The constructor re-validates the definition, so corrupt rows surface as
// errors instead of silently mispricing orders.
func couponToDomain(dto CouponDTO) (pricing.Coupon, error) {
	minOrderValue, err := kernel.NewMoney(dto.MinOrderValue)
	if err != nil {
		return pricing.Coupon{}, err
	}

	maxDiscount, err := kernel.NewMoney(dto.MaxDiscount)
	if err != nil {
		return pricing.Coupon{}, err
	}

	return pricing.NewCoupon(
		dto.Code,
		pricing.DiscountType(dto.DiscountType),
		dto.Value,
		minOrderValue,
		maxDiscount,
		dto.IsActive,
	)
}

// offerToDomain converts an offer row to its domain value object.
func offerToDomain(dto OfferDTO) (pricing.Offer, error) {
	maxDiscount, err := kernel.NewMoney(dto.MaxDiscount)
	if err != nil {
		return pricing.Offer{}, err
	}

	return pricing.NewOffer(
		dto.Name,
		dto.ProductSKU,
		dto.Category,
		pricing.DiscountType(dto.DiscountType),
		dto.Value,
		maxDiscount,
		dto.Priority,
		dto.IsActive,
	)
}
