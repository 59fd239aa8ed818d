package pricing

import (
	"errors"
	"sort"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrOfferIsNotConstructed is returned when an Offer was not created through
// the NewOffer constructor.
var ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer constructor")

// Offer is a promotional discount scoped to a product SKU or a category,
// applied automatically to the unit price before line aggregation. A product
// carries at most one active offer at a time; when several are eligible the
// one with the lowest priority number wins.
type Offer struct {
	name         string
	productSKU   string
	category     string
	discountType DiscountType
	value        decimal.Decimal
	maxDiscount  kernel.Money
	priority     int
	isActive     bool

	guard guard.ConstructorGuard
}

// NewOffer creates a validated offer. Exactly one of productSKU or category
// must be set to scope the offer. Lower priority numbers win when several
// offers match the same product.
func NewOffer(
	name string,
	productSKU, category string,
	discountType DiscountType,
	value decimal.Decimal,
	maxDiscount kernel.Money,
	priority int,
	isActive bool,
) (Offer, error) {
	if name == "" {
		return Offer{}, errs.NewValueIsRequiredError("offer name")
	}
	if (productSKU == "") == (category == "") {
		return Offer{}, errs.NewValueIsInvalidError("offer must be scoped to exactly one of product or category")
	}
	if err := discountType.Validate(); err != nil {
		return Offer{}, err
	}
	if err := validateDiscountValue(discountType, value); err != nil {
		return Offer{}, err
	}

	return Offer{
		name:         name,
		productSKU:   productSKU,
		category:     category,
		discountType: discountType,
		value:        value,
		maxDiscount:  maxDiscount,
		priority:     priority,
		isActive:     isActive,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the offer was created through the constructor.
func (o Offer) Validate() error {
	return o.guard.Validate(ErrOfferIsNotConstructed)
}

// Name returns the display name of the offer.
func (o Offer) Name() string { return o.name }

// ProductSKU returns the product scope; empty for category offers.
func (o Offer) ProductSKU() string { return o.productSKU }

// Category returns the category scope; empty for product offers.
func (o Offer) Category() string { return o.category }

// DiscountType returns how the offer value is interpreted.
func (o Offer) DiscountType() DiscountType { return o.discountType }

// Value returns the percentage or flat discount value.
func (o Offer) Value() decimal.Decimal { return o.value }

// MaxDiscount returns the cap on a percentage discount; zero means uncapped.
func (o Offer) MaxDiscount() kernel.Money { return o.maxDiscount }

// Priority returns the resolution priority; lower numbers win.
func (o Offer) Priority() int { return o.priority }

// IsActive reports whether the offer currently applies.
func (o Offer) IsActive() bool { return o.isActive }

// AppliesTo reports whether the offer's scope matches a product.
func (o Offer) AppliesTo(sku, category string) bool {
	if !o.isActive {
		return false
	}
	if o.productSKU != "" {
		return o.productSKU == sku
	}
	return o.category != "" && o.category == category
}

// Apply returns the unit price after the offer discount, capped and
// clamped so the result is never negative.
func (o Offer) Apply(price kernel.Money) kernel.Money {
	discount := discountOn(price, o.discountType, o.value, o.maxDiscount)
	return price.SubFloored(discount)
}

// ResolveOffer picks the offer that applies to a product: the first matching
// active offer when sorted by ascending priority. Returns nil when no offer
// applies, so callers can use the list price unchanged.
func ResolveOffer(offers []Offer, sku, category string) *Offer {
	candidates := make([]Offer, 0, len(offers))
	for _, offer := range offers {
		if offer.Validate() == nil && offer.AppliesTo(sku, category) {
			candidates = append(candidates, offer)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].priority < candidates[j].priority
	})
	return &candidates[0]
}
