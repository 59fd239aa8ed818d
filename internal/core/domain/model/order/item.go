package order

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an immutable line-item snapshot created atomically with its order.
// Product name, price, and quantity are frozen at placement time; a later
// catalog change never alters an existing order. A correction requires a new
// order or a refund entry, not an edit.
//
// The unit price already includes any per-product offer that was active when
// the order was placed.
type Item struct {
	productName string
	variantName string
	sku         string
	price       kernel.Money
	quantity    int
	lineTotal   kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates a line-item snapshot. The line total is computed as
// price multiplied by quantity and is not accepted from the caller.
//
// Parameters:
//   - productName: display name of the product (required)
//   - variantName: display name of the variant (optional)
//   - sku: stock keeping unit (required)
//   - price: unit price after any product offer (non-negative by type)
//   - quantity: number of units (must be positive)
func NewItem(productName, variantName, sku string, price kernel.Money, quantity int) (Item, error) {
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("product name")
	}
	if sku == "" {
		return Item{}, errs.NewValueIsRequiredError("sku")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		productName: productName,
		variantName: variantName,
		sku:         sku,
		price:       price,
		quantity:    quantity,
		lineTotal:   price.MulInt(quantity),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductName returns the product display name at placement time.
func (i Item) ProductName() string { return i.productName }

// VariantName returns the variant display name at placement time.
func (i Item) VariantName() string { return i.variantName }

// SKU returns the stock keeping unit of the purchased product.
func (i Item) SKU() string { return i.sku }

// Price returns the unit price at placement time, after any product offer.
func (i Item) Price() kernel.Money { return i.price }

// Quantity returns the number of units purchased.
func (i Item) Quantity() int { return i.quantity }

// LineTotal returns price multiplied by quantity.
func (i Item) LineTotal() kernel.Money { return i.lineTotal }
