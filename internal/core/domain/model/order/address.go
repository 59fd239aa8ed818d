package order

import (
	"errors"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through the NewAddress constructor.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is an immutable snapshot of the shipping destination taken when
// the order is placed. Later edits to the customer's saved addresses never
// change an existing order.
type Address struct {
	name     string
	phone    string
	line1    string
	line2    string
	city     string
	postcode string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated shipping address snapshot.
// Recipient name, phone, first address line, and city are required;
// the second line and postcode are optional.
func NewAddress(name, phone, line1, line2, city, postcode string) (Address, error) {
	if name == "" {
		return Address{}, errs.NewValueIsRequiredError("recipient name")
	}
	if phone == "" {
		return Address{}, errs.NewValueIsRequiredError("recipient phone")
	}
	if line1 == "" {
		return Address{}, errs.NewValueIsRequiredError("address line 1")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}

	return Address{
		name:     name,
		phone:    phone,
		line1:    line1,
		line2:    line2,
		city:     city,
		postcode: postcode,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the address was created through the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Name returns the recipient name.
func (a Address) Name() string { return a.name }

// Phone returns the recipient phone number.
func (a Address) Phone() string { return a.phone }

// Line1 returns the first address line.
func (a Address) Line1() string { return a.line1 }

// Line2 returns the optional second address line.
func (a Address) Line2() string { return a.line2 }

// City returns the city.
func (a Address) City() string { return a.city }

// Postcode returns the optional postal code.
func (a Address) Postcode() string { return a.postcode }
