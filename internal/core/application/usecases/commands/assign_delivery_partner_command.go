package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrAssignDeliveryPartnerCommandIsNotConstructed = errors.New(
	"AssignDeliveryPartnerCommand must be created via NewAssignDeliveryPartnerCommand constructor",
)

// AssignDeliveryPartnerCommand represents a request to hand a delivery to a
// logistics partner with its tracking references.
type AssignDeliveryPartnerCommand struct { //nolint:recvcheck //using for validation
	deliveryID     kernel.UUID
	partnerName    string
	trackingNumber string
	trackingURL    string

	guard guard.ConstructorGuard
}

// NewAssignDeliveryPartnerCommand creates a command to assign a delivery
// partner. Validates that the delivery ID is valid and a partner name is
// given; tracking references are optional because partners report them at
// different points.
func NewAssignDeliveryPartnerCommand(
	deliveryID kernel.UUID,
	partnerName string,
	trackingNumber string,
	trackingURL string,
) (AssignDeliveryPartnerCommand, error) {
	assignCommand := AssignDeliveryPartnerCommand{
		trackingNumber: trackingNumber,
		trackingURL:    trackingURL,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setDeliveryID(deliveryID),
		assignCommand.setPartnerName(partnerName),
	); err != nil {
		return AssignDeliveryPartnerCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryPartnerCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to assign.
func (c AssignDeliveryPartnerCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// PartnerName returns the logistics partner name.
func (c AssignDeliveryPartnerCommand) PartnerName() string {
	return c.partnerName
}

// TrackingNumber returns the partner's tracking number, possibly empty.
func (c AssignDeliveryPartnerCommand) TrackingNumber() string {
	return c.trackingNumber
}

// TrackingURL returns the partner's tracking URL, possibly empty.
func (c AssignDeliveryPartnerCommand) TrackingURL() string {
	return c.trackingURL
}

func (c *AssignDeliveryPartnerCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AssignDeliveryPartnerCommand) setPartnerName(partnerName string) error {
	if partnerName == "" {
		return errs.NewValueIsRequiredError("partner name")
	}

	c.partnerName = partnerName
	return nil
}
