package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrCollectCODCommandIsNotConstructed = errors.New(
	"CollectCODCommand must be created via NewCollectCODCommand constructor",
)

// CollectCODCommand represents confirmation that cash was collected for a
// cash-on-delivery delivery.
type CollectCODCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCollectCODCommand creates a command to record a COD collection.
// Validates that the delivery ID is valid.
func NewCollectCODCommand(deliveryID kernel.UUID) (CollectCODCommand, error) {
	codCommand := CollectCODCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := codCommand.setDeliveryID(deliveryID); err != nil {
		return CollectCODCommand{}, err
	}

	return codCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CollectCODCommand) Validate() error {
	return c.guard.Validate(ErrCollectCODCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery whose cash was collected.
func (c CollectCODCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *CollectCODCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
