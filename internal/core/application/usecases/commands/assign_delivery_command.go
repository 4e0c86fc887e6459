package commands

import (
	"errors"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand asks the restaurant's dispatcher to pick a delivery person.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   user.Actor

	guard guard.ConstructorGuard
}

func NewAssignDeliveryCommand(orderID kernel.UUID, actor user.Actor) (AssignDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return AssignDeliveryCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignDeliveryCommand) Actor() user.Actor {
	return c.actor
}
