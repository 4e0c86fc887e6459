package commands

import (
	"errors"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand requests moving an order to a new status.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	actor   user.Actor

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand parses status; unknown names fail with order.ErrInvalidStatus.
func NewChangeOrderStatusCommand(orderID kernel.UUID, status string, actor user.Actor) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		actor.Validate(),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	cmd.actor = actor

	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c ChangeOrderStatusCommand) Actor() user.Actor {
	return c.actor
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return err
	}
	c.status = parsed
	return nil
}
