package commands

import (
	"errors"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var ErrUpdateLocationCommandIsNotConstructed = errors.New(
	"UpdateLocationCommand must be created via NewUpdateLocationCommand constructor",
)

// UpdateLocationCommand shares a delivery person's position with their active orders.
type UpdateLocationCommand struct { //nolint:recvcheck //using for validation
	actor    user.Actor
	location kernel.Location

	guard guard.ConstructorGuard
}

func NewUpdateLocationCommand(actor user.Actor, lat float64, lng float64) (UpdateLocationCommand, error) {
	if err := actor.Validate(); err != nil {
		return UpdateLocationCommand{}, err
	}
	if !actor.Is(user.RoleDelivery) {
		return UpdateLocationCommand{}, errs.NewAccessDeniedError("share location", actor.Role.String())
	}

	location, err := kernel.NewLocation(lat, lng)
	if err != nil {
		return UpdateLocationCommand{}, err
	}

	return UpdateLocationCommand{actor: actor, location: location, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationCommandIsNotConstructed)
}

func (c UpdateLocationCommand) Actor() user.Actor          { return c.actor }
func (c UpdateLocationCommand) Location() kernel.Location { return c.location }
