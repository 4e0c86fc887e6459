package commands

import (
	"errors"

	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var ErrSetAvailabilityCommandIsNotConstructed = errors.New(
	"SetAvailabilityCommand must be created via NewSetAvailabilityCommand constructor",
)

// SetAvailabilityCommand lets delivery staff opt in or out of new assignments.
type SetAvailabilityCommand struct { //nolint:recvcheck //using for validation
	actor       user.Actor
	isAvailable bool

	guard guard.ConstructorGuard
}

func NewSetAvailabilityCommand(actor user.Actor, isAvailable *bool) (SetAvailabilityCommand, error) {
	if err := actor.Validate(); err != nil {
		return SetAvailabilityCommand{}, err
	}
	if isAvailable == nil {
		return SetAvailabilityCommand{}, errs.NewValueIsRequiredError("isAvailable")
	}
	return SetAvailabilityCommand{actor: actor, isAvailable: *isAvailable, guard: guard.NewConstructorGuard()}, nil
}

func (c SetAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetAvailabilityCommandIsNotConstructed)
}
