package commands

import (
	"context"

	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/core/ports"
)

// SetAvailabilityCommandHandler updates the availability flag read by the delivery selector.
type SetAvailabilityCommandHandler struct {
	users ports.UserRepository
}

func NewSetAvailabilityCommandHandler(users ports.UserRepository) SetAvailabilityCommandHandler {
	return SetAvailabilityCommandHandler{users: users}
}

func (h SetAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetAvailabilityCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	u, err := h.users.FindByID(ctx, cmd.actor.UserID)
	if err != nil {
		return nil, err
	}

	if err = u.SetAvailability(cmd.isAvailable); err != nil {
		return nil, err
	}

	if err = h.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
