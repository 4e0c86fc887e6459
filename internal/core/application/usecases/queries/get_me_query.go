package queries

import (
	"context"
	"errors"

	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/guard"
)

var ErrGetMeQueryIsNotConstructed = errors.New(
	"GetMeQuery must be created via NewGetMeQuery constructor",
)

// GetMeQuery returns the stored profile of the caller.
type GetMeQuery struct {
	actor user.Actor
	guard guard.ConstructorGuard
}

func NewGetMeQuery(actor user.Actor) (GetMeQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetMeQuery{}, err
	}
	return GetMeQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMeQuery) Validate() error {
	return q.guard.Validate(ErrGetMeQueryIsNotConstructed)
}

type GetMeQueryHandler struct {
	users ports.UserRepository
}

func NewGetMeQueryHandler(users ports.UserRepository) GetMeQueryHandler {
	return GetMeQueryHandler{users: users}
}

func (h GetMeQueryHandler) Handle(ctx context.Context, query GetMeQuery) (*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.users.FindByID(ctx, query.actor.UserID)
}
