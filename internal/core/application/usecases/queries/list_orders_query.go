package queries

import (
	"errors"

	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrListMyOrdersQueryIsNotConstructed = errors.New(
		"ListMyOrdersQuery must be created via NewListMyOrdersQuery constructor",
	)
	ErrListPendingOrdersQueryIsNotConstructed = errors.New(
		"ListPendingOrdersQuery must be created via NewListPendingOrdersQuery constructor",
	)
)

// ListOrdersQuery lists every order, oldest first. Restaurant only.
type ListOrdersQuery struct {
	actor user.Actor
	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor user.Actor) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListMyOrdersQuery lists the orders a user is involved in: the ones a customer
// placed, or the ones assigned to a delivery person.
type ListMyOrdersQuery struct {
	actor user.Actor
	guard guard.ConstructorGuard
}

func NewListMyOrdersQuery(actor user.Actor) (ListMyOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListMyOrdersQuery{}, err
	}
	return ListMyOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListMyOrdersQueryIsNotConstructed)
}

// ListPendingOrdersQuery lists orders still waiting for a delivery person.
// Delivery staff only; used as the polling fallback of the delivery dashboard.
type ListPendingOrdersQuery struct {
	actor user.Actor
	guard guard.ConstructorGuard
}

func NewListPendingOrdersQuery(actor user.Actor) (ListPendingOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListPendingOrdersQuery{}, err
	}
	return ListPendingOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListPendingOrdersQueryIsNotConstructed)
}
