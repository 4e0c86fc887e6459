package queries

import (
	"errors"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads a single order.
//
// Example:
//
//	query, err := queries.NewGetOrderQuery(id, principal)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   user.Actor

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, actor user.Actor) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetOrderQuery) Actor() user.Actor    { return q.actor }
