package queries

import (
	"errors"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/guard"
)

var ErrGetChatHistoryQueryIsNotConstructed = errors.New(
	"GetChatHistoryQuery must be created via NewGetChatHistoryQuery constructor",
)

// GetChatHistoryQuery reads the conversation of an order.
type GetChatHistoryQuery struct {
	orderID kernel.UUID
	actor   user.Actor

	guard guard.ConstructorGuard
}

func NewGetChatHistoryQuery(orderID kernel.UUID, actor user.Actor) (GetChatHistoryQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetChatHistoryQuery{}, err
	}
	return GetChatHistoryQuery{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetChatHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetChatHistoryQueryIsNotConstructed)
}

func (q GetChatHistoryQuery) OrderID() kernel.UUID { return q.orderID }
