package queries

import (
	"context"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/services"
	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/errs"
)

// GetOrderQueryHandler returns an order to its owner, the restaurant or delivery staff.
// Repeated reads without intervening changes return equal orders.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
	policy services.TransitionPolicy
}

func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, policy: services.NewTransitionPolicy()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !h.policy.CanView(o, actor.Role, actor.UserID) {
		return nil, errs.NewAccessDeniedError("view this order", actor.Role.String())
	}
	return o, nil
}

// HandleParticipant returns the order only to the actors taking part in it: the
// owner, the assigned delivery person and the restaurant.
func (h GetOrderQueryHandler) HandleParticipant(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !h.policy.IsParticipant(o, actor.Role, actor.UserID) {
		return nil, errs.NewAccessDeniedError("follow this order", actor.Role.String())
	}
	return o, nil
}
