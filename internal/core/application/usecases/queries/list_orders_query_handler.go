package queries

import (
	"context"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/errs"
)

// ListOrdersQueryHandler answers the three order listings.
//
// Example:
//
//	handler := queries.NewListOrdersQueryHandler(store)
//	query, _ := queries.NewListPendingOrdersQuery(principal)
//	pending, err := handler.HandlePending(ctx, query)
type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.actor.Is(user.RoleRestaurant) {
		return nil, errs.NewAccessDeniedError("list all orders", query.actor.Role.String())
	}
	return h.orders.List(ctx)
}

func (h ListOrdersQueryHandler) HandleMine(ctx context.Context, query ListMyOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if query.actor.Is(user.RoleDelivery) {
		return h.orders.ListAssignedTo(ctx, query.actor.UserID)
	}
	return h.orders.ListByCustomer(ctx, query.actor.UserID)
}

func (h ListOrdersQueryHandler) HandlePending(ctx context.Context, query ListPendingOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.actor.Is(user.RoleDelivery) {
		return nil, errs.NewAccessDeniedError("list pending orders", query.actor.Role.String())
	}
	return h.orders.ListByStatus(ctx, order.Pending)
}
