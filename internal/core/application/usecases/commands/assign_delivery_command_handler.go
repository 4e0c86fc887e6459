package commands

import (
	"context"
	"time"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/core/domain/services"
	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/errs"
)

// AssignDeliveryCommandHandler dispatches a pending order to the eligible delivery
// person with the smallest student id. With nobody eligible it returns
// services.ErrNoDeliveryAvailable and the order stays pending.
type AssignDeliveryCommandHandler struct {
	orders     ports.OrderRepository
	users      ports.UserRepository
	locker     ports.OrderLocker
	notifier   notifier
	dispatcher services.OrderDispatcher
	now        func() time.Time
}

func NewAssignDeliveryCommandHandler(
	orders ports.OrderRepository,
	users ports.UserRepository,
	locker ports.OrderLocker,
	publisher ports.EventPublisher,
) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		orders:     orders,
		users:      users,
		locker:     locker,
		notifier:   notifier{publisher: publisher},
		dispatcher: services.NewOrderDispatcher(),
		now:        time.Now,
	}
}

func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if actor := cmd.Actor(); !actor.Is(user.RoleRestaurant) {
		return nil, errs.NewAccessDeniedError("assign delivery", actor.Role.String())
	}

	unlock := h.locker.Lock(cmd.OrderID().String())
	defer unlock()

	o, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	return dispatch(ctx, o, h.orders, h.users, h.dispatcher, h.notifier, h.now())
}
