package commands

import (
	"context"
	"time"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/core/domain/services"
	"orderhub/internal/core/ports"
)

// ChangeOrderStatusCommandHandler is the order state machine.
//
// The restaurant may request any legal transition; a delivery person only on
// orders assigned to them. Requesting assigned dispatches the order through the
// delivery selector in the same critical section, so assignment and status
// change are applied together or not at all.
type ChangeOrderStatusCommandHandler struct {
	orders     ports.OrderRepository
	users      ports.UserRepository
	locker     ports.OrderLocker
	notifier   notifier
	policy     services.TransitionPolicy
	dispatcher services.OrderDispatcher
	now        func() time.Time
}

func NewChangeOrderStatusCommandHandler(
	orders ports.OrderRepository,
	users ports.UserRepository,
	locker ports.OrderLocker,
	publisher ports.EventPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		orders:     orders,
		users:      users,
		locker:     locker,
		notifier:   notifier{publisher: publisher},
		policy:     services.NewTransitionPolicy(),
		dispatcher: services.NewOrderDispatcher(),
		now:        time.Now,
	}
}

// Handle applies the transition and returns the committed order. On any error
// the stored order is unchanged and nothing is published.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := h.locker.Lock(cmd.OrderID().String())
	defer unlock()

	o, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if err = h.policy.Authorize(o, cmd.Status(), actor.Role, actor.UserID); err != nil {
		return nil, err
	}

	if cmd.Status() == order.Assigned {
		return dispatch(ctx, o, h.orders, h.users, h.dispatcher, h.notifier, h.now())
	}

	if err = o.ChangeStatus(cmd.Status(), h.now()); err != nil {
		return nil, err
	}

	if err = h.orders.Update(ctx, o); err != nil {
		return nil, err
	}

	h.notifier.statusChanged(ctx, o)
	return o, nil
}

// dispatch assigns o and commits it. The caller must hold the order's lock.
func dispatch(
	ctx context.Context,
	o *order.Order,
	orders ports.OrderRepository,
	users ports.UserRepository,
	dispatcher services.OrderDispatcher,
	n notifier,
	now time.Time,
) (*order.Order, error) {
	if err := o.Status().ValidateTransition(order.Assigned); err != nil {
		return nil, err
	}

	candidates, err := users.ListDeliveryCandidates(ctx)
	if err != nil {
		return nil, err
	}

	var chosen user.Candidate
	if chosen, err = dispatcher.Dispatch(o, candidates, now); err != nil {
		return nil, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return nil, err
	}

	n.statusChanged(ctx, o)
	n.deliveryAssigned(ctx, o, chosen)
	return o, nil
}
