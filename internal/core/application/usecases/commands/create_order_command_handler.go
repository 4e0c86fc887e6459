package commands

import (
	"context"
	"time"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/ports"
)

// CreateOrderCommandHandler stores a new pending order and announces it to the restaurant.
type CreateOrderCommandHandler struct {
	orders   ports.OrderRepository
	notifier notifier
	now      func() time.Time
}

func NewCreateOrderCommandHandler(orders ports.OrderRepository, publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders:   orders,
		notifier: notifier{publisher: publisher},
		now:      time.Now,
	}
}

// Handle creates the order. Only after it is stored are order:new and the
// order_new notification published to the restaurant room.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Customer().UserID,
		cmd.Items(),
		cmd.Total(),
		cmd.DeliveryAddress(),
		cmd.DeliveryInstructions(),
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.orders.Add(ctx, o); err != nil {
		return nil, err
	}

	h.notifier.orderPlaced(ctx, o)
	return o, nil
}
