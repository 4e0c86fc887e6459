package commands

import (
	"context"

	"orderhub/internal/core/ports"
)

// UpdateLocationCommandHandler publishes delivery:locationUpdate to the room of
// every active order assigned to the sender. Positions are not stored.
type UpdateLocationCommandHandler struct {
	orders   ports.OrderRepository
	notifier notifier
}

func NewUpdateLocationCommandHandler(orders ports.OrderRepository, publisher ports.EventPublisher) UpdateLocationCommandHandler {
	return UpdateLocationCommandHandler{orders: orders, notifier: notifier{publisher: publisher}}
}

// Handle returns the number of orders the update was sent to.
func (h UpdateLocationCommandHandler) Handle(ctx context.Context, cmd UpdateLocationCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	assigned, err := h.orders.ListAssignedTo(ctx, cmd.Actor().UserID)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, o := range assigned {
		if !o.Status().IsActive() {
			continue
		}
		h.notifier.locationUpdated(ctx, o, cmd.Actor().UserID, cmd.Location().Lat(), cmd.Location().Lng())
		sent++
	}
	return sent, nil
}
