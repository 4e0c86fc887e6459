package commands

import (
	"context"
	"fmt"

	"orderhub/internal/core/domain/events"
	"orderhub/internal/core/domain/model/chat"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/core/ports"
)

// notifier turns committed changes into live events.
type notifier struct {
	publisher ports.EventPublisher
}

func (n notifier) orderPlaced(ctx context.Context, o *order.Order) {
	n.publisher.Publish(ctx, events.RoomRestaurant, events.OrderNew, events.NewOrderView(o))
	n.publisher.Publish(ctx, events.RoomRestaurant, events.NotificationEvent, events.Notification{
		Type:    events.NotificationOrderNew,
		Message: fmt.Sprintf("New order #%s received", o.ID()),
		OrderID: o.ID().String(),
	})
}

func (n notifier) statusChanged(ctx context.Context, o *order.Order) {
	n.publisher.Broadcast(ctx, events.OrderUpdated, events.StatusChanged(o))
	n.publisher.Publish(ctx, events.UserRoom(o.CustomerID()), events.NotificationEvent, events.Notification{
		Type:    events.NotificationOrderStatus,
		Message: fmt.Sprintf("Order #%s status updated to %s", o.ID(), o.Status()),
		OrderID: o.ID().String(),
	})
}

func (n notifier) deliveryAssigned(ctx context.Context, o *order.Order, chosen user.Candidate) {
	room := events.UserRoom(chosen.ID)
	n.publisher.Publish(ctx, room, events.OrderAssigned, events.OrderAssignedPayload{OrderID: o.ID().String()})
	n.publisher.Publish(ctx, room, events.NotificationEvent, events.Notification{
		Type:    events.NotificationNewAssignment,
		Message: fmt.Sprintf("New delivery assignment: Order #%s", o.ID()),
		OrderID: o.ID().String(),
	})
}

func (n notifier) chatPosted(ctx context.Context, msg chat.Message) {
	n.publisher.Publish(ctx, events.OrderRoom(msg.OrderID().String()), events.ChatMessage, events.NewChatMessageView(msg))
	n.publisher.Publish(ctx, events.UserRoom(msg.RecipientID()), events.NotificationEvent, events.Notification{
		Type:     events.NotificationChatMessage,
		Message:  fmt.Sprintf("New message from %s", msg.SenderName()),
		OrderID:  msg.OrderID().String(),
		SenderID: msg.SenderID(),
		Preview:  msg.Preview(),
	})
}

func (n notifier) locationUpdated(ctx context.Context, o *order.Order, deliveryID string, lat float64, lng float64) {
	n.publisher.Publish(ctx, events.OrderRoom(o.ID().String()), events.DeliveryLocationUpdate, events.LocationUpdated{
		OrderID:          o.ID().String(),
		DeliveryPersonID: deliveryID,
		Location:         events.LatLng{Lat: lat, Lng: lng},
	})
}
