// Package events names the facts published after a committed change and the
// rooms they are routed to. Events are notifications, never authoritative state.
package events

import (
	"time"

	"orderhub/internal/core/domain/model/chat"
	"orderhub/internal/core/domain/model/order"
)

// Event names sent to live clients.
const (
	OrderUpdated           = "order:updated"
	OrderNew               = "order:new"
	OrderAssigned          = "order:assigned"
	NotificationEvent      = "notification"
	ChatMessage            = "chat:message"
	ChatHistory            = "chat:history"
	DeliveryLocationUpdate = "delivery:locationUpdate"
	Error                  = "error"
)

// Room keys.
const (
	RoomRestaurant = "restaurant"
	RoomDelivery   = "delivery"
)

// UserRoom is the private room of a user.
func UserRoom(userID string) string {
	return "user:" + userID
}

// OrderRoom is joined by participants interested in a single order.
func OrderRoom(orderID string) string {
	return "order:" + orderID
}

// NotificationType classifies a Notification.
type NotificationType string

const (
	NotificationOrderNew      NotificationType = "order_new"
	NotificationOrderStatus   NotificationType = "order_status"
	NotificationNewAssignment NotificationType = "new_assignment"
	NotificationChatMessage   NotificationType = "chat_message"
)

// Notification is a transient, human-readable alert delivered once.
type Notification struct {
	Type     NotificationType `json:"type"`
	Message  string           `json:"message"`
	OrderID  string           `json:"orderId"`
	SenderID string           `json:"senderId,omitempty"`
	Preview  string           `json:"preview,omitempty"`
}

// OrderStatusChanged is the payload of order:updated.
type OrderStatusChanged struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// OrderAssignedPayload is the payload of order:assigned.
type OrderAssignedPayload struct {
	OrderID string `json:"orderId"`
}

// ChatMessageView is the wire form of a chat message.
type ChatMessageView struct {
	OrderID     string    `json:"orderId"`
	SenderID    string    `json:"senderId"`
	SenderName  string    `json:"senderName"`
	SenderRole  string    `json:"senderRole"`
	RecipientID string    `json:"recipientId"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
}

// ChatHistoryPayload is the payload of chat:history.
type ChatHistoryPayload struct {
	OrderID  string            `json:"orderId"`
	Messages []ChatMessageView `json:"messages"`
}

// LatLng is a reported position.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LocationUpdated is the payload of delivery:locationUpdate.
type LocationUpdated struct {
	OrderID          string `json:"orderId"`
	DeliveryPersonID string `json:"deliveryPersonId"`
	Location         LatLng `json:"location"`
}

// ErrorPayload is sent to a single session when one of its requests fails.
type ErrorPayload struct {
	Message string `json:"message"`
}

// NewChatMessageView converts a domain message.
func NewChatMessageView(m chat.Message) ChatMessageView {
	return ChatMessageView{
		OrderID:     m.OrderID().String(),
		SenderID:    m.SenderID(),
		SenderName:  m.SenderName(),
		SenderRole:  m.SenderRole().String(),
		RecipientID: m.RecipientID(),
		Content:     m.Content(),
		Timestamp:   m.Timestamp(),
	}
}

// NewChatHistoryPayload converts a history slice; the result is never nil.
func NewChatHistoryPayload(orderID string, messages []chat.Message) ChatHistoryPayload {
	views := make([]ChatMessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, NewChatMessageView(m))
	}
	return ChatHistoryPayload{OrderID: orderID, Messages: views}
}

// StatusChanged builds the order:updated payload.
func StatusChanged(o *order.Order) OrderStatusChanged {
	return OrderStatusChanged{OrderID: o.ID().String(), Status: o.Status().String()}
}
