package ports

import "context"

// EventPublisher fans events out to live sessions. Delivery is best effort:
// sessions that are not connected never see the event and a room without
// members is not an error, so neither method reports failure.
type EventPublisher interface {
	// Publish delivers to every session currently in room.
	Publish(ctx context.Context, room string, event string, payload any)

	// Broadcast delivers to every connected session.
	Broadcast(ctx context.Context, event string, payload any)
}
