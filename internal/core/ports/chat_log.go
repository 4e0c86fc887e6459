package ports

import (
	"context"
	"time"

	"orderhub/internal/core/domain/model/chat"
	"orderhub/internal/core/domain/model/kernel"
)

// ChatLog keeps the conversation of every order in append order.
type ChatLog interface {
	Append(ctx context.Context, msg chat.Message) error

	// History returns a copy of the order's messages, oldest first.
	History(ctx context.Context, orderID kernel.UUID) ([]chat.Message, error)

	// PruneBefore drops messages older than cutoff and reports how many were removed.
	PruneBefore(ctx context.Context, cutoff time.Time) (int, error)
}
