package memory

import (
	"context"
	"sync"
	"time"

	"orderhub/internal/core/domain/model/chat"
	"orderhub/internal/core/domain/model/kernel"
)

// DefaultMaxMessagesPerOrder caps a single conversation; the oldest messages are dropped first.
const DefaultMaxMessagesPerOrder = 200

// ChatLog keeps every order's conversation in append order.
type ChatLog struct {
	mu          sync.RWMutex
	messages    map[kernel.UUID][]chat.Message
	maxPerOrder int
}

// NewChatLog creates a log holding at most maxPerOrder messages per order.
// Non-positive values select DefaultMaxMessagesPerOrder.
func NewChatLog(maxPerOrder int) *ChatLog {
	if maxPerOrder <= 0 {
		maxPerOrder = DefaultMaxMessagesPerOrder
	}
	return &ChatLog{
		messages:    make(map[kernel.UUID][]chat.Message),
		maxPerOrder: maxPerOrder,
	}
}

func (l *ChatLog) Append(_ context.Context, msg chat.Message) error {
	if err := msg.OrderID().Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	history := append(l.messages[msg.OrderID()], msg)
	if overflow := len(history) - l.maxPerOrder; overflow > 0 {
		history = append([]chat.Message(nil), history[overflow:]...)
	}
	l.messages[msg.OrderID()] = history
	return nil
}

func (l *ChatLog) History(_ context.Context, orderID kernel.UUID) ([]chat.Message, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	history := l.messages[orderID]
	result := make([]chat.Message, len(history))
	copy(result, history)
	return result, nil
}

func (l *ChatLog) PruneBefore(_ context.Context, cutoff time.Time) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for orderID, history := range l.messages {
		expired := 0
		for expired < len(history) && history[expired].Timestamp().Before(cutoff) {
			expired++
		}
		if expired == 0 {
			continue
		}
		removed += expired
		if expired == len(history) {
			delete(l.messages, orderID)
			continue
		}
		l.messages[orderID] = append([]chat.Message(nil), history[expired:]...)
	}
	return removed, nil
}
