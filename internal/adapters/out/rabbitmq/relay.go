package rabbitmq

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"orderhub/internal/core/ports"
)

const (
	DefaultExchange       = "orderhub.events"
	defaultQueueSize      = 1024
	defaultPublishTimeout = 5 * time.Second
)

// Sink is the broker side of the relay; *Client implements it.
type Sink interface {
	Publish(ctx context.Context, exchange string, key string, body []byte) error
}

// Message is the body written to the exchange.
type Message struct {
	Room       string          `json:"room,omitempty"`
	Broadcast  bool            `json:"broadcast,omitempty"`
	Event      string          `json:"event"`
	Data       json.RawMessage `json:"data"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// Relay decorates an EventPublisher: events go to the wrapped publisher first and
// are then queued for the broker. A full queue or a broker failure loses the
// mirrored copy only.
type Relay struct {
	inner    ports.EventPublisher
	sink     Sink
	exchange string
	queue    chan Message
	logger   *slog.Logger
}

func NewRelay(inner ports.EventPublisher, sink Sink, exchange string, logger *slog.Logger) *Relay {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return &Relay{
		inner:    inner,
		sink:     sink,
		exchange: exchange,
		queue:    make(chan Message, defaultQueueSize),
		logger:   logger.With("component", "rabbitmq_relay"),
	}
}

func (r *Relay) Publish(ctx context.Context, room string, event string, payload any) {
	r.inner.Publish(ctx, room, event, payload)
	r.enqueue(ctx, Message{Room: room, Event: event}, payload)
}

func (r *Relay) Broadcast(ctx context.Context, event string, payload any) {
	r.inner.Broadcast(ctx, event, payload)
	r.enqueue(ctx, Message{Broadcast: true, Event: event}, payload)
}

// Run forwards queued messages until ctx is done.
func (r *Relay) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-r.queue:
			r.forward(ctx, msg)
		}
	}
}

func (r *Relay) enqueue(ctx context.Context, msg Message, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to encode relayed event", "event", msg.Event, "error", err)
		return
	}
	msg.Data = data
	msg.OccurredAt = time.Now().UTC()

	select {
	case r.queue <- msg:
	default:
		r.logger.WarnContext(ctx, "relay queue full, event not mirrored", "event", msg.Event)
	}
}

func (r *Relay) forward(ctx context.Context, msg Message) {
	body, err := json.Marshal(msg)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to encode relay message", "event", msg.Event, "error", err)
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, defaultPublishTimeout)
	defer cancel()

	if err = r.sink.Publish(pubCtx, r.exchange, msg.Event, body); err != nil {
		r.logger.WarnContext(ctx, "failed to mirror event", "event", msg.Event, "error", err)
	}
}
