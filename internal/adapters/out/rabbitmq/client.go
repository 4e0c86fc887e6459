// Package rabbitmq mirrors live events to a RabbitMQ fanout exchange so other
// processes (analytics, notification senders) can follow the order flow.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrNack is returned when the broker refuses a publish.
var ErrNack = errors.New("publish NACK from broker")

// Client is a channel in confirm mode. Publishes are serialized so each one
// is matched with its own confirmation.
type Client struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	acks <-chan amqp.Confirmation
	mu   sync.Mutex
}

// Dial connects, enables publisher confirms and declares exchange as a durable fanout.
func Dial(url string, exchange string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable confirms: %w", err)
	}
	acks := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	return &Client{conn: conn, ch: ch, acks: acks}, nil
}

// Publish sends body and waits for the broker's ack or ctx cancellation.
func (c *Client) Publish(ctx context.Context, exchange string, key string, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ch.PublishWithContext(ctx, exchange, key, false, false, amqp.Publishing{
		DeliveryMode: amqp.Transient,
		ContentType:  "application/json",
		Timestamp:    time.Now(),
		Body:         body,
	}); err != nil {
		return err
	}

	select {
	case conf := <-c.acks:
		if conf.Ack {
			return nil
		}
		return ErrNack
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ping reports whether the connection is still open.
func (c *Client) Ping() error {
	if c.conn == nil || c.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

func (c *Client) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
