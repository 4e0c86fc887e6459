// Package ports defines the contracts between the application core and its
// adapters: repositories, the durable archive, the chat log and the event publisher.
package ports

import (
	"context"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
)

// OrderRepository is the authoritative order table. Implementations are safe for
// concurrent use and hand out copies, so callers may mutate what they receive and
// must call Update to commit.
type OrderRepository interface {
	// Add stores a new order. Adding an existing id fails.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces a stored order. Unknown ids fail with errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns every order in insertion order.
	List(ctx context.Context) ([]*order.Order, error)

	// ListByCustomer returns the orders placed by customerID.
	ListByCustomer(ctx context.Context, customerID string) ([]*order.Order, error)

	// ListByStatus returns the orders currently in status.
	ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// ListAssignedTo returns the orders dispatched to a delivery person.
	ListAssignedTo(ctx context.Context, deliveryID string) ([]*order.Order, error)
}

// OrderArchive is the durable copy of the order table. It is loaded once at start
// and rewritten in the background after mutations; it never serves reads.
type OrderArchive interface {
	LoadOrders(ctx context.Context) ([]*order.Order, error)
	SaveOrders(ctx context.Context, orders []*order.Order) error
}

// OrderLocker serializes read-modify-write sequences per order id.
type OrderLocker interface {
	// Lock blocks until key is free and returns its unlock function.
	Lock(key string) func()
}
