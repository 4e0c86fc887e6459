package memory

import (
	"context"
	"fmt"
	"sync"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/pkg/errs"
)

// OrderStore keeps orders in insertion order. After every committed mutation it
// calls the change hook, which the archive writer uses to schedule a durable save.
type OrderStore struct {
	mu       sync.RWMutex
	orders   map[kernel.UUID]*order.Order
	sequence []kernel.UUID
	onChange func()
}

type OrderStoreOption func(*OrderStore)

// WithChangeHook registers fn to run after each Add or Update. fn must not block.
func WithChangeHook(fn func()) OrderStoreOption {
	return func(s *OrderStore) {
		s.onChange = fn
	}
}

func NewOrderStore(opts ...OrderStoreOption) *OrderStore {
	s := &OrderStore{
		orders:   make(map[kernel.UUID]*order.Order),
		onChange: func() {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed loads orders restored from the archive without triggering the change hook.
// Orders whose id is already present are skipped.
func (s *OrderStore) Seed(orders []*order.Order) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, o := range orders {
		if o.Validate() != nil {
			continue
		}
		if _, exists := s.orders[o.ID()]; exists {
			continue
		}
		s.orders[o.ID()] = o.Clone()
		s.sequence = append(s.sequence, o.ID())
		added++
	}
	return added
}

func (s *OrderStore) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if _, exists := s.orders[aggregate.ID()]; exists {
		s.mu.Unlock()
		return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("order %s already exists", aggregate.ID()))
	}
	s.orders[aggregate.ID()] = aggregate.Clone()
	s.sequence = append(s.sequence, aggregate.ID())
	s.mu.Unlock()

	s.onChange()
	return nil
}

func (s *OrderStore) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if _, exists := s.orders[aggregate.ID()]; !exists {
		s.mu.Unlock()
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	s.orders[aggregate.ID()] = aggregate.Clone()
	s.mu.Unlock()

	s.onChange()
	return nil
}

func (s *OrderStore) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o.Clone(), nil
}

func (s *OrderStore) List(_ context.Context) ([]*order.Order, error) {
	return s.filter(func(*order.Order) bool { return true }), nil
}

func (s *OrderStore) ListByCustomer(_ context.Context, customerID string) ([]*order.Order, error) {
	return s.filter(func(o *order.Order) bool { return o.CustomerID() == customerID }), nil
}

func (s *OrderStore) ListByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	return s.filter(func(o *order.Order) bool { return o.Status() == status }), nil
}

func (s *OrderStore) ListAssignedTo(_ context.Context, deliveryID string) ([]*order.Order, error) {
	return s.filter(func(o *order.Order) bool { return o.IsAssignedTo(deliveryID) }), nil
}

// Snapshot copies the whole table for the archive writer.
func (s *OrderStore) Snapshot() []*order.Order {
	return s.filter(func(*order.Order) bool { return true })
}

// Len reports the number of stored orders.
func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sequence)
}

func (s *OrderStore) filter(keep func(*order.Order) bool) []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*order.Order, 0, len(s.sequence))
	for _, id := range s.sequence {
		o := s.orders[id]
		if keep(o) {
			result = append(result, o.Clone())
		}
	}
	return result
}
