package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"orderhub/internal/core/domain/model/chat"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListAssignedTo(ctx context.Context, deliveryID string) ([]*order.Order, error) {
	args := m.Called(ctx, deliveryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) ListDeliveryCandidates(ctx context.Context) ([]user.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.Candidate), args.Error(1)
}

type MockChatLog struct{ mock.Mock }

func (m *MockChatLog) Append(ctx context.Context, msg chat.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatLog) History(ctx context.Context, orderID kernel.UUID) ([]chat.Message, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]chat.Message), args.Error(1)
}

func (m *MockChatLog) PruneBefore(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(u *user.User) (string, time.Time, error) {
	args := m.Called(u)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// published is one event seen by recordingPublisher. Room is empty for broadcasts.
type published struct {
	Room    string
	Event   string
	Payload any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) Publish(_ context.Context, room string, event string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{Room: room, Event: event, Payload: payload})
}

func (p *recordingPublisher) Broadcast(_ context.Context, event string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{Event: event, Payload: payload})
}

func (p *recordingPublisher) all() []published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]published(nil), p.events...)
}

func (p *recordingPublisher) names() []string {
	var names []string
	for _, e := range p.all() {
		names = append(names, e.Event)
	}
	return names
}

var (
	customer   = user.Actor{UserID: "c1", Name: "Cara", Role: user.RoleCustomer}
	restaurant = user.Actor{UserID: "r1", Name: "Rosa", Role: user.RoleRestaurant}
	courier    = user.Actor{UserID: "d1", Name: "Dana", Role: user.RoleDelivery}
	stranger   = user.Actor{UserID: "d2", Name: "Dev", Role: user.RoleDelivery}
)

func newPendingOrder(t *testing.T, customerID string) *order.Order {
	t.Helper()
	tea, err := order.NewItem("1", "Tea", 2000, 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.Item{tea}, 4000, "12 Lake Rd", "", time.Now())
	require.NoError(t, err)
	return o
}

func newAssignedOrder(t *testing.T, customerID string, deliveryID string) *order.Order {
	t.Helper()
	o := newPendingOrder(t, customerID)
	assignee, err := order.NewAssignee(deliveryID, "Dana", "5")
	require.NoError(t, err)
	require.NoError(t, o.Assign(assignee, time.Now()))
	return o
}

func newDeliveryUser(t *testing.T, id string, studentID string, available bool) *user.User {
	t.Helper()
	u, err := user.NewUser(user.Params{
		ID:           id,
		Name:         "Driver " + id,
		Email:        id + "@example.com",
		PasswordHash: "hash",
		Role:         user.RoleDelivery,
		StudentID:    studentID,
		IsAvailable:  available,
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)
	return u
}
