package commands_test

import (
	"errors"
	"sync"
	"testing"

	"orderhub/internal/adapters/out/memory"
	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/domain/events"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/core/domain/services"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type statusFixture struct {
	orders    *memory.OrderStore
	users     *memory.UserRepository
	publisher *recordingPublisher
	handler   commands.ChangeOrderStatusCommandHandler
}

func newStatusFixture(t *testing.T, seed ...*order.Order) statusFixture {
	t.Helper()
	f := statusFixture{
		orders:    memory.NewOrderStore(),
		users:     memory.NewUserRepository(),
		publisher: new(recordingPublisher),
	}
	f.orders.Seed(seed)
	f.handler = commands.NewChangeOrderStatusCommandHandler(f.orders, f.users, keylock.New(), f.publisher)
	return f
}

func (f statusFixture) change(t *testing.T, id kernel.UUID, status string, actor user.Actor) (*order.Order, error) {
	t.Helper()
	cmd, err := commands.NewChangeOrderStatusCommand(id, status, actor)
	require.NoError(t, err)
	return f.handler.Handle(t.Context(), cmd)
}

func TestNewChangeOrderStatusCommand(t *testing.T) {
	t.Run("should parse the status", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), "picked_up", courier)

		require.NoError(t, err)
		assert.Equal(t, order.PickedUp, cmd.Status())
		assert.Equal(t, courier, cmd.Actor())
	})

	t.Run("should reject unknown statuses", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), "lost", courier)

		require.ErrorIs(t, err, order.ErrInvalidStatus)
	})

	t.Run("should require a status and an actor", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), "", user.Actor{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require a constructed order id", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, "delivered", restaurant)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestChangeOrderStatusCommandHandler_Handle(t *testing.T) {
	t.Run("should walk the whole lifecycle as the restaurant", func(t *testing.T) {
		o := newPendingOrder(t, "c1")
		f := newStatusFixture(t, o)
		require.NoError(t, f.users.Add(t.Context(), newDeliveryUser(t, "d1", "5", true)))

		last := o.UpdatedAt()
		for _, status := range []string{"assigned", "picked_up", "in_transit", "delivered"} {
			updated, err := f.change(t, o.ID(), status, restaurant)
			require.NoError(t, err, status)
			assert.Equal(t, status, updated.Status().String())
			assert.True(t, updated.UpdatedAt().After(last), "updatedAt must increase on %s", status)
			last = updated.UpdatedAt()
		}

		stored, err := f.orders.Get(t.Context(), o.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, stored.Status())
		assert.Equal(t, "d1", stored.Assignee().ID())

		assert.Equal(t, []string{
			events.OrderUpdated, events.NotificationEvent, events.OrderAssigned, events.NotificationEvent,
			events.OrderUpdated, events.NotificationEvent,
			events.OrderUpdated, events.NotificationEvent,
			events.OrderUpdated, events.NotificationEvent,
		}, f.publisher.names())

		sent := f.publisher.all()
		assert.Empty(t, sent[0].Room)
		assert.Equal(t, events.OrderStatusChanged{OrderID: o.ID().String(), Status: "assigned"}, sent[0].Payload)
		assert.Equal(t, events.UserRoom("c1"), sent[1].Room)
		assert.Equal(t, events.UserRoom("d1"), sent[2].Room)
		assert.Equal(t, events.UserRoom("d1"), sent[3].Room)
		assert.Equal(t,
			"Order #"+o.ID().String()+" status updated to delivered",
			sent[9].Payload.(events.Notification).Message,
		)
	})

	t.Run("should let the assigned delivery person advance the order", func(t *testing.T) {
		o := newAssignedOrder(t, "c1", "d1")
		f := newStatusFixture(t, o)

		updated, err := f.change(t, o.ID(), "picked_up", courier)

		require.NoError(t, err)
		assert.Equal(t, order.PickedUp, updated.Status())
	})

	t.Run("should deny a delivery person the order is not assigned to", func(t *testing.T) {
		o := newAssignedOrder(t, "c1", "d1")
		f := newStatusFixture(t, o)

		_, err := f.change(t, o.ID(), "picked_up", stranger)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		stored, err := f.orders.Get(t.Context(), o.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, stored.Status())
		assert.Equal(t, o.UpdatedAt(), stored.UpdatedAt())
		assert.Empty(t, f.publisher.all())
	})

	t.Run("should deny customers", func(t *testing.T) {
		o := newPendingOrder(t, "c1")
		f := newStatusFixture(t, o)

		_, err := f.change(t, o.ID(), "cancelled", customer)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("should not let delivery cancel", func(t *testing.T) {
		o := newAssignedOrder(t, "c1", "d1")
		f := newStatusFixture(t, o)

		_, err := f.change(t, o.ID(), "cancelled", courier)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("should reject skipping a step", func(t *testing.T) {
		o := newAssignedOrder(t, "c1", "d1")
		f := newStatusFixture(t, o)

		_, err := f.change(t, o.ID(), "delivered", restaurant)

		require.ErrorIs(t, err, order.ErrTransitionNotAllowed)
		assert.Empty(t, f.publisher.all())
	})

	t.Run("should cancel an active order but not a delivered one", func(t *testing.T) {
		active := newAssignedOrder(t, "c1", "d1")
		done := newAssignedOrder(t, "c1", "d1")
		for _, s := range []order.Status{order.PickedUp, order.InTransit, order.Delivered} {
			require.NoError(t, done.ChangeStatus(s, done.UpdatedAt()))
		}
		f := newStatusFixture(t, active, done)

		cancelled, err := f.change(t, active.ID(), "cancelled", restaurant)
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, cancelled.Status())

		_, err = f.change(t, done.ID(), "cancelled", restaurant)
		require.ErrorIs(t, err, order.ErrTransitionNotAllowed)
	})

	t.Run("should leave the order pending when no delivery person is available", func(t *testing.T) {
		o := newPendingOrder(t, "c1")
		f := newStatusFixture(t, o)
		require.NoError(t, f.users.Add(t.Context(), newDeliveryUser(t, "d1", "5", false)))

		_, err := f.change(t, o.ID(), "assigned", restaurant)

		require.ErrorIs(t, err, services.ErrNoDeliveryAvailable)
		stored, err := f.orders.Get(t.Context(), o.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Pending, stored.Status())
		assert.Nil(t, stored.Assignee())
		assert.Empty(t, f.publisher.all())
	})

	t.Run("should report unknown orders", func(t *testing.T) {
		f := newStatusFixture(t)

		_, err := f.change(t, kernel.NewUUID(), "cancelled", restaurant)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should apply concurrent requests one at a time", func(t *testing.T) {
		o := newAssignedOrder(t, "c1", "d1")
		f := newStatusFixture(t, o)

		const attempts = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			rejected  int
		)
		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), "picked_up", restaurant)
				if err != nil {
					return
				}
				_, err = f.handler.Handle(t.Context(), cmd)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					succeeded++
				case errors.Is(err, order.ErrTransitionNotAllowed):
					rejected++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, attempts-1, rejected)
		assert.Equal(t, []string{events.OrderUpdated, events.NotificationEvent}, f.publisher.names())
	})

	t.Run("should not publish when the update fails", func(t *testing.T) {
		ctx := t.Context()
		o := newAssignedOrder(t, "c1", "d1")
		orders := new(MockOrderRepository)
		users := new(MockUserRepository)
		publisher := new(recordingPublisher)
		mock.InOrder(
			orders.On("Get", ctx, o.ID()).Return(o.Clone(), nil).Once(),
			orders.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("conflict")).Once(),
		)
		cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), "picked_up", restaurant)
		require.NoError(t, err)

		_, err = commands.NewChangeOrderStatusCommandHandler(orders, users, keylock.New(), publisher).Handle(ctx, cmd)

		require.EqualError(t, err, "conflict")
		assert.Empty(t, publisher.all())
		orders.AssertExpectations(t)
		users.AssertNotCalled(t, "ListDeliveryCandidates")
	})
}
