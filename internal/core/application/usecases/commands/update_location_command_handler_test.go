package commands_test

import (
	"testing"

	"orderhub/internal/adapters/out/memory"
	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/domain/events"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateLocationCommand(t *testing.T) {
	t.Run("should only accept delivery staff", func(t *testing.T) {
		_, err := commands.NewUpdateLocationCommand(customer, 52.1, 4.3)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("should reject coordinates out of range", func(t *testing.T) {
		_, err := commands.NewUpdateLocationCommand(courier, 91, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestUpdateLocationCommandHandler_Handle(t *testing.T) {
	t.Run("should fan out to every active order of the sender", func(t *testing.T) {
		first := newAssignedOrder(t, "c1", "d1")
		second := newAssignedOrder(t, "c2", "d1")
		require.NoError(t, second.ChangeStatus(order.PickedUp, second.UpdatedAt()))
		delivered := newAssignedOrder(t, "c3", "d1")
		for _, s := range []order.Status{order.PickedUp, order.InTransit, order.Delivered} {
			require.NoError(t, delivered.ChangeStatus(s, delivered.UpdatedAt()))
		}
		someoneElse := newAssignedOrder(t, "c4", "d2")

		orders := memory.NewOrderStore()
		orders.Seed([]*order.Order{first, second, delivered, someoneElse})
		publisher := new(recordingPublisher)
		cmd, err := commands.NewUpdateLocationCommand(courier, 52.37, 4.89)
		require.NoError(t, err)

		sent, err := commands.NewUpdateLocationCommandHandler(orders, publisher).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, sent)

		var rooms []string
		for _, e := range publisher.all() {
			assert.Equal(t, events.DeliveryLocationUpdate, e.Event)
			payload := e.Payload.(events.LocationUpdated)
			assert.Equal(t, "d1", payload.DeliveryPersonID)
			assert.Equal(t, events.LatLng{Lat: 52.37, Lng: 4.89}, payload.Location)
			rooms = append(rooms, e.Room)
		}
		assert.ElementsMatch(t, []string{
			events.OrderRoom(first.ID().String()),
			events.OrderRoom(second.ID().String()),
		}, rooms)
	})

	t.Run("should send nothing without active orders", func(t *testing.T) {
		publisher := new(recordingPublisher)
		cmd, err := commands.NewUpdateLocationCommand(courier, 0, 0)
		require.NoError(t, err)

		sent, err := commands.NewUpdateLocationCommandHandler(memory.NewOrderStore(), publisher).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Zero(t, sent)
		assert.Empty(t, publisher.all())
	})

	t.Run("should refuse unconstructed commands", func(t *testing.T) {
		_, err := commands.NewUpdateLocationCommandHandler(memory.NewOrderStore(), new(recordingPublisher)).
			Handle(t.Context(), commands.UpdateLocationCommand{})

		require.ErrorIs(t, err, commands.ErrUpdateLocationCommandIsNotConstructed)
	})
}

