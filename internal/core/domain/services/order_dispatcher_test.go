package services_test

import (
	"testing"
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T, customerID string) *order.Order {
	t.Helper()
	tea, err := order.NewItem("1", "Tea", 2000, 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.Item{tea}, 4000, "12 Lake Rd", "", time.Now())
	require.NoError(t, err)
	return o
}

func TestOrderDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewOrderDispatcher()

	t.Run("should assign the only eligible candidate", func(t *testing.T) {
		o := newPendingOrder(t, "c1")
		candidates := []user.Candidate{{ID: "d1", Name: "Dana", StudentID: "5", IsAvailable: true}}

		chosen, err := dispatcher.Dispatch(o, candidates, time.Now())

		require.NoError(t, err)
		assert.Equal(t, "d1", chosen.ID)
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Assignee())
		assert.Equal(t, "d1", o.Assignee().ID())
		assert.Equal(t, "5", o.Assignee().StudentID())
	})

	t.Run("should leave the order pending when nobody is eligible", func(t *testing.T) {
		o := newPendingOrder(t, "c1")
		before := o.Clone()

		_, err := dispatcher.Dispatch(o, []user.Candidate{{ID: "d1", StudentID: "5"}}, time.Now())

		require.ErrorIs(t, err, services.ErrNoDeliveryAvailable)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Assignee())
		assert.Equal(t, before.UpdatedAt(), o.UpdatedAt())
	})

	t.Run("should refuse orders that are already assigned", func(t *testing.T) {
		o := newPendingOrder(t, "c1")
		candidates := []user.Candidate{{ID: "d1", Name: "Dana", StudentID: "5", IsAvailable: true}}
		_, err := dispatcher.Dispatch(o, candidates, time.Now())
		require.NoError(t, err)

		_, err = dispatcher.Dispatch(o, candidates, time.Now())

		require.ErrorIs(t, err, order.ErrTransitionNotAllowed)
	})

	t.Run("should reject an unconstructed order", func(t *testing.T) {
		_, err := dispatcher.Dispatch(&order.Order{}, nil, time.Now())

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
