package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"orderhub/internal/core/domain/events"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRooms(t *testing.T) {
	t.Run("should prefix private and order rooms", func(t *testing.T) {
		assert.Equal(t, "user:u1", events.UserRoom("u1"))
		assert.Equal(t, "order:abc", events.OrderRoom("abc"))
	})
}

func TestNewOrderView(t *testing.T) {
	t.Run("should render a pending order with null assignee", func(t *testing.T) {
		tea, err := order.NewItem("1", "Tea", 2000, 2)
		require.NoError(t, err)
		o, err := order.NewOrder(kernel.NewUUID(), "c1", []order.Item{tea}, 4000, "12 Lake Rd", "", time.Now())
		require.NoError(t, err)

		raw, err := json.Marshal(events.NewOrderView(o))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, "pending", decoded["status"])
		assert.InDelta(t, 40.0, decoded["total"], 0.0001)
		assert.Nil(t, decoded["assignedDelivery"])
		assert.Contains(t, decoded, "assignedDelivery")
		items := decoded["items"].([]any)
		require.Len(t, items, 1)
		assert.InDelta(t, 20.0, items[0].(map[string]any)["unitPrice"], 0.0001)
	})
}
