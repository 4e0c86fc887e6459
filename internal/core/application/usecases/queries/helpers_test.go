package queries_test

import (
	"testing"
	"time"

	"orderhub/internal/adapters/out/memory"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

var (
	customer   = user.Actor{UserID: "c1", Name: "Cara", Role: user.RoleCustomer}
	other      = user.Actor{UserID: "c2", Name: "Cleo", Role: user.RoleCustomer}
	restaurant = user.Actor{UserID: "r1", Name: "Rosa", Role: user.RoleRestaurant}
	courier    = user.Actor{UserID: "d1", Name: "Dana", Role: user.RoleDelivery}
	stranger   = user.Actor{UserID: "d2", Name: "Dev", Role: user.RoleDelivery}
)

func newOrder(t *testing.T, customerID string) *order.Order {
	t.Helper()
	tea, err := order.NewItem("1", "Tea", 2000, 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.Item{tea}, 4000, "12 Lake Rd", "", time.Now())
	require.NoError(t, err)
	return o
}

func assignTo(t *testing.T, o *order.Order, deliveryID string) *order.Order {
	t.Helper()
	assignee, err := order.NewAssignee(deliveryID, "Dana", "5")
	require.NoError(t, err)
	require.NoError(t, o.Assign(assignee, time.Now()))
	return o
}

func newStore(orders ...*order.Order) *memory.OrderStore {
	store := memory.NewOrderStore()
	store.Seed(orders)
	return store
}
