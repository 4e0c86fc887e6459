package queries_test

import (
	"testing"

	"orderhub/internal/core/application/usecases/queries"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(orders []*order.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID().String())
	}
	return out
}

func TestListOrdersQueryHandler(t *testing.T) {
	first := newOrder(t, "c1")
	second := assignTo(t, newOrder(t, "c2"), "d1")
	third := newOrder(t, "c1")
	handler := queries.NewListOrdersQueryHandler(newStore(first, second, third))

	t.Run("should list every order for the restaurant", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(restaurant)
		require.NoError(t, err)

		all, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, []string{first.ID().String(), second.ID().String(), third.ID().String()}, ids(all))
	})

	t.Run("should deny the full listing to others", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(customer)
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("should list a customer's own orders", func(t *testing.T) {
		query, err := queries.NewListMyOrdersQuery(customer)
		require.NoError(t, err)

		mine, err := handler.HandleMine(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, []string{first.ID().String(), third.ID().String()}, ids(mine))
	})

	t.Run("should list the orders assigned to a delivery person", func(t *testing.T) {
		query, err := queries.NewListMyOrdersQuery(courier)
		require.NoError(t, err)

		mine, err := handler.HandleMine(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, []string{second.ID().String()}, ids(mine))
	})

	t.Run("should list pending orders for delivery staff", func(t *testing.T) {
		query, err := queries.NewListPendingOrdersQuery(stranger)
		require.NoError(t, err)

		pending, err := handler.HandlePending(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, []string{first.ID().String(), third.ID().String()}, ids(pending))
	})

	t.Run("should keep pending orders from the restaurant endpoint", func(t *testing.T) {
		query, err := queries.NewListPendingOrdersQuery(restaurant)
		require.NoError(t, err)

		_, err = handler.HandlePending(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("should refuse unconstructed queries", func(t *testing.T) {
		_, err := handler.HandleMine(t.Context(), queries.ListMyOrdersQuery{})

		require.ErrorIs(t, err, queries.ErrListMyOrdersQueryIsNotConstructed)
	})
}
