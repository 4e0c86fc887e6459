package commands_test

import (
	"testing"

	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	total := 40.0
	tea := []commands.ItemInput{{ItemID: "1", Name: "Tea", UnitPrice: 20, Quantity: 2}}

	t.Run("should build a command for a customer", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customer, tea, &total, "12 Lake Rd", "ring twice")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, kernel.Money(4000), cmd.Total())
		require.Len(t, cmd.Items(), 1)
		assert.Equal(t, kernel.Money(2000), cmd.Items()[0].UnitPrice())
		assert.Equal(t, "ring twice", cmd.DeliveryInstructions())
	})

	t.Run("should deny other roles", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), restaurant, tea, &total, "12 Lake Rd", "")

		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("should require total", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customer, tea, nil, "12 Lake Rd", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require items and address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customer, nil, &total, "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "deliveryAddress")
	})

	t.Run("should report the offending item", func(t *testing.T) {
		items := []commands.ItemInput{
			{ItemID: "1", Name: "Tea", UnitPrice: 20, Quantity: 2},
			{ItemID: "2", Name: "Cake", UnitPrice: 5, Quantity: 0},
		}

		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customer, items, &total, "12 Lake Rd", "")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "items[1]")
	})

	t.Run("should reject negative prices", func(t *testing.T) {
		items := []commands.ItemInput{{ItemID: "1", Name: "Tea", UnitPrice: -1, Quantity: 1}}

		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customer, items, &total, "12 Lake Rd", "")

		require.Error(t, err)
	})

	t.Run("should reject prices whose subtotal would overflow", func(t *testing.T) {
		items := []commands.ItemInput{{ItemID: "1", Name: "Tea", UnitPrice: 184467440737095.52, Quantity: 1000}}
		wrapped := 3.84

		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customer, items, &wrapped, "12 Lake Rd", "")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "items[0]")
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
