package kernel_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/errs"
)

func TestUUID(t *testing.T) {
	t.Run("should generate distinct valid ids", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, a.Validate())
		assert.False(t, a.IsEqual(b))
	})

	t.Run("should round trip through text", func(t *testing.T) {
		id := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("should round trip through bytes", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		parsed, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	t.Run("should reject malformed text", func(t *testing.T) {
		_, err := kernel.UUIDFromString("order-1")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject the nil uuid", func(t *testing.T) {
		_, err := kernel.UUIDFromString(uuid.Nil.String())

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should reject short byte slices", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should treat the zero value as not constructed", func(t *testing.T) {
		var id kernel.UUID

		require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should panic on bad literals", func(t *testing.T) {
		assert.Panics(t, func() { kernel.MustUUIDFromString("nope") })
	})
}
