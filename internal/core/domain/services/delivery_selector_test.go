package services_test

import (
	"testing"

	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliverySelector_Select(t *testing.T) {
	selector := services.NewDeliverySelector()

	t.Run("should choose the smallest student id", func(t *testing.T) {
		candidates := []user.Candidate{
			{ID: "a", Name: "A", StudentID: "42", IsAvailable: true},
			{ID: "b", Name: "B", StudentID: "7", IsAvailable: true},
			{ID: "c", Name: "C", StudentID: "19", IsAvailable: true},
		}

		chosen, err := selector.Select(candidates)

		require.NoError(t, err)
		assert.Equal(t, "7", chosen.StudentID)
		assert.Equal(t, "b", chosen.ID)
	})

	t.Run("should compare numerically, not lexically", func(t *testing.T) {
		candidates := []user.Candidate{
			{ID: "a", StudentID: "100", IsAvailable: true},
			{ID: "b", StudentID: "99", IsAvailable: true},
		}

		chosen, err := selector.Select(candidates)

		require.NoError(t, err)
		assert.Equal(t, "b", chosen.ID)
	})

	t.Run("should rank decimal student ids by value", func(t *testing.T) {
		candidates := []user.Candidate{
			{ID: "a", StudentID: "8", IsAvailable: true},
			{ID: "b", StudentID: "7.5", IsAvailable: true},
		}

		chosen, err := selector.Select(candidates)

		require.NoError(t, err)
		assert.Equal(t, "b", chosen.ID)
	})

	t.Run("should skip unavailable and non-numeric candidates", func(t *testing.T) {
		candidates := []user.Candidate{
			{ID: "a", StudentID: "1", IsAvailable: false},
			{ID: "b", StudentID: "x2", IsAvailable: true},
			{ID: "c", StudentID: "30", IsAvailable: true},
		}

		chosen, err := selector.Select(candidates)

		require.NoError(t, err)
		assert.Equal(t, "c", chosen.ID)
	})

	t.Run("should break ties by candidate id regardless of order", func(t *testing.T) {
		first := []user.Candidate{
			{ID: "z", StudentID: "5", IsAvailable: true},
			{ID: "m", StudentID: "5", IsAvailable: true},
		}
		second := []user.Candidate{first[1], first[0]}

		c1, err := selector.Select(first)
		require.NoError(t, err)
		c2, err := selector.Select(second)
		require.NoError(t, err)

		assert.Equal(t, "m", c1.ID)
		assert.Equal(t, c1, c2)
	})

	t.Run("should return ErrNoDeliveryAvailable when nobody is eligible", func(t *testing.T) {
		for _, candidates := range [][]user.Candidate{
			nil,
			{{ID: "a", StudentID: "1", IsAvailable: false}},
			{{ID: "b", StudentID: "", IsAvailable: true}},
		} {
			_, err := selector.Select(candidates)
			require.ErrorIs(t, err, services.ErrNoDeliveryAvailable)
		}
	})
}
