package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/errs"
)

func TestMoneyFromFloat(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		want    kernel.Money
		wantErr bool
	}{
		{name: "whole amount", amount: 20, want: 2000},
		{name: "cents", amount: 12.34, want: 1234},
		{name: "rounds binary noise", amount: 0.1 + 0.2, want: 30},
		{name: "zero", amount: 0, want: 0},
		{name: "negative", amount: -0.01, wantErr: true},
		{name: "NaN", amount: math.NaN(), wantErr: true},
		{name: "infinity", amount: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := kernel.MoneyFromFloat(tt.amount)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoneyFromFloat_Bounds(t *testing.T) {
	t.Run("should accept the maximum amount", func(t *testing.T) {
		got, err := kernel.MoneyFromFloat(1e9)

		require.NoError(t, err)
		assert.Equal(t, kernel.MaxMoney, got)
	})

	t.Run("should reject amounts that would overflow", func(t *testing.T) {
		for _, amount := range []float64{1e9 + 0.01, 184467440737095.52, 1e17} {
			_, err := kernel.MoneyFromFloat(amount)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, amount)
		}
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should multiply and add within the maximum", func(t *testing.T) {
		product, err := kernel.Money(2050).Times(2)
		require.NoError(t, err)
		assert.Equal(t, kernel.Money(4100), product)

		sum, err := kernel.MaxMoney.Plus(0)
		require.NoError(t, err)
		assert.Equal(t, kernel.MaxMoney, sum)
	})

	t.Run("should fail instead of wrapping", func(t *testing.T) {
		_, err := kernel.MaxMoney.Times(2)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.Money(math.MaxInt64 / 10).Times(1000)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.MaxMoney.Plus(1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should refuse negative operands", func(t *testing.T) {
		_, err := kernel.Money(100).Times(-1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.Money(100).Plus(-1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney(t *testing.T) {
	price := kernel.Money(2050)

	assert.InDelta(t, 20.5, price.Float(), 1e-9)
	assert.Equal(t, "20.50", price.String())
	assert.Equal(t, "0.07", kernel.Money(7).String())
}
