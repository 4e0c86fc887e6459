package kernel

import (
	"fmt"
	"math"

	"orderhub/internal/pkg/errs"
)

// Money is an amount in minor units (cents). Prices arrive as decimal numbers
// on the wire and are rounded to the nearest cent.
type Money int64

// MaxMoney bounds every amount, unit prices and order totals alike: one billion
// in major units. Arithmetic that would exceed it fails instead of wrapping.
const MaxMoney Money = 1_000_000_000_00

// MoneyFromFloat converts a decimal amount, rejecting negatives, non-finite values
// and amounts above MaxMoney.
func MoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is negative", amount))
	}
	if amount > MaxMoney.Float() {
		return 0, errs.NewValueIsOutOfRangeError("amount", amount, 0, MaxMoney.Float())
	}
	return Money(math.Round(amount * 100)), nil
}

// Float returns the amount in major units.
func (m Money) Float() float64 {
	return float64(m) / 100
}

// Times multiplies by a non-negative quantity.
func (m Money) Times(quantity int) (Money, error) {
	if m < 0 || m > MaxMoney || quantity < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("cannot multiply %s by %d", m, quantity))
	}
	if quantity != 0 && m > MaxMoney/Money(quantity) {
		return 0, errs.NewValueIsOutOfRangeError("amount", fmt.Sprintf("%s x %d", m, quantity), 0, MaxMoney.String())
	}
	return m * Money(quantity), nil
}

// Plus adds two non-negative amounts.
func (m Money) Plus(other Money) (Money, error) {
	if m < 0 || other < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("cannot add %s and %s", m, other))
	}
	if m > MaxMoney-other {
		return 0, errs.NewValueIsOutOfRangeError("amount", fmt.Sprintf("%s + %s", m, other), 0, MaxMoney.String())
	}
	return m + other, nil
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
