package order

import (
	"errors"
	"fmt"
	"strings"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/errs"
)

const (
	MinQuantity = 1
	MaxQuantity = 1000
)

// Item is one line of an order. Items are immutable values.
type Item struct {
	itemID    string
	name      string
	unitPrice kernel.Money
	quantity  int
	subtotal  kernel.Money
}

// NewItem validates all fields and reports every violation at once.
func NewItem(itemID string, name string, unitPrice kernel.Money, quantity int) (Item, error) {
	var problems []error

	if strings.TrimSpace(itemID) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("itemId"))
	}
	if strings.TrimSpace(name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if unitPrice < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unitPrice)))
	}
	if unitPrice > kernel.MaxMoney {
		problems = append(problems, errs.NewValueIsOutOfRangeError("unitPrice", unitPrice.String(), 0, kernel.MaxMoney.String()))
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		problems = append(problems, errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity))
	}

	if err := errors.Join(problems...); err != nil {
		return Item{}, err
	}

	subtotal, err := unitPrice.Times(quantity)
	if err != nil {
		return Item{}, fmt.Errorf("subtotal of %q: %w", itemID, err)
	}

	return Item{itemID: itemID, name: name, unitPrice: unitPrice, quantity: quantity, subtotal: subtotal}, nil
}

func (i Item) ItemID() string {
	return i.itemID
}

func (i Item) Name() string {
	return i.name
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal is unit price times quantity, computed once by NewItem.
func (i Item) Subtotal() kernel.Money {
	return i.subtotal
}
