package commands

import (
	"errors"
	"fmt"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemInput is an order line as submitted by the client.
type ItemInput struct {
	ItemID    string
	Name      string
	UnitPrice float64
	Quantity  int
}

// CreateOrderCommand places a new order on behalf of a customer.
//
// Example:
//
//	total := 40.0
//	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actor,
//	    []commands.ItemInput{{ItemID: "1", Name: "Tea", UnitPrice: 20, Quantity: 2}},
//	    &total, "12 Lake Rd", "")
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	customer             user.Actor
	items                []order.Item
	total                kernel.Money
	deliveryAddress      string
	deliveryInstructions string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request. total is required even though
// it is recomputed from the items; the two must agree.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer user.Actor,
	items []ItemInput,
	total *float64,
	deliveryAddress string,
	deliveryInstructions string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryAddress:      deliveryAddress,
		deliveryInstructions: deliveryInstructions,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setItems(items),
		cmd.setTotal(total),
		cmd.validateAddress(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Customer() user.Actor {
	return c.customer
}

func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c CreateOrderCommand) Total() kernel.Money {
	return c.total
}

func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c CreateOrderCommand) DeliveryInstructions() string {
	return c.deliveryInstructions
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer user.Actor) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	if !customer.Is(user.RoleCustomer) {
		return errs.NewAccessDeniedError("place an order", customer.Role.String())
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setItems(inputs []ItemInput) error {
	if len(inputs) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]order.Item, 0, len(inputs))
	var problems []error
	for idx, in := range inputs {
		price, err := kernel.MoneyFromFloat(in.UnitPrice)
		if err != nil {
			problems = append(problems, fmt.Errorf("items[%d]: %w", idx, err))
			continue
		}
		item, err := order.NewItem(in.ItemID, in.Name, price, in.Quantity)
		if err != nil {
			problems = append(problems, fmt.Errorf("items[%d]: %w", idx, err))
			continue
		}
		items = append(items, item)
	}

	if err := errors.Join(problems...); err != nil {
		return err
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setTotal(total *float64) error {
	if total == nil {
		return errs.NewValueIsRequiredError("total")
	}
	money, err := kernel.MoneyFromFloat(*total)
	if err != nil {
		return err
	}
	c.total = money
	return nil
}

func (c *CreateOrderCommand) validateAddress() error {
	if c.deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	return nil
}
