package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/errs"
)

// EstimatedDeliveryWindow is added to the creation time to produce estimatedDelivery.
const EstimatedDeliveryWindow = 30 * time.Minute

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrTotalMismatch is returned when the declared total differs from the sum of the items.
	ErrTotalMismatch = fmt.Errorf("%w: total does not match items", errs.ErrValueIsInvalid)
)

// Order is the aggregate root for a customer's order. Fields are private and only
// change through the lifecycle methods, which keep status and assignee consistent.
type Order struct {
	id                   kernel.UUID
	customerID           string
	items                []Item
	total                kernel.Money
	status               Status
	deliveryAddress      string
	deliveryInstructions string
	assignee             *Assignee
	createdAt            time.Time
	updatedAt            time.Time
	estimatedDelivery    time.Time
	isConstructed        bool
}

// NewOrder creates a pending order. declaredTotal is what the customer was shown;
// it must equal the sum of the item subtotals.
//
// Example:
//
//	tea, _ := order.NewItem("1", "Tea", 2000, 2)
//	o, err := order.NewOrder(kernel.NewUUID(), "u1", []order.Item{tea}, 4000, "12 Lake Rd", "", time.Now())
func NewOrder(
	id kernel.UUID,
	customerID string,
	items []Item,
	declaredTotal kernel.Money,
	deliveryAddress string,
	deliveryInstructions string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:               Pending,
		deliveryInstructions: strings.TrimSpace(deliveryInstructions),
		createdAt:            now.UTC(),
		updatedAt:            now.UTC(),
		estimatedDelivery:    now.UTC().Add(EstimatedDeliveryWindow),
		isConstructed:        true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	if o.total != declaredTotal {
		return nil, fmt.Errorf("%w: declared %s, items sum to %s", ErrTotalMismatch, declaredTotal, o.total)
	}

	return o, nil
}

// RestoreParams carries persisted order state into RestoreOrder.
type RestoreParams struct {
	ID                   kernel.UUID
	CustomerID           string
	Items                []Item
	Total                kernel.Money
	Status               Status
	DeliveryAddress      string
	DeliveryInstructions string
	Assignee             *Assignee
	CreatedAt            time.Time
	UpdatedAt            time.Time
	EstimatedDelivery    time.Time
}

// RestoreOrder rebuilds an order loaded from storage. The stored total is trusted;
// status and assignee must agree.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{
		deliveryInstructions: p.DeliveryInstructions,
		createdAt:            p.CreatedAt.UTC(),
		updatedAt:            p.UpdatedAt.UTC(),
		estimatedDelivery:    p.EstimatedDelivery.UTC(),
		isConstructed:        true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setCustomerID(p.CustomerID),
		o.setItems(p.Items),
		o.setDeliveryAddress(p.DeliveryAddress),
		p.Status.Validate(),
		validateAssignee(p.Status, p.Assignee),
	); err != nil {
		return nil, err
	}

	o.total = p.Total
	o.status = p.Status
	if p.Assignee != nil {
		a := *p.Assignee
		o.assignee = &a
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a copy of the order lines in their original order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

func (o *Order) DeliveryInstructions() string {
	return o.deliveryInstructions
}

// Assignee returns the dispatched delivery person, or nil while pending.
func (o *Order) Assignee() *Assignee {
	if o.assignee == nil {
		return nil
	}
	a := *o.assignee
	return &a
}

// IsAssignedTo reports whether userID is the dispatched delivery person.
func (o *Order) IsAssignedTo(userID string) bool {
	return o.assignee != nil && o.assignee.id == userID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) EstimatedDelivery() time.Time {
	return o.estimatedDelivery
}

// Assign dispatches a pending order to a delivery person.
func (o *Order) Assign(assignee Assignee, now time.Time) error {
	if assignee.id == "" {
		return errs.NewValueIsRequiredError("assignee")
	}
	if err := o.status.ValidateTransition(Assigned); err != nil {
		return err
	}

	o.assignee = &assignee
	o.status = Assigned
	o.touch(now)
	return nil
}

// ChangeStatus moves the order to target. Entering Assigned needs an assignee and
// therefore goes through Assign.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	if target == Assigned {
		return fmt.Errorf("%w: assignment requires a delivery person", ErrTransitionNotAllowed)
	}
	if err := o.status.ValidateTransition(target); err != nil {
		return err
	}

	o.status = target
	o.touch(now)
	return nil
}

// Clone returns a deep copy sharing no mutable state with o.
func (o *Order) Clone() *Order {
	c := *o
	c.items = o.Items()
	c.assignee = o.Assignee()
	return &c
}

// touch refreshes updatedAt, nudging it forward when the clock has not advanced.
func (o *Order) touch(now time.Time) {
	now = now.UTC()
	if !now.After(o.updatedAt) {
		now = o.updatedAt.Add(time.Microsecond)
	}
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var total kernel.Money
	for idx, item := range items {
		if item.itemID == "" || item.quantity < MinQuantity {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %d was not created via NewItem", idx))
		}
		sum, err := total.Plus(item.Subtotal())
		if err != nil {
			return fmt.Errorf("items total: %w", err)
		}
		total = sum
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.total = total
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func validateAssignee(status Status, assignee *Assignee) error {
	if assignee != nil && !status.RequiresAssignee() && status != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an assignee", status),
		)
	}
	if assignee == nil && status.RequiresAssignee() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no assignee", status),
		)
	}
	return nil
}
