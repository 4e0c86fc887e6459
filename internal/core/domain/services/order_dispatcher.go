package services

import (
	"time"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/user"
)

// OrderDispatcher assigns a pending order to the candidate chosen by DeliverySelector.
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	chosen, err := dispatcher.Dispatch(o, candidates, time.Now())
//	if errors.Is(err, services.ErrNoDeliveryAvailable) {
//	    // the order is still pending
//	}
type OrderDispatcher struct {
	selector DeliverySelector
}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{selector: NewDeliverySelector()}
}

// Dispatch selects a candidate and assigns the order. On any error the order is untouched.
func (d OrderDispatcher) Dispatch(o *order.Order, candidates []user.Candidate, now time.Time) (user.Candidate, error) {
	if err := o.Validate(); err != nil {
		return user.Candidate{}, err
	}

	if err := o.Status().ValidateTransition(order.Assigned); err != nil {
		return user.Candidate{}, err
	}

	chosen, err := d.selector.Select(candidates)
	if err != nil {
		return user.Candidate{}, err
	}

	assignee, err := order.NewAssignee(chosen.ID, chosen.Name, chosen.StudentID)
	if err != nil {
		return user.Candidate{}, err
	}

	if err = o.Assign(assignee, now); err != nil {
		return user.Candidate{}, err
	}

	return chosen, nil
}
