package services

import (
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/errs"
)

// TransitionPolicy decides whether an actor may request a status change.
//
//   - restaurant: any legal transition, including cancellation and assignment
//   - delivery: only on orders assigned to them, never cancellation or assignment
//   - anyone else: nothing
type TransitionPolicy struct{}

func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// Authorize returns an AccessDeniedError when the actor may not move o to target.
// It does not check that the transition itself is legal.
func (TransitionPolicy) Authorize(o *order.Order, target order.Status, role user.Role, actorID string) error {
	switch role {
	case user.RoleRestaurant:
		return nil
	case user.RoleDelivery:
		if target == order.Cancelled || target == order.Assigned {
			return errs.NewAccessDeniedError("set status "+target.String(), role.String())
		}
		if !o.IsAssignedTo(actorID) {
			return errs.NewAccessDeniedError("update an order assigned to someone else", role.String())
		}
		return nil
	default:
		return errs.NewAccessDeniedError("update order status", role.String())
	}
}

// CanView reports whether an actor may read an order.
func (TransitionPolicy) CanView(o *order.Order, role user.Role, actorID string) bool {
	switch role {
	case user.RoleRestaurant, user.RoleDelivery:
		return true
	case user.RoleCustomer:
		return o.CustomerID() == actorID
	default:
		return false
	}
}

// IsParticipant reports whether an actor takes part in the order's conversation.
func (TransitionPolicy) IsParticipant(o *order.Order, role user.Role, actorID string) bool {
	switch role {
	case user.RoleRestaurant:
		return true
	case user.RoleDelivery:
		return o.IsAssignedTo(actorID)
	case user.RoleCustomer:
		return o.CustomerID() == actorID
	default:
		return false
	}
}
