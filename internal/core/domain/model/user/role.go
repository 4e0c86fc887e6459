package user

import (
	"fmt"

	"orderhub/internal/pkg/errs"
)

// Role decides which operations an actor may perform.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleDelivery   Role = "delivery"
)

// ParseRole accepts the wire name of a role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleRestaurant, RoleDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
