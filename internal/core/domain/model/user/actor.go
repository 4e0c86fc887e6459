package user

import (
	"strings"

	"orderhub/internal/pkg/errs"
)

// Actor is the authenticated identity on whose behalf an operation runs.
// It is fixed for the lifetime of a request or live session.
type Actor struct {
	UserID string
	Name   string
	Role   Role
}

func (a Actor) Validate() error {
	if strings.TrimSpace(a.UserID) == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	return a.Role.Validate()
}

func (a Actor) Is(role Role) bool {
	return a.Role == role
}
