package commands

import (
	"errors"
	"strings"

	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand exchanges credentials for a session token.
type LoginCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewLoginCommand(email string, password string) (LoginCommand, error) {
	var problems []error
	if strings.TrimSpace(email) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		problems = append(problems, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(problems...); err != nil {
		return LoginCommand{}, err
	}
	return LoginCommand{email: email, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}
