package commands

import (
	"errors"
	"strings"

	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand creates an account.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name           string
	email          string
	password       string
	role           user.Role
	restaurantName string
	studentID      string
	isAvailable    bool

	guard guard.ConstructorGuard
}

// RegisterUserInput carries the registration form.
type RegisterUserInput struct {
	Name           string
	Email          string
	Password       string
	Role           string
	RestaurantName string
	StudentID      string
	IsAvailable    bool
}

func NewRegisterUserCommand(in RegisterUserInput) (RegisterUserCommand, error) {
	var problems []error
	if strings.TrimSpace(in.Email) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	}
	if in.Password == "" {
		problems = append(problems, errs.NewValueIsRequiredError("password"))
	}
	role, err := user.ParseRole(in.Role)
	if err != nil {
		problems = append(problems, err)
	}
	if err = errors.Join(problems...); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		name:           in.Name,
		email:          in.Email,
		password:       in.Password,
		role:           role,
		restaurantName: in.RestaurantName,
		studentID:      in.StudentID,
		isAvailable:    in.IsAvailable,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}
