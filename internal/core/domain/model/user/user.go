package user

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"orderhub/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User was not created through NewUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is an account. Restaurant accounts carry a restaurant name, delivery accounts
// a student id and an availability toggle.
type User struct {
	id             string
	name           string
	email          string
	passwordHash   string
	role           Role
	restaurantName string
	studentID      string
	isAvailable    bool
	createdAt      time.Time
	isConstructed  bool
}

// Params lists the fields of a User for NewUser.
type Params struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string
	Role           Role
	RestaurantName string
	StudentID      string
	IsAvailable    bool
	CreatedAt      time.Time
}

// NewUser validates p. Availability is only kept for delivery accounts.
func NewUser(p Params) (*User, error) {
	var problems []error

	if strings.TrimSpace(p.ID) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("id"))
	}
	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	email := strings.ToLower(strings.TrimSpace(p.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("email", err))
	}
	if p.PasswordHash == "" {
		problems = append(problems, errs.NewValueIsRequiredError("password"))
	}
	if err := p.Role.Validate(); err != nil {
		problems = append(problems, err)
	}
	if p.Role == RoleDelivery && strings.TrimSpace(p.StudentID) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("studentId"))
	}
	if p.Role == RoleRestaurant && strings.TrimSpace(p.RestaurantName) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("restaurantName"))
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	u := &User{
		id:            p.ID,
		name:          strings.TrimSpace(p.Name),
		email:         email,
		passwordHash:  p.PasswordHash,
		role:          p.Role,
		createdAt:     p.CreatedAt.UTC(),
		isConstructed: true,
	}
	switch p.Role {
	case RoleRestaurant:
		u.restaurantName = strings.TrimSpace(p.RestaurantName)
	case RoleDelivery:
		u.studentID = strings.TrimSpace(p.StudentID)
		u.isAvailable = p.IsAvailable
	case RoleCustomer:
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() string             { return u.id }
func (u *User) Name() string           { return u.name }
func (u *User) Email() string          { return u.email }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) Role() Role             { return u.role }
func (u *User) RestaurantName() string { return u.restaurantName }
func (u *User) StudentID() string      { return u.studentID }
func (u *User) IsAvailable() bool      { return u.isAvailable }
func (u *User) CreatedAt() time.Time   { return u.createdAt }

// SetAvailability toggles whether a delivery person accepts new assignments.
func (u *User) SetAvailability(available bool) error {
	if u.role != RoleDelivery {
		return errs.NewAccessDeniedError("set availability", u.role.String())
	}
	u.isAvailable = available
	return nil
}

// Candidate projects a delivery user for dispatch. ok is false for other roles.
func (u *User) Candidate() (Candidate, bool) {
	if u.role != RoleDelivery {
		return Candidate{}, false
	}
	return Candidate{
		ID:          u.id,
		Name:        u.name,
		StudentID:   u.studentID,
		IsAvailable: u.isAvailable,
	}, true
}

// Clone returns an independent copy.
func (u *User) Clone() *User {
	c := *u
	return &c
}
