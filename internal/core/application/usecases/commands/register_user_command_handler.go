package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orderhub/internal/auth"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/errs"

	"github.com/google/uuid"
)

// Session is a signed-in user with its token.
type Session struct {
	User      *user.User
	Token     string
	ExpiresAt time.Time
}

// RegisterUserCommandHandler creates the account and signs the user in.
type RegisterUserCommandHandler struct {
	users  ports.UserRepository
	tokens ports.TokenIssuer
	now    func() time.Time
}

func NewRegisterUserCommandHandler(users ports.UserRepository, tokens ports.TokenIssuer) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{users: users, tokens: tokens, now: time.Now}
}

func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (Session, error) {
	if err := cmd.Validate(); err != nil {
		return Session{}, err
	}

	_, err := h.users.FindByEmail(ctx, cmd.email)
	if err == nil {
		return Session{}, errs.NewValueIsInvalidErrorWithCause("email", errors.New("user already exists"))
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return Session{}, err
	}

	hash, err := auth.HashPassword(cmd.password)
	if err != nil {
		return Session{}, err
	}

	u, err := user.NewUser(user.Params{
		ID:             uuid.NewString(),
		Name:           cmd.name,
		Email:          cmd.email,
		PasswordHash:   hash,
		Role:           cmd.role,
		RestaurantName: cmd.restaurantName,
		StudentID:      cmd.studentID,
		IsAvailable:    cmd.isAvailable,
		CreatedAt:      h.now(),
	})
	if err != nil {
		return Session{}, err
	}

	if err = h.users.Add(ctx, u); err != nil {
		return Session{}, err
	}

	token, expiresAt, err := h.tokens.Issue(u)
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}
	return Session{User: u, Token: token, ExpiresAt: expiresAt}, nil
}
