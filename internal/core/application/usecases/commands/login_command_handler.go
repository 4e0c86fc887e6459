package commands

import (
	"context"
	"errors"
	"fmt"

	"orderhub/internal/auth"
	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/errs"
)

// LoginCommandHandler checks the password and issues a token. Unknown emails and
// wrong passwords fail with the same auth.ErrInvalidCredentials.
type LoginCommandHandler struct {
	users  ports.UserRepository
	tokens ports.TokenIssuer
}

func NewLoginCommandHandler(users ports.UserRepository, tokens ports.TokenIssuer) LoginCommandHandler {
	return LoginCommandHandler{users: users, tokens: tokens}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (Session, error) {
	if err := cmd.Validate(); err != nil {
		return Session{}, err
	}

	u, err := h.users.FindByEmail(ctx, cmd.email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Session{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}

	if err = auth.VerifyPassword(u, cmd.password); err != nil {
		return Session{}, err
	}

	token, expiresAt, err := h.tokens.Issue(u)
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}
	return Session{User: u, Token: token, ExpiresAt: expiresAt}, nil
}
