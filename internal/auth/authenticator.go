package auth

import (
	"context"
	"errors"

	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/errs"
)

// Principal is the identity attached to a request or live session.
type Principal = user.Actor

// UserFinder resolves token subjects.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

// Authenticator turns a bearer credential into a Principal.
type Authenticator struct {
	tokens *TokenIssuer
	users  UserFinder
}

func NewAuthenticator(tokens *TokenIssuer, users UserFinder) *Authenticator {
	return &Authenticator{tokens: tokens, users: users}
}

// Authenticate fails with an AuthenticationError when the credential is missing,
// malformed, badly signed or expired, or names a user that no longer exists.
// Identity and role come from the stored user, not from the token.
func (a *Authenticator) Authenticate(ctx context.Context, credential string) (Principal, error) {
	if credential == "" {
		return Principal{}, errs.NewAuthenticationError("token not provided")
	}

	claims, err := a.tokens.Verify(credential)
	if err != nil {
		return Principal{}, err
	}

	u, err := a.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return Principal{}, errs.NewAuthenticationErrorWithCause("user no longer exists", err)
		}
		return Principal{}, err
	}

	return Principal{UserID: u.ID(), Name: u.Name(), Role: u.Role()}, nil
}
