package ports

import (
	"context"
	"time"

	"orderhub/internal/core/domain/model/user"
)

// UserRepository is the user directory.
type UserRepository interface {
	// Add stores a new user. A duplicate email fails with a validation error.
	Add(ctx context.Context, u *user.User) error

	Update(ctx context.Context, u *user.User) error

	// FindByID returns the user or errs.ObjectNotFoundError.
	FindByID(ctx context.Context, id string) (*user.User, error)

	// FindByEmail matches case-insensitively and returns errs.ObjectNotFoundError when absent.
	FindByEmail(ctx context.Context, email string) (*user.User, error)

	// ListDeliveryCandidates projects every delivery user, available or not.
	ListDeliveryCandidates(ctx context.Context) ([]user.Candidate, error)
}

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	Issue(u *user.User) (token string, expiresAt time.Time, err error)
}
