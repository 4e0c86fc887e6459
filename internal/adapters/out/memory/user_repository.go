package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/errs"
)

// UserRepository is the default user directory when no database is configured.
type UserRepository struct {
	mu      sync.RWMutex
	users   map[string]*user.User
	byEmail map[string]string
	order   []string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:   make(map[string]*user.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepository) Add(_ context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email()]; exists {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%s is already registered", u.Email()))
	}
	if _, exists := r.users[u.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("user %s already exists", u.ID()))
	}

	r.users[u.ID()] = u.Clone()
	r.byEmail[u.Email()] = u.ID()
	r.order = append(r.order, u.ID())
	return nil
}

func (r *UserRepository) Update(_ context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.ID()]; !exists {
		return errs.NewObjectNotFoundError("user", u.ID())
	}
	r.users[u.ID()] = u.Clone()
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", id)
	}
	return u.Clone(), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", email)
	}
	return r.users[id].Clone(), nil
}

func (r *UserRepository) ListDeliveryCandidates(_ context.Context) ([]user.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	candidates := make([]user.Candidate, 0)
	for _, id := range r.order {
		if c, ok := r.users[id].Candidate(); ok {
			candidates = append(candidates, c)
		}
	}
	return candidates, nil
}
