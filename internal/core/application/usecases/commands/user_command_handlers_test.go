package commands_test

import (
	"errors"
	"testing"
	"time"

	"orderhub/internal/adapters/out/memory"
	"orderhub/internal/auth"
	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func register(t *testing.T, users *memory.UserRepository, tokens *MockTokenIssuer, in commands.RegisterUserInput) (commands.Session, error) {
	t.Helper()
	cmd, err := commands.NewRegisterUserCommand(in)
	require.NoError(t, err)
	return commands.NewRegisterUserCommandHandler(users, tokens).Handle(t.Context(), cmd)
}

func TestRegisterUserCommandHandler_Handle(t *testing.T) {
	expires := time.Now().Add(time.Hour)

	t.Run("should create the account and sign it in", func(t *testing.T) {
		users := memory.NewUserRepository()
		tokens := new(MockTokenIssuer)
		tokens.On("Issue", mock.AnythingOfType("*user.User")).Return("tok", expires, nil).Once()

		session, err := register(t, users, tokens, commands.RegisterUserInput{
			Name:      "Dana",
			Email:     "Dana@Example.com",
			Password:  "secret1",
			Role:      "delivery",
			StudentID: "5",
		})

		require.NoError(t, err)
		assert.Equal(t, "tok", session.Token)
		assert.Equal(t, expires, session.ExpiresAt)
		assert.Equal(t, "dana@example.com", session.User.Email())
		assert.NotEqual(t, "secret1", session.User.PasswordHash())
		require.NoError(t, auth.VerifyPassword(session.User, "secret1"))

		stored, err := users.FindByEmail(t.Context(), "dana@example.com")
		require.NoError(t, err)
		assert.Equal(t, session.User.ID(), stored.ID())
		tokens.AssertExpectations(t)
	})

	t.Run("should refuse a taken email", func(t *testing.T) {
		users := memory.NewUserRepository()
		tokens := new(MockTokenIssuer)
		tokens.On("Issue", mock.Anything).Return("tok", expires, nil).Once()
		in := commands.RegisterUserInput{Name: "Cara", Email: "cara@example.com", Password: "secret1", Role: "customer"}
		_, err := register(t, users, tokens, in)
		require.NoError(t, err)

		_, err = register(t, users, tokens, in)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		tokens.AssertNumberOfCalls(t, "Issue", 1)
	})

	t.Run("should refuse short passwords", func(t *testing.T) {
		_, err := register(t, memory.NewUserRepository(), new(MockTokenIssuer), commands.RegisterUserInput{
			Name: "Cara", Email: "cara@example.com", Password: "123", Role: "customer",
		})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should require a student id for delivery staff", func(t *testing.T) {
		_, err := register(t, memory.NewUserRepository(), new(MockTokenIssuer), commands.RegisterUserInput{
			Name: "Dana", Email: "dana@example.com", Password: "secret1", Role: "delivery",
		})

		require.Error(t, err)
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(commands.RegisterUserInput{
			Name: "Max", Email: "max@example.com", Password: "secret1", Role: "admin",
		})

		require.Error(t, err)
	})
}

func TestLoginCommandHandler_Handle(t *testing.T) {
	expires := time.Now().Add(time.Hour)
	users := memory.NewUserRepository()
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	cara, err := user.NewUser(user.Params{
		ID: "c1", Name: "Cara", Email: "cara@example.com", PasswordHash: hash, Role: user.RoleCustomer, CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, users.Add(t.Context(), cara))

	login := func(t *testing.T, tokens *MockTokenIssuer, email string, password string) (commands.Session, error) {
		t.Helper()
		cmd, err := commands.NewLoginCommand(email, password)
		require.NoError(t, err)
		return commands.NewLoginCommandHandler(users, tokens).Handle(t.Context(), cmd)
	}

	t.Run("should issue a token for valid credentials", func(t *testing.T) {
		tokens := new(MockTokenIssuer)
		tokens.On("Issue", mock.AnythingOfType("*user.User")).Return("tok", expires, nil).Once()

		session, err := login(t, tokens, "CARA@example.com", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "c1", session.User.ID())
		assert.Equal(t, "tok", session.Token)
	})

	t.Run("should fail the same way for a wrong password and an unknown email", func(t *testing.T) {
		tokens := new(MockTokenIssuer)

		_, wrongPassword := login(t, tokens, "cara@example.com", "nope")
		_, unknownEmail := login(t, tokens, "nobody@example.com", "secret1")

		require.ErrorIs(t, wrongPassword, auth.ErrInvalidCredentials)
		require.ErrorIs(t, unknownEmail, auth.ErrInvalidCredentials)
		tokens.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("should wrap signing failures", func(t *testing.T) {
		tokens := new(MockTokenIssuer)
		tokens.On("Issue", mock.Anything).Return("", time.Time{}, errors.New("no key")).Once()

		_, err := login(t, tokens, "cara@example.com", "secret1")

		require.EqualError(t, err, "issue token: no key")
	})

	t.Run("should require both fields", func(t *testing.T) {
		_, err := commands.NewLoginCommand("", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSetAvailabilityCommandHandler_Handle(t *testing.T) {
	yes, no := true, false

	t.Run("should toggle availability for delivery staff", func(t *testing.T) {
		users := memory.NewUserRepository()
		require.NoError(t, users.Add(t.Context(), newDeliveryUser(t, "d1", "5", true)))
		cmd, err := commands.NewSetAvailabilityCommand(courier, &no)
		require.NoError(t, err)

		updated, err := commands.NewSetAvailabilityCommandHandler(users).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.False(t, updated.IsAvailable())
		candidates, err := users.ListDeliveryCandidates(t.Context())
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.False(t, candidates[0].IsAvailable)
	})

	t.Run("should deny other roles", func(t *testing.T) {
		users := new(MockUserRepository)
		u, err := user.NewUser(user.Params{
			ID: "c1", Name: "Cara", Email: "cara@example.com", PasswordHash: "hash", Role: user.RoleCustomer,
		})
		require.NoError(t, err)
		users.On("FindByID", mock.Anything, "c1").Return(u, nil).Once()
		cmd, err := commands.NewSetAvailabilityCommand(customer, &yes)
		require.NoError(t, err)

		_, err = commands.NewSetAvailabilityCommandHandler(users).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should require a value", func(t *testing.T) {
		_, err := commands.NewSetAvailabilityCommand(courier, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPruneChatCommandHandler_Handle(t *testing.T) {
	t.Run("should prune messages older than the retention period", func(t *testing.T) {
		chatLog := new(MockChatLog)
		chatLog.On("PruneBefore", mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
			age := time.Since(cutoff)
			return age >= 24*time.Hour && age < 25*time.Hour
		})).Return(3, nil).Once()
		cmd, err := commands.NewPruneChatCommand(24 * time.Hour)
		require.NoError(t, err)

		removed, err := commands.NewPruneChatCommandHandler(chatLog).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 3, removed)
		chatLog.AssertExpectations(t)
	})

	t.Run("should reject a non-positive retention", func(t *testing.T) {
		_, err := commands.NewPruneChatCommand(0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
