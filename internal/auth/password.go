package auth

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	maxPasswordBytes  = 72
)

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = errs.NewAuthenticationError("invalid credentials")

// HashPassword validates the length and returns a bcrypt hash.
func HashPassword(password string) (string, error) {
	if n := utf8.RuneCountInString(password); n < MinPasswordLength {
		return "", errs.NewValueIsOutOfRangeError("password length", n, MinPasswordLength, maxPasswordBytes)
	}
	if len(password) > maxPasswordBytes {
		return "", errs.NewValueIsOutOfRangeError("password length", len(password), MinPasswordLength, maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares password with the stored hash of u.
func VerifyPassword(u *user.User, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("compare password: %w", err)
	}
	return nil
}
