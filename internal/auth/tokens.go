// Package auth issues and verifies session tokens and checks passwords.
//
// A verified token yields a Principal that stays fixed for the lifetime of the
// connection or request that presented it.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultTokenTTL = 30 * 24 * time.Hour
	issuer          = "orderhub"
)

// Claims are carried in every session token. The subject is the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type TokenOption func(*TokenIssuer)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) TokenOption {
	return func(i *TokenIssuer) {
		i.now = now
	}
}

func NewTokenIssuer(secret string, ttl time.Duration, opts ...TokenOption) (*TokenIssuer, error) {
	if len(secret) < 16 {
		return nil, errs.NewValueIsInvalidErrorWithCause("jwt secret", errors.New("must be at least 16 bytes"))
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	i := &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Issue signs a token for u and returns it with its expiry.
func (i *TokenIssuer) Issue(u *user.User) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.ttl)

	claims := Claims{
		Role: u.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature, algorithm, issuer and expiry.
func (i *TokenIssuer) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.NewAuthenticationErrorWithCause("token expired", err)
		}
		return nil, errs.NewAuthenticationErrorWithCause("invalid token", err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, errs.NewAuthenticationError("invalid token")
	}
	return claims, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
