package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"orderhub/internal/auth"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

const principalKey = "orderhub.principal"

// Authenticator resolves bearer credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, credential string) (auth.Principal, error)
}

// requestValidator checks every request under basePath against doc. Operations with a
// bearerAuth requirement are authenticated here and the principal is stored on the
// echo context. Paths the document does not describe pass through untouched.
func requestValidator(doc *openapi3.T, authn Authenticator, basePath string) (echo.MiddlewareFunc, error) {
	doc.Servers = nil
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			probe := req.Clone(req.Context())
			probe.URL.Path = strings.TrimPrefix(req.URL.Path, basePath)
			probe.URL.RawPath = ""

			route, pathParams, err := router.FindRoute(probe)
			if err != nil {
				return next(c)
			}

			if req.Body != nil && req.Body != http.NoBody {
				body, readErr := io.ReadAll(req.Body)
				if readErr != nil {
					return errInvalidBody
				}
				req.Body = io.NopCloser(bytes.NewReader(body))
				probe.Body = io.NopCloser(bytes.NewReader(body))
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    probe,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: func(ctx context.Context, in *openapi3filter.AuthenticationInput) error {
						credential := auth.BearerToken(in.RequestValidationInput.Request.Header.Get(echo.HeaderAuthorization))
						principal, authErr := authn.Authenticate(ctx, credential)
						if authErr != nil {
							return authErr
						}
						c.Set(principalKey, principal)
						return nil
					},
				},
			}

			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return err
			}
			return next(c)
		}
	}, nil
}

func principalFrom(c echo.Context) (user.Actor, error) {
	principal, ok := c.Get(principalKey).(auth.Principal)
	if !ok {
		return user.Actor{}, errs.NewAuthenticationError("token not provided")
	}
	return principal, nil
}
