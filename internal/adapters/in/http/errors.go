package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"orderhub/internal/core/domain/services"
	"orderhub/internal/generated/servers"
	"orderhub/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
)

var errInvalidBody = echo.NewHTTPError(http.StatusBadRequest, "invalid request body")

// errorHandler writes every failure as servers.Error. Only 5xx responses are logged;
// their details never reach the client.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := classify(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, servers.Error{Code: status, Message: message})
		}
		if err != nil {
			logger.WarnContext(c.Request().Context(), "write error response", "error", err)
		}
	}
}

func classify(err error) (int, string) {
	var (
		httpErr     *echo.HTTPError
		securityErr *openapi3filter.SecurityRequirementsError
		requestErr  *openapi3filter.RequestError
	)

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.As(err, &securityErr):
		for _, cause := range securityErr.Errors {
			if !errors.Is(cause, errs.ErrAuthentication) {
				return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
			}
		}
		if len(securityErr.Errors) > 0 {
			return http.StatusUnauthorized, securityErr.Errors[0].Error()
		}
		return http.StatusUnauthorized, errs.ErrAuthentication.Error()
	case errors.As(err, &requestErr):
		return http.StatusBadRequest, requestErr.Error()
	case errors.Is(err, services.ErrNoDeliveryAvailable):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrAuthentication):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errs.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
