package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"orderhub/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const (
	APIBasePath      = "/api"
	defaultBodyLimit = "64K"
)

var registerDocsOnce sync.Once

type routerConfig struct {
	allowedOrigins []string
	bodyLimit      string
	live           http.Handler
}

type RouterOption func(*routerConfig)

// WithAllowedOrigins enables CORS for the given origins. "*" allows any.
func WithAllowedOrigins(origins ...string) RouterOption {
	return func(c *routerConfig) {
		c.allowedOrigins = origins
	}
}

func WithBodyLimit(limit string) RouterOption {
	return func(c *routerConfig) {
		c.bodyLimit = limit
	}
}

// WithLiveChannel mounts the websocket endpoint at /ws.
func WithLiveChannel(h http.Handler) RouterOption {
	return func(c *routerConfig) {
		c.live = h
	}
}

// NewRouter assembles the echo instance: health probe, swagger UI, the live channel and
// the validated REST API under APIBasePath.
func NewRouter(server *Server, authn Authenticator, logger *slog.Logger, opts ...RouterOption) (*echo.Echo, error) {
	cfg := routerConfig{bodyLimit: defaultBodyLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = registerDocs(doc.MarshalJSON); err != nil {
		return nil, err
	}
	validator, err := requestValidator(doc, authn, APIBasePath)
	if err != nil {
		return nil, err
	}

	logger = logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	if len(cfg.allowedOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.allowedOrigins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		}))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if cfg.live != nil {
		e.GET("/ws", echo.WrapHandler(cfg.live))
	}

	api := e.Group(APIBasePath, middleware.BodyLimit(cfg.bodyLimit), validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}

// registerDocs publishes the OpenAPI document for echo-swagger. swag keeps a process
// wide registry, so this happens once.
func registerDocs(marshal func() ([]byte, error)) error {
	var err error
	registerDocsOnce.Do(func() {
		var raw []byte
		if raw, err = marshal(); err != nil {
			err = fmt.Errorf("marshal openapi document: %w", err)
			return
		}
		spec := &swag.Spec{
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(raw),
		}
		swag.Register(spec.InstanceName(), spec)
	})
	return err
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("path", v.URIPath),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}
