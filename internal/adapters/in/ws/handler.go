// Package ws serves the live channel: an authenticated websocket per client,
// bridged to the realtime hub for outbound events and to the use cases for
// inbound ones.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"orderhub/internal/auth"
	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/application/usecases/queries"
	"orderhub/internal/realtime"

	"github.com/gorilla/websocket"
)

const (
	defaultWriteWait      = 10 * time.Second
	defaultPongWait       = 60 * time.Second
	defaultMaxMessageSize = 16 << 10
)

// Authenticator resolves a bearer credential to a principal.
type Authenticator interface {
	Authenticate(ctx context.Context, credential string) (auth.Principal, error)
}

// UseCases are the operations reachable from inbound events.
type UseCases struct {
	GetOrder       queries.GetOrderQueryHandler
	ChatHistory    queries.GetChatHistoryQueryHandler
	SendChat       commands.SendChatMessageCommandHandler
	UpdateLocation commands.UpdateLocationCommandHandler
	ChangeStatus   commands.ChangeOrderStatusCommandHandler
}

type Option func(*Handler)

// WithAllowedOrigins restricts the Origin header accepted during the upgrade.
// An empty list or "*" accepts every origin.
func WithAllowedOrigins(origins []string) Option {
	return func(h *Handler) {
		h.upgrader.CheckOrigin = originChecker(origins)
	}
}

// WithTimeouts overrides the write deadline and the pong wait. The ping period
// is derived from pongWait.
func WithTimeouts(writeWait time.Duration, pongWait time.Duration) Option {
	return func(h *Handler) {
		if writeWait > 0 {
			h.writeWait = writeWait
		}
		if pongWait > 0 {
			h.pongWait = pongWait
		}
	}
}

func WithSendBuffer(frames int) Option {
	return func(h *Handler) {
		h.sendBuffer = frames
	}
}

// Handler upgrades GET /ws.
type Handler struct {
	authn    Authenticator
	hub      *realtime.Hub
	useCases UseCases
	logger   *slog.Logger
	upgrader websocket.Upgrader

	writeWait      time.Duration
	pongWait       time.Duration
	maxMessageSize int64
	sendBuffer     int
}

func NewHandler(authn Authenticator, hub *realtime.Hub, useCases UseCases, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		authn:    authn,
		hub:      hub,
		useCases: useCases,
		logger:   logger.With("component", "ws"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(nil),
		},
		writeWait:      defaultWriteWait,
		pongWait:       defaultPongWait,
		maxMessageSize: defaultMaxMessageSize,
		sendBuffer:     realtime.DefaultSendBuffer,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP authenticates before upgrading: a request without a valid
// credential gets a plain 401 and never joins a room.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, err := h.authn.Authenticate(r.Context(), credential(r))
	if err != nil {
		writeJSONError(w, http.StatusUnauthorized, err.Error())
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		h.logger.WarnContext(r.Context(), "websocket upgrade failed", "user", principal.UserID, "error", err)
		return
	}

	session := realtime.NewSession(principal.UserID, principal.Name, principal.Role, h.sendBuffer)
	h.hub.Register(session)
	h.logger.InfoContext(r.Context(), "session connected",
		"session", session.ID(), "user", principal.UserID, "role", principal.Role.String())

	c := &client{
		handler:   h,
		conn:      conn,
		session:   session,
		principal: principal,
	}
	go c.writePump()
	c.readPump(context.WithoutCancel(r.Context()))
}

// credential reads the token from the Authorization header, falling back to
// the token query parameter for browser clients that cannot set headers.
func credential(r *http.Request) string {
	if token := auth.BearerToken(r.Header.Get("Authorization")); token != "" {
		return token
	}
	return strings.TrimSpace(r.URL.Query().Get("token"))
}

func originChecker(origins []string) func(r *http.Request) bool {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		if o != "" {
			allowed[strings.ToLower(o)] = struct{}{}
		}
	}
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := allowed[strings.ToLower(origin)]
		return ok
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"code": status, "message": message})
}
