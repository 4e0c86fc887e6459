// Package realtime routes events to live sessions through named rooms.
//
// Rooms are created on first join and removed when their last member leaves.
// Delivery is at most once: a session that is not registered when an event is
// published never receives it, and a session whose outbound buffer is full is
// dropped rather than allowed to slow the publisher down.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"orderhub/internal/core/domain/events"
	"orderhub/internal/core/domain/model/user"

	"github.com/sourcegraph/conc/panics"
	"github.com/sourcegraph/conc/pool"
)

const defaultFanOutWorkers = 8

// Envelope is the frame written to clients.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Hub is the room router. It implements ports.EventPublisher.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	rooms    map[string]map[string]*Session

	workers int
	logger  *slog.Logger
}

type HubOption func(*Hub)

// WithFanOutWorkers bounds the goroutines used to deliver a single event.
func WithFanOutWorkers(n int) HubOption {
	return func(h *Hub) {
		if n > 0 {
			h.workers = n
		}
	}
}

func NewHub(logger *slog.Logger, opts ...HubOption) *Hub {
	h := &Hub{
		sessions: make(map[string]*Session),
		rooms:    make(map[string]map[string]*Session),
		workers:  defaultFanOutWorkers,
		logger:   logger.With("component", "realtime_hub"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register admits a session and joins it to its private room and, for restaurant
// and delivery staff, to the role room.
func (h *Hub) Register(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sessions[s.id] = s
	h.joinLocked(s, events.UserRoom(s.userID))
	switch s.role {
	case user.RoleRestaurant:
		h.joinLocked(s, events.RoomRestaurant)
	case user.RoleDelivery:
		h.joinLocked(s, events.RoomDelivery)
	case user.RoleCustomer:
	}
}

// Unregister removes a session from every room and closes it. Safe to call twice.
func (h *Hub) Unregister(s *Session) {
	h.mu.Lock()
	h.removeLocked(s)
	h.mu.Unlock()

	s.close()
}

// Join subscribes a registered session to room.
func (h *Hub) Join(s *Session, room string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[s.id]; !ok {
		return fmt.Errorf("session %s is not registered", s.id)
	}
	h.joinLocked(s, room)
	return nil
}

// Leave unsubscribes a session from room. Leaving a room one is not in is a no-op.
func (h *Hub) Leave(s *Session, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leaveLocked(s.id, room)
}

// Publish delivers to every session in room. It returns after every member has
// been offered the frame, so successive publishes reach each session in order.
func (h *Hub) Publish(ctx context.Context, room string, event string, payload any) {
	h.mu.RLock()
	members := make([]*Session, 0, len(h.rooms[room]))
	for _, s := range h.rooms[room] {
		members = append(members, s)
	}
	h.mu.RUnlock()

	h.deliver(ctx, members, event, payload)
}

// Broadcast delivers to every registered session.
func (h *Hub) Broadcast(ctx context.Context, event string, payload any) {
	h.mu.RLock()
	members := make([]*Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		members = append(members, s)
	}
	h.mu.RUnlock()

	h.deliver(ctx, members, event, payload)
}

// Send delivers to a single session, used for replies such as chat:history.
func (h *Hub) Send(ctx context.Context, s *Session, event string, payload any) {
	h.deliver(ctx, []*Session{s}, event, payload)
}

// Members reports how many sessions are in room.
func (h *Hub) Members(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// SessionCount reports how many sessions are registered.
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// RoomCount reports how many non-empty rooms exist.
func (h *Hub) RoomCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms)
}

// InRoom reports whether s is a member of room.
func (h *Hub) InRoom(s *Session, room string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.rooms[room][s.id]
	return ok
}

func (h *Hub) deliver(ctx context.Context, members []*Session, event string, payload any) {
	if len(members) == 0 {
		return
	}

	frame, err := Encode(event, payload)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to encode event", "event", event, "error", err)
		return
	}

	p := pool.New().WithMaxGoroutines(h.workers)
	for _, s := range members {
		p.Go(func() {
			var catcher panics.Catcher
			delivered := false
			catcher.Try(func() { delivered = s.enqueue(frame) })

			if r := catcher.Recovered(); r != nil {
				h.logger.ErrorContext(ctx, "event delivery panicked", "event", event, "session", s.id, "panic", r.Value)
				delivered = false
			}
			if !delivered {
				h.drop(ctx, s, event)
			}
		})
	}
	p.Wait()
}

func (h *Hub) drop(ctx context.Context, s *Session, event string) {
	h.mu.Lock()
	_, registered := h.sessions[s.id]
	h.removeLocked(s)
	h.mu.Unlock()

	s.close()
	if registered {
		h.logger.WarnContext(ctx, "dropping slow session", "session", s.id, "user", s.userID, "event", event)
	}
}

func (h *Hub) joinLocked(s *Session, room string) {
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[string]*Session)
		h.rooms[room] = members
	}
	members[s.id] = s
}

func (h *Hub) leaveLocked(sessionID string, room string) {
	members, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(members, sessionID)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

func (h *Hub) removeLocked(s *Session) {
	delete(h.sessions, s.id)
	for room := range h.rooms {
		h.leaveLocked(s.id, room)
	}
}

// Encode builds a client frame.
func Encode(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", event, err)
	}
	return json.Marshal(Envelope{Event: event, Data: data})
}
