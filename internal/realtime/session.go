package realtime

import (
	"sync"

	"orderhub/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// DefaultSendBuffer is the number of frames a session may have queued before it
// is considered too slow and dropped.
const DefaultSendBuffer = 64

// Session is one authenticated live connection. Identity is fixed at creation.
type Session struct {
	id     string
	userID string
	name   string
	role   user.Role

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewSession creates a session with a buffer of bufferSize frames
// (DefaultSendBuffer when not positive).
func NewSession(userID string, name string, role user.Role, bufferSize int) *Session {
	if bufferSize <= 0 {
		bufferSize = DefaultSendBuffer
	}
	return &Session{
		id:     uuid.NewString(),
		userID: userID,
		name:   name,
		role:   role,
		send:   make(chan []byte, bufferSize),
		done:   make(chan struct{}),
	}
}

func (s *Session) ID() string      { return s.id }
func (s *Session) UserID() string  { return s.userID }
func (s *Session) Name() string    { return s.name }
func (s *Session) Role() user.Role { return s.role }

// Outbound yields encoded frames for the connection writer.
func (s *Session) Outbound() <-chan []byte {
	return s.send
}

// Done is closed once the hub has dropped the session.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// enqueue never blocks; it reports false when the buffer is full or the session is closed.
func (s *Session) enqueue(frame []byte) (ok bool) {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.send <- frame:
		return true
	default:
		return false
	}
}

func (s *Session) close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}
