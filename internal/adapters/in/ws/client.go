package ws

import (
	"context"
	"errors"
	"time"

	"orderhub/internal/auth"
	"orderhub/internal/realtime"

	"github.com/gorilla/websocket"
)

// client pumps frames between one websocket and its hub session. Only
// writePump writes to the connection.
type client struct {
	handler   *Handler
	conn      *websocket.Conn
	session   *realtime.Session
	principal auth.Principal
}

func (c *client) readPump(ctx context.Context) {
	h := c.handler
	defer func() {
		h.hub.Unregister(c.session)
		_ = c.conn.Close()
		h.logger.InfoContext(ctx, "session disconnected", "session", c.session.ID(), "user", c.principal.UserID)
	}()

	c.conn.SetReadLimit(h.maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(h.pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.WarnContext(ctx, "websocket read failed", "session", c.session.ID(), "error", err)
			}
			return
		}
		c.dispatch(ctx, data)
	}
}

func (c *client) writePump() {
	h := c.handler
	ticker := time.NewTicker(pingPeriod(h.pongWait))
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame := <-c.session.Outbound():
			if err := c.write(websocket.TextMessage, frame); err != nil {
				h.hub.Unregister(c.session)
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				h.hub.Unregister(c.session)
				return
			}
		case <-c.session.Done():
			c.drain()
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// drain flushes frames queued before the session was closed.
func (c *client) drain() {
	for {
		select {
		case frame := <-c.session.Outbound():
			if err := c.write(websocket.TextMessage, frame); err != nil {
				return
			}
		default:
			return
		}
	}
}

func (c *client) write(messageType int, data []byte) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(c.handler.writeWait)); err != nil {
		return err
	}
	err := c.conn.WriteMessage(messageType, data)
	if errors.Is(err, websocket.ErrCloseSent) {
		return nil
	}
	return err
}

func pingPeriod(pongWait time.Duration) time.Duration {
	return pongWait * 9 / 10
}
