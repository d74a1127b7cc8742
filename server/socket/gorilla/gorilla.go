// Package gorilla implements a websocket connection by wrapping gorilla/websocket.
package gorilla

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/jacobpatterson1549/selene-mosaic/game/message"
)

// MaxReadBytes is the largest message a client can send.
// Client messages are gestures and commands with a few short fields, so anything larger is not a message.Message.
const MaxReadBytes = 1 << 12

type (
	// Upgrader implements the socket.Upgrader interface by wrapping a gorilla/websocket Upgrader.
	// Upgraded connections can read messages up to ReadLimit bytes.
	Upgrader struct {
		*websocket.Upgrader
		ReadLimit int64
	}

	// Conn implements the socket.Conn interface by wrapping a gorilla/websocket connection.
	Conn struct {
		*websocket.Conn
	}
)

// NewUpgrader returns an upgrader that creates gorilla websocket connections.
func NewUpgrader() *Upgrader {
	u := Upgrader{
		Upgrader:  new(websocket.Upgrader),
		ReadLimit: MaxReadBytes,
	}
	return &u
}

// Upgrade creates a Conn from the http request.
func (u *Upgrader) Upgrade(w http.ResponseWriter, r *http.Request) (*Conn, error) {
	c, err := u.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}
	c.SetReadLimit(u.ReadLimit)
	return &Conn{c}, nil
}

// ReadMessage reads the next json message from the connection.
func (c *Conn) ReadMessage(m *message.Message) error {
	return c.Conn.ReadJSON(m)
}

// WriteMessage writes the message as json to the connection.
func (c *Conn) WriteMessage(m message.Message) error {
	return c.Conn.WriteJSON(m)
}

// WritePing writes a ping message on the connection.
func (c *Conn) WritePing() error {
	return c.Conn.WriteMessage(websocket.PingMessage, nil)
}

// WriteClose writes a close message on the connection.  The connection is NOT closed.
func (c *Conn) WriteClose(reason string) error {
	data := websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason)
	return c.Conn.WriteMessage(websocket.CloseMessage, data)
}

// IsNormalClose determines if the error message is not an unexpected close error.
func (*Conn) IsNormalClose(err error) bool {
	_, ok := err.(*websocket.CloseError) // only errors from gorilla can be normal close errors
	return ok && !websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived)
}
