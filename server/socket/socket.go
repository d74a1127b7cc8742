// Package socket handles communication with a user using a websocket connection.
package socket

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jacobpatterson1549/selene-mosaic/game/message"
	"github.com/jacobpatterson1549/selene-mosaic/server/log"
)

type (
	// Socket reads and writes messages to the browsers.
	Socket struct {
		Conn
		active atomic.Bool
		Config
	}

	// Config contains commonly shared Socket properties.
	Config struct {
		// Debug is a flag that causes the socket to log the types non-ping/pong messages that are read/written.
		Debug bool
		// Log is used to log errors and other information.
		Log log.Logger
		// TimeFunc is a function which should supply the current time since the unix epoch.
		// Used to set ping/pong deadlines.
		TimeFunc func() int64
		// ReadWait is the amount of time that can pass between receiving client messages before timing out.
		ReadWait time.Duration
		// WriteWait is the amount of time that the socket can take to write a message.
		WriteWait time.Duration
		// PingPeriod is how often ping messages should be sent.  Should be less than ReadWait.
		PingPeriod time.Duration
		// IdlePeriod is the amount of time that can pass between handling messages that are not pings before the connection is idle and will be disconnected.
		IdlePeriod time.Duration
	}

	// Conn is the connection than backs the socket.
	Conn interface {
		// ReadMessage reads the next message from the connection.
		ReadMessage(m *message.Message) error
		// WriteMessage writes a message to the connection.
		WriteMessage(m message.Message) error
		// SetReadDeadline sets how long a read can take before it returns an error.
		SetReadDeadline(t time.Time) error
		// SetWriteDeadline sets how long a write can take before it returns an error.
		SetWriteDeadline(t time.Time) error
		// SetPongHandler is triggered when the server receives a pong response from a previous ping.
		SetPongHandler(h func(appData string) error)
		// Close closes the connection.
		Close() error
		// WritePing writes a ping message on the connection.
		WritePing() error
		// WriteClose writes a close message on the connection.  The connection is NOT closed.
		WriteClose(reason string) error
		// IsNormalClose determines if the error message is not an unexpected close error.
		IsNormalClose(err error) bool
		// RemoteAddr gets the remote network address of the connection.
		RemoteAddr() net.Addr
	}
)

var errSocketClosed = errors.New("socket closed")

// NewSocket creates a socket.
func (cfg Config) NewSocket(conn Conn) (*Socket, error) {
	if err := cfg.validate(conn); err != nil {
		return nil, fmt.Errorf("creating socket: validation: %w", err)
	}
	s := Socket{
		Conn:   conn,
		Config: cfg,
	}
	return &s, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate(conn Conn) error {
	switch {
	case cfg.Log == nil:
		return fmt.Errorf("log required")
	case conn == nil:
		return fmt.Errorf("websocket connection required")
	case cfg.TimeFunc == nil:
		return fmt.Errorf("time func required")
	case cfg.ReadWait <= 0:
		return fmt.Errorf("positive read wait period required")
	case cfg.WriteWait <= 0:
		return fmt.Errorf("positive write wait period required")
	case cfg.PingPeriod <= 0:
		return fmt.Errorf("positive ping period required")
	case cfg.IdlePeriod <= 0:
		return fmt.Errorf("positive idle period required")
	case cfg.PingPeriod >= cfg.ReadWait:
		return fmt.Errorf("ping period should be less than read wait")
	}
	return nil
}

// Run reads messages from the connection onto the out channel and writes messages from the in channel to the connection.
// Reading happens on a separate goroutine.  Out is closed when reading stops.
// Run blocks until the in channel is closed, the connection fails, the connection is idle, or the context is cancelled.
// The connection is always closed before Run returns.
func (s *Socket) Run(ctx context.Context, in <-chan message.Message, out chan<- message.Message) {
	ctx, cancelFunc := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go s.readMessages(ctx, out, &wg)
	s.writeMessages(ctx, in)
	cancelFunc()
	s.Conn.Close()
	wg.Wait()
}

// readMessages receives messages from the connected socket and writes them to the out channel.
// Messages are not sent if the reading is cancelled or an error is encountered.
func (s *Socket) readMessages(ctx context.Context, out chan<- message.Message, wg *sync.WaitGroup) {
	defer func() {
		close(out)
		wg.Done()
	}()
	s.Conn.SetPongHandler(s.refreshReadDeadline)
	if err := s.refreshReadDeadline(""); err != nil {
		return
	}
	for { // BLOCKING
		m, err := s.readMessage()
		if err != nil {
			if err != errSocketClosed && ctx.Err() == nil {
				s.Log.Printf("reading socket messages stopped for %v: %v", s.RemoteAddr(), err)
			}
			return
		}
		select {
		case <-ctx.Done():
			return
		case out <- *m:
		}
		s.active.Store(true)
	}
}

// writeMessages sends messages from the in channel to the connected socket.
// Pings are written periodically and the connection is closed if no messages are read for a while.
func (s *Socket) writeMessages(ctx context.Context, in <-chan message.Message) {
	pingTicker := time.NewTicker(s.PingPeriod)
	idleTicker := time.NewTicker(s.IdlePeriod)
	var closeReason string
	defer func() {
		pingTicker.Stop()
		idleTicker.Stop()
		s.Conn.WriteClose(closeReason)
		if s.Debug {
			s.Log.Printf("closing socket for %v: %v", s.RemoteAddr(), closeReason)
		}
	}()
	for { // BLOCKING
		var err error
		select {
		case <-ctx.Done():
			closeReason = "server shutting down"
			return
		case m, ok := <-in:
			if !ok {
				closeReason = "mosaic closed"
				return
			}
			err = s.writeMessage(m)
		case <-pingTicker.C:
			err = s.writePing()
		case <-idleTicker.C:
			if !s.active.Swap(false) {
				closeReason = "closing socket due to inactivity"
				return
			}
		}
		if err != nil {
			closeReason = fmt.Sprintf("writing socket messages stopped: %v", err)
			s.Log.Printf("%v for %v", closeReason, s.RemoteAddr())
			return
		}
	}
}

// readMessage reads the next message from the connection.
func (s *Socket) readMessage() (*message.Message, error) {
	var m message.Message
	if err := s.Conn.ReadMessage(&m); err != nil { // BLOCKING
		if s.Conn.IsNormalClose(err) {
			return nil, errSocketClosed
		}
		return nil, fmt.Errorf("unexpected socket closure: %w", err)
	}
	if s.Debug {
		s.Log.Printf("socket reading message with type %v", m.Type)
	}
	if err := s.refreshReadDeadline(""); err != nil {
		return nil, err
	}
	return &m, nil
}

// writeMessage writes a message to the connection.
func (s *Socket) writeMessage(m message.Message) error {
	if s.Debug {
		s.Log.Printf("socket writing message with type %v", m.Type)
	}
	if err := s.refreshWriteDeadline(); err != nil {
		return err
	}
	if err := s.Conn.WriteMessage(m); err != nil {
		return fmt.Errorf("writing socket message: %w", err)
	}
	return nil
}

// writePing writes a ping to keep the connection open.
func (s *Socket) writePing() error {
	if err := s.refreshWriteDeadline(); err != nil {
		return err
	}
	if err := s.Conn.WritePing(); err != nil {
		return fmt.Errorf("writing ping message: %w", err)
	}
	return nil
}

// refreshReadDeadline extends the read deadline.  It is also the pong handler.
func (s *Socket) refreshReadDeadline(appData string) error {
	return s.refreshDeadline(s.Conn.SetReadDeadline, s.ReadWait)
}

// refreshWriteDeadline extends the write deadline.
func (s *Socket) refreshWriteDeadline() error {
	return s.refreshDeadline(s.Conn.SetWriteDeadline, s.WriteWait)
}

// refreshDeadline sets a deadline that is the period from now.
func (s *Socket) refreshDeadline(refreshDeadlineFunc func(t time.Time) error, period time.Duration) error {
	now := s.TimeFunc()
	nowTime := time.Unix(now, 0)
	deadline := nowTime.Add(period)
	if err := refreshDeadlineFunc(deadline); err != nil {
		return fmt.Errorf("refreshing ping/pong deadline: %w", err)
	}
	return nil
}
