// Package session owns one interactive remote-console run: it dials the
// server's WebSocket endpoint and then multiplexes inbound frames with
// operator lines until either side ends the conversation.
//
// A Session moves through three states:
//
//	Connecting  →  Active  →  Closed
//
// Connect performs the first transition, Run the second and third.
// Only the goroutine calling Run ever writes to the connection.
package session

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"wsrcon/internal/directory"
	wserr "wsrcon/internal/errors"
	"wsrcon/internal/metrics"
	"wsrcon/internal/transport"
	"wsrcon/util"
)

// State is the lifecycle position of a Session.
type State int32

const (
	StateConnecting State = iota
	StateActive
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateActive:
		return "active"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// LineSource is the operator side of a session.  Lines is closed when
// input ends; Err then reports whether it ended because of a failure.
// *console.Producer implements it.
type LineSource interface {
	Lines() <-chan string
	Err() error
}

// Session binds a server record to its WebSocket connection and the
// local display.
type Session struct {
	ID      string
	Server  directory.ServerRecord
	Stdout  io.Writer
	Logger  *util.Logger
	Metrics *metrics.Collector

	conn  *websocket.Conn
	state atomic.Int32
}

// New creates a Session in the Connecting state.  Decoded server
// messages are written to stdout; everything else goes to logger.
func New(server directory.ServerRecord, stdout io.Writer, logger *util.Logger) *Session {
	id := uuid.NewString()
	if logger.Level() >= util.LogDebug {
		logger = logger.With("session", id[:8])
	}
	return &Session{
		ID:      id,
		Server:  server,
		Stdout:  stdout,
		Logger:  logger,
		Metrics: metrics.New(),
	}
}

// State reports where the session is in its lifecycle.
func (s *Session) State() State { return State(s.state.Load()) }

func (s *Session) setState(st State) {
	s.state.Store(int32(st))
	s.Logger.Debug("session state: %s", st)
}

// Addr returns host:port of the server, without the credential.
func (s *Session) Addr() string {
	return util.FormatAddr(s.Server.Host, int(s.Server.Port))
}

// Connect dials ws://host:port/credential through d and completes the
// WebSocket handshake.  Any failure is final: the session moves to
// Closed and there is no retry.
func (s *Session) Connect(ctx context.Context, d transport.Dialer, timeout time.Duration) error {
	addr := s.Addr()
	s.Logger.Info("Connecting to %s...", addr)

	wsd := websocket.Dialer{
		NetDialContext:   d.Dial,
		HandshakeTimeout: timeout,
	}
	conn, resp, err := wsd.DialContext(ctx,
		util.ConsoleURL(s.Server.Host, s.Server.Port, s.Server.Password), nil)
	if err != nil {
		s.setState(StateClosed)
		if resp != nil {
			err = fmt.Errorf("%w: HTTP %s", err, resp.Status)
		}
		return wserr.Wrap("connect", addr, err)
	}

	// Control frames other than close end the session like any other
	// unexpected frame, so they must reach ReadMessage as errors instead
	// of being answered silently.
	conn.SetPingHandler(func(string) error { return errPingFrame })
	conn.SetPongHandler(func(string) error { return errPongFrame })

	s.conn = conn
	s.Logger.Info("Connected")
	return nil
}
