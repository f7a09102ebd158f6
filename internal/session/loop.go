package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/gorilla/websocket"

	wserr "wsrcon/internal/errors"
	"wsrcon/internal/protocol"
)

var (
	errPingFrame = errors.New("ping frame")
	errPongFrame = errors.New("pong frame")
)

// netEvent is one result of websocket.Conn.ReadMessage.
type netEvent struct {
	typ  int
	data []byte
	err  error
}

// Run is the Active state.  It waits on whichever of the network and
// the operator produces an event first and dispatches it, until one of
// them ends the session or ctx is cancelled.
//
// Run returns nil when the session closes normally, including on a
// close frame, end of stream, an unrecognised frame, or end of console
// input.  A console read failure or a failed write is returned as an
// error.  The connection is always closed on return.
func (s *Session) Run(ctx context.Context, input LineSource) error {
	if s.conn == nil {
		return wserr.ErrNotConnected
	}
	s.setState(StateActive)

	events := make(chan netEvent)
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.readLoop(events, done)
	}()

	defer func() {
		close(done)
		s.conn.Close() // unblocks ReadMessage
		wg.Wait()
		s.setState(StateClosed)
		s.Logger.Verbose("session closed: %s", s.Metrics.JSON())
	}()

	lines := input.Lines()
	for {
		select {
		case <-ctx.Done():
			s.Logger.Info("Interrupted")
			return nil

		case ev := <-events:
			if s.handleNetwork(ev) {
				return nil
			}

		case line, ok := <-lines:
			if !ok {
				if err := input.Err(); err != nil {
					return err
				}
				s.Logger.Info("EOF")
				return nil
			}
			if err := s.send(line); err != nil {
				return err
			}
		}
	}
}

// readLoop forwards frames until the first read error, which it also
// forwards.  It gives up early once done is closed.
func (s *Session) readLoop(events chan<- netEvent, done <-chan struct{}) {
	for {
		typ, data, err := s.conn.ReadMessage()
		select {
		case events <- netEvent{typ: typ, data: data, err: err}:
		case <-done:
			return
		}
		if err != nil {
			return
		}
	}
}

// handleNetwork processes one inbound event and reports whether the
// session is over.
func (s *Session) handleNetwork(ev netEvent) bool {
	if ev.err != nil {
		var ce *websocket.CloseError
		switch {
		case errors.As(ev.err, &ce) && ce.Code != websocket.CloseAbnormalClosure:
			s.Logger.Info("Connection closed with a Close message (%d %s)", ce.Code, ce.Text)
		case isStreamEnd(ev.err):
			s.Logger.Info("WebSocket stream ended")
		default:
			s.Logger.Warn("unhandled WebSocket event: %v", ev.err)
		}
		return true
	}

	if ev.typ != websocket.TextMessage {
		s.Logger.Warn("unhandled WebSocket event: %s frame", frameName(ev.typ))
		return true
	}

	s.Metrics.FrameReceived(len(ev.data))
	return s.display(protocol.Decode(ev.data))
}

// display prints a decoded frame or its diagnostic.  An unrecognised
// shape ends the session: protocol drift is treated as a hard stop.
func (s *Session) display(f protocol.Frame) (closed bool) {
	switch f := f.(type) {
	case protocol.Payload:
		fmt.Fprintln(s.Stdout, f.Text)
	case protocol.Malformed:
		s.diagnose("failed to parse JSON: %v", f.Err)
	case protocol.MissingPayload:
		s.diagnose("JSON message does not have a 'Message' field")
	case protocol.WrongTypePayload:
		s.diagnose("JSON 'Message' field is not a string: %s", f.Raw)
	case protocol.UnrecognizedShape:
		s.diagnose("unhandled JSON value: %s", f.Raw)
		return true
	}
	return false
}

func (s *Session) diagnose(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	s.Metrics.RecordDiagnostic(msg)
	s.Logger.Warn("%s", msg)
}

// send encodes an operator line and writes it as one text frame.
func (s *Session) send(line string) error {
	data, err := protocol.Encode(line)
	if err != nil {
		return err
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return wserr.Wrap("write", s.Addr(), err)
	}
	s.Metrics.FrameSent(len(data))
	s.Logger.Debug("sent %s", data)
	return nil
}

// isStreamEnd reports whether err means the peer went away without a
// close frame.  gorilla/websocket reports that as close code 1006.
func isStreamEnd(err error) bool {
	var ce *websocket.CloseError
	if errors.As(err, &ce) && ce.Code == websocket.CloseAbnormalClosure {
		return true
	}
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, net.ErrClosed)
}

func frameName(typ int) string {
	switch typ {
	case websocket.BinaryMessage:
		return "binary"
	case websocket.TextMessage:
		return "text"
	default:
		return fmt.Sprintf("type %d", typ)
	}
}
