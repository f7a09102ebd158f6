// Package transport provides abstractions for establishing the TCP
// stream underneath the WebSocket.  Transports handle how bytes reach
// the server, either directly or through an SSH bastion, independent
// of the framing the session layer puts on top.
package transport

import (
	"context"
	"net"
)

// Dialer opens outbound network connections.  Its Dial method has the
// shape websocket.Dialer.NetDialContext expects.
type Dialer interface {
	// Dial establishes a connection to the given network address.
	Dial(ctx context.Context, network, address string) (net.Conn, error)

	// Close releases any long-lived resources held by the dialer
	// (e.g. an SSH session).  Stateless dialers return nil.
	Close() error
}
