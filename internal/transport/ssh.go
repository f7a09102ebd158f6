package transport

import (
	"context"
	"fmt"
	"net"
	"sync"

	"wsrcon/tunnel"
	"wsrcon/util"
)

// SSHDialer reaches the console server through an SSH bastion.  The
// bastion is opened on the first Dial; a failed attempt is remembered
// and returned by every later Dial, since sessions never retry.
type SSHDialer struct {
	tunnel  tunnel.Tunnel
	bastion string // user@host:port, for messages
	logger  *util.Logger

	mu     sync.Mutex
	opened bool
	err    error
}

// NewSSHDialer returns a dialer for the bastion described by cfg.
// Nothing is dialed until the first Dial.
func NewSSHDialer(cfg *tunnel.SSHConfig, logger *util.Logger) *SSHDialer {
	return newSSHDialer(tunnel.NewSSHTunnel(cfg, logger), cfg, logger)
}

func newSSHDialer(t tunnel.Tunnel, cfg *tunnel.SSHConfig, logger *util.Logger) *SSHDialer {
	bastion := util.FormatAddr(cfg.Host, cfg.Port)
	if cfg.User != "" {
		bastion = cfg.User + "@" + bastion
	}
	return &SSHDialer{tunnel: t, bastion: bastion, logger: logger}
}

// Bastion returns user@host:port of the gateway.
func (d *SSHDialer) Bastion() string { return d.bastion }

func (d *SSHDialer) open(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.opened || d.err != nil {
		return d.err
	}

	d.logger.Verbose("opening bastion %s", d.bastion)
	if err := d.tunnel.Connect(ctx); err != nil {
		d.err = fmt.Errorf("bastion %s: %w", d.bastion, err)
		return d.err
	}
	d.opened = true
	d.logger.Verbose("bastion %s ready", d.bastion)
	return nil
}

// Dial forwards a connection to address through the bastion.
func (d *SSHDialer) Dial(ctx context.Context, network, address string) (net.Conn, error) {
	if err := d.open(ctx); err != nil {
		return nil, err
	}
	d.logger.Debug("forwarding %s via %s", address, d.bastion)
	return d.tunnel.Dial(ctx, network, address)
}

// Close shuts the bastion connection if it was opened.
func (d *SSHDialer) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.opened {
		return nil
	}
	d.opened = false
	return d.tunnel.Close()
}
