package core

import (
	"wsrcon/config"
	"wsrcon/internal/transport"
	"wsrcon/tunnel"
	"wsrcon/util"
)

// Build constructs the appropriate Mode from the given configuration.
func Build(cfg *config.Config, logger *util.Logger) (Mode, error) {
	switch {
	case cfg.List:
		return &ListMode{File: cfg.File}, nil
	case cfg.DryRun:
		return buildDryRun(cfg), nil
	default:
		return buildConsole(cfg, logger), nil
	}
}

// ── mode builders ────────────────────────────────────────────────────

func buildConsole(cfg *config.Config, logger *util.Logger) Mode {
	timeout := cfg.ConnectTimeout
	if timeout == 0 {
		timeout = config.DefaultConnTimeout
	}
	return &ConsoleMode{
		File:    cfg.File,
		Prefix:  cfg.Prefix,
		Dialer:  buildDialer(cfg, logger),
		Timeout: timeout,
		Logger:  logger,
	}
}

func buildDryRun(cfg *config.Config) Mode {
	m := &DryRunMode{File: cfg.File, Prefix: cfg.Prefix}
	if cfg.TunnelEnabled {
		m.Via = cfg.TunnelSpec
	}
	return m
}

// ── shared helpers ───────────────────────────────────────────────────

// buildDialer creates the right transport.Dialer for the given config.
func buildDialer(cfg *config.Config, logger *util.Logger) transport.Dialer {
	if cfg.TunnelEnabled {
		return transport.NewSSHDialer(tunnel.FromConfig(cfg), logger)
	}
	return &transport.TCPDialer{Timeout: cfg.ConnectTimeout}
}
