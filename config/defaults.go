package config

import "time"

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags and environment variable loading.

const (
	// DefaultServersFile is the server list read when -f is omitted.
	DefaultServersFile = "servers.yaml"

	// DefaultSSHPort is the standard SSH port.
	DefaultSSHPort = 22

	// DefaultConnTimeout bounds the WebSocket (and SSH) handshake.
	DefaultConnTimeout = 30 * time.Second

	// EnvPrefix prefixes every environment variable read by LoadFromEnv.
	EnvPrefix = "WSRCON_"
)
