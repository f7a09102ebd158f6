// Package config defines the runtime configuration for wsrcon and
// provides helpers for parsing tunnel specifications.
package config

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	wserr "wsrcon/internal/errors"
)

// Config holds every tuneable for a single wsrcon session.
type Config struct {
	// ── Target ───────────────────────────────────────────────────────
	File           string // server list (YAML)
	Prefix         string // identifier prefix to resolve
	ConnectTimeout time.Duration

	// ── SSH tunnel ───────────────────────────────────────────────────
	TunnelSpec     string // raw user@host[:port] from -T
	TunnelEnabled  bool
	TunnelUser     string
	TunnelHost     string
	TunnelPort     int
	SSHKeyPath     string
	SSHPassword    bool // true → prompt interactively
	UseSSHAgent    bool
	StrictHostKey  bool
	KnownHostsPath string

	// ── Output ───────────────────────────────────────────────────────
	Verbose int
	Quiet   bool
	NoColor bool
	List    bool // print configured identifiers and exit
	DryRun  bool // resolve the target without connecting
}

// LogVerbosity maps the -q/-v flags onto a util.Logger verbosity.  The
// session banner and decode diagnostics print at the normal level, so
// the default is 1 rather than quiet.
func (c *Config) LogVerbosity() int {
	if c.Quiet {
		return 0
	}
	return c.Verbose + 1
}

// ── Tunnel-spec parser ───────────────────────────────────────────────

// tunnelRe matches [user@]host[:port].
var tunnelRe = regexp.MustCompile(`^(?:([^@]+)@)?([^:]+)(?::(\d+))?$`)

// ParseTunnelSpec extracts user, host, and port from a string such as
// "admin@bastion.example.com:2222".  Port defaults to 22.
func ParseTunnelSpec(spec string) (user, host string, port int, err error) {
	m := tunnelRe.FindStringSubmatch(spec)
	if m == nil {
		return "", "", 0, fmt.Errorf("invalid tunnel spec %q – expected [user@]host[:port]", spec)
	}
	user = m[1]
	host = m[2]
	port = DefaultSSHPort
	if m[3] != "" {
		port, err = strconv.Atoi(m[3])
		if err != nil || port < 1 || port > 65535 {
			return "", "", 0, fmt.Errorf("invalid tunnel port %q", m[3])
		}
	}
	if host == "" {
		return "", "", 0, fmt.Errorf("tunnel host is required")
	}
	return user, host, port, nil
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.File == "" {
		return &wserr.ConfigError{
			Field:   "file",
			Message: "server list path is empty",
			Hint:    "omit -f to use " + DefaultServersFile,
		}
	}

	if !c.List && c.Prefix == "" {
		return &wserr.ConfigError{
			Field:   "id-prefix",
			Message: "an identifier prefix is required",
			Hint:    "use --list to see the configured servers",
		}
	}

	if c.ConnectTimeout < 0 {
		return &wserr.ConfigError{
			Field:   "timeout",
			Value:   c.ConnectTimeout,
			Message: "must not be negative",
		}
	}

	if c.Quiet && c.Verbose > 0 {
		return fmt.Errorf("-q and -v are mutually exclusive")
	}

	if c.TunnelEnabled && c.TunnelHost == "" {
		return &wserr.ConfigError{
			Field:   "tunnel",
			Value:   c.TunnelSpec,
			Message: "tunnel host is required",
			Hint:    "expected [user@]host[:port]",
		}
	}

	if !c.TunnelEnabled && (c.SSHKeyPath != "" || c.SSHPassword || c.UseSSHAgent) {
		return &wserr.ConfigError{
			Field:   "tunnel",
			Message: "SSH authentication flags require a tunnel",
			Hint:    "add -T user@bastion",
		}
	}

	return nil
}
