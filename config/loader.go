package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the WSRCON_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  cmd uses the result as flag
// defaults so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "FILE"); v != "" {
		cfg.File = v
	}
	if v := envInt(EnvPrefix + "TIMEOUT"); v > 0 {
		cfg.ConnectTimeout = secondsDuration(v)
	}
	if v := envInt(EnvPrefix + "VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
	if envBool(EnvPrefix + "NO_COLOR") {
		cfg.NoColor = true
	}

	// SSH tunnel
	if v := os.Getenv(EnvPrefix + "TUNNEL"); v != "" {
		cfg.TunnelSpec = v
	}
	if v := os.Getenv(EnvPrefix + "SSH_KEY"); v != "" {
		cfg.SSHKeyPath = v
	}
	if envBool(EnvPrefix + "SSH_PASSWORD") {
		cfg.SSHPassword = true
	}
	if envBool(EnvPrefix + "SSH_AGENT") {
		cfg.UseSSHAgent = true
	}
	if envBool(EnvPrefix + "STRICT_HOSTKEY") {
		cfg.StrictHostKey = true
	}
	if v := os.Getenv(EnvPrefix + "KNOWN_HOSTS"); v != "" {
		cfg.KnownHostsPath = v
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}

func secondsDuration(sec int) time.Duration {
	return time.Duration(sec) * time.Second
}
