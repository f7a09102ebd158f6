// Package errors provides domain-specific error types for wsrcon.
//
// These types carry structured context (operation, address, prefix,
// file path) so that cmd can pick an exit status and print a useful
// diagnostic without string matching.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrNotFound        = errors.New("no server found with the given ID prefix")
	ErrNotConnected    = errors.New("not connected")
	ErrAuthFailed      = errors.New("authentication failed")
	ErrHostKeyMismatch = errors.New("host key mismatch")
)

// ── Setup errors ─────────────────────────────────────────────────────

// LookupError reports that a prefix selected no server record.  It
// always unwraps to ErrNotFound.
type LookupError struct {
	Prefix string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%v: %q", ErrNotFound, e.Prefix)
}

func (e *LookupError) Unwrap() error { return ErrNotFound }

// AmbiguousError reports that a prefix selected more than one record.
type AmbiguousError struct {
	Prefix  string
	Matches []string // identifiers of every matching record
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous ID prefix %q, multiple matches found: %s",
		e.Prefix, strings.Join(e.Matches, ", "))
}

// FileError reports that the server list could not be read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file error: failed to read %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// ParseError reports that the server list was read but is not a valid
// document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsSetup reports whether err happened before any connection attempt
// (directory load or prefix resolution).
func IsSetup(err error) bool {
	var (
		fe *FileError
		pe *ParseError
		ae *AmbiguousError
	)
	return errors.Is(err, ErrNotFound) ||
		errors.As(err, &fe) || errors.As(err, &pe) || errors.As(err, &ae)
}

// ── Structured error types ───────────────────────────────────────────

// NetworkError represents a failure in a network operation.
type NetworkError struct {
	Op   string // operation: "connect", "dial", "write", "read"
	Addr string // network address or URL involved
	Err  error  // underlying error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// SSHError represents an SSH-specific failure with host context.
type SSHError struct {
	Op   string // "handshake", "auth", "hostkey", "forward"
	Host string
	Port int
	Err  error
}

func (e *SSHError) Error() string {
	return fmt.Sprintf("ssh %s %s:%d: %v", e.Op, e.Host, e.Port, e.Err)
}

func (e *SSHError) Unwrap() error { return e.Err }

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// ── Constructors ─────────────────────────────────────────────────────

// Wrap creates a NetworkError.
func Wrap(op, addr string, err error) *NetworkError {
	return &NetworkError{Op: op, Addr: addr, Err: err}
}

// WrapSSH creates an SSHError.
func WrapSSH(op, host string, port int, err error) *SSHError {
	return &SSHError{Op: op, Host: host, Port: port, Err: err}
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use wsrcon/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
