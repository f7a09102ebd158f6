// Package core is the orchestration layer.  It composes the server
// directory, a transport and a session into complete operational modes
// and provides a builder that selects the right mode from a Config.
//
// Architecture layers (bottom → top):
//
//	transport  →  session  →  core  →  cmd (CLI)
//
// The builder in this package is the single dispatch point for the
// CLI; cmd never touches a session directly.
package core

import "context"

// Mode represents a complete operational mode of wsrcon (console,
// list, or dry-run).  Each mode owns its full lifecycle from loading
// the server list to teardown.
type Mode interface {
	Run(ctx context.Context) error
}
