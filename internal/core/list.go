package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"wsrcon/internal/directory"
	"wsrcon/util"
)

// ListMode prints every configured server, one per line.
type ListMode struct {
	File   string
	Stdout io.Writer
}

func (m *ListMode) Run(_ context.Context) error {
	records, err := directory.Load(m.File)
	if err != nil {
		return err
	}
	out := m.Stdout
	if out == nil {
		out = os.Stdout
	}

	width := 0
	for _, id := range directory.IDs(records) {
		if len(id) > width {
			width = len(id)
		}
	}
	for _, r := range records {
		fmt.Fprintf(out, "%-*s  %s\n", width, r.ID, util.FormatAddr(r.Host, int(r.Port)))
	}
	return nil
}

// DryRunMode resolves the prefix and prints where a session would go,
// without dialing.  The credential is masked.
type DryRunMode struct {
	File   string
	Prefix string
	Via    string // bastion spec, empty for a direct connection
	Stdout io.Writer
}

func (m *DryRunMode) Run(_ context.Context) error {
	server, err := resolve(m.File, m.Prefix)
	if err != nil {
		return err
	}
	out := m.Stdout
	if out == nil {
		out = os.Stdout
	}

	masked := strings.Repeat("*", len(server.Password))
	fmt.Fprintf(out, "%s  %s", server.ID, util.ConsoleURL(server.Host, server.Port, masked))
	if m.Via != "" {
		fmt.Fprintf(out, "  via %s", m.Via)
	}
	fmt.Fprintln(out)
	return nil
}
