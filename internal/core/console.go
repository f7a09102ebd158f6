package core

import (
	"context"
	"io"
	"os"
	"time"

	"go.uber.org/multierr"

	"wsrcon/internal/console"
	"wsrcon/internal/directory"
	"wsrcon/internal/session"
	"wsrcon/internal/transport"
	"wsrcon/util"
)

// ConsoleMode resolves one server and runs an interactive session
// against it: the default mode.
type ConsoleMode struct {
	File    string
	Prefix  string
	Dialer  transport.Dialer
	Timeout time.Duration
	Logger  *util.Logger

	// Stdin/Stdout default to os.Stdin/os.Stdout when nil.
	// Override in tests for deterministic I/O.
	Stdin  io.Reader
	Stdout io.Writer
}

func (m *ConsoleMode) stdin() io.Reader {
	if m.Stdin != nil {
		return m.Stdin
	}
	return os.Stdin
}

func (m *ConsoleMode) stdout() io.Writer {
	if m.Stdout != nil {
		return m.Stdout
	}
	return os.Stdout
}

// Run loads the server list, connects, and hands the terminal to the
// session until it closes.  The transport is closed when Run returns.
func (m *ConsoleMode) Run(ctx context.Context) (err error) {
	defer func() { err = multierr.Append(err, m.Dialer.Close()) }()

	server, err := resolve(m.File, m.Prefix)
	if err != nil {
		return err
	}
	m.Logger.Verbose("resolved %q to %s (%s)", m.Prefix, server.ID,
		util.FormatAddr(server.Host, int(server.Port)))

	sess := session.New(server, m.stdout(), m.Logger)
	if err := sess.Connect(ctx, m.Dialer, m.Timeout); err != nil {
		return err
	}

	// Started only now so that SSH prompts above still own the terminal.
	producer := console.Start(m.stdin(), m.Logger)
	defer producer.Stop()

	return sess.Run(ctx, producer)
}

func resolve(file, prefix string) (directory.ServerRecord, error) {
	records, err := directory.Load(file)
	if err != nil {
		return directory.ServerRecord{}, err
	}
	return directory.Resolve(records, prefix)
}
