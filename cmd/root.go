// Package cmd wires up the CLI flags and dispatches to the core modes.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"wsrcon/config"
	"wsrcon/internal/core"
	"wsrcon/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X wsrcon/cmd.version=1.1.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs the selected wsrcon mode.
func Execute(ctx context.Context, args []string) error {
	cfg := &config.Config{
		File:           config.DefaultServersFile,
		ConnectTimeout: config.DefaultConnTimeout,
	}
	// Environment values become flag defaults, so flags win.
	config.LoadFromEnv(cfg)

	fs := flag.NewFlagSet("wsrcon", flag.ContinueOnError)

	// ── target ───────────────────────────────────────────────────
	fs.StringVarP(&cfg.File, "file", "f", cfg.File, "Server list (YAML)")
	timeoutSec := int(cfg.ConnectTimeout / time.Second)
	fs.IntVarP(&timeoutSec, "timeout", "w", timeoutSec, "Connect timeout in seconds")
	fs.BoolVarP(&cfg.List, "list", "l", false, "List configured servers and exit")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Resolve the target and exit without connecting")

	// ── SSH tunnel ───────────────────────────────────────────────
	fs.StringVarP(&cfg.TunnelSpec, "tunnel", "T", cfg.TunnelSpec, "SSH tunnel via [user@]host[:port]")
	fs.StringVar(&cfg.SSHKeyPath, "ssh-key", cfg.SSHKeyPath, "SSH private key file")
	fs.BoolVar(&cfg.SSHPassword, "ssh-password", cfg.SSHPassword, "Prompt for SSH password")
	fs.BoolVar(&cfg.UseSSHAgent, "ssh-agent", cfg.UseSSHAgent, "Use SSH agent")
	fs.BoolVar(&cfg.StrictHostKey, "strict-hostkey", cfg.StrictHostKey, "Verify SSH host keys")
	fs.StringVar(&cfg.KnownHostsPath, "known-hosts", cfg.KnownHostsPath, "Custom known_hosts path")

	// ── output ───────────────────────────────────────────────────
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Only print server messages and errors")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable coloured diagnostics")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// CountVarP starts from zero; keep an env-provided level unless -v
	// was given.
	envVerbose := cfg.Verbose

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp || len(args) == 0 {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("wsrcon %s\n", version)
		return nil
	}

	if !fs.Changed("verbose") && !cfg.Quiet {
		cfg.Verbose = envVerbose
	}
	cfg.ConnectTimeout = time.Duration(timeoutSec) * time.Second

	// ── positional arguments ─────────────────────────────────────
	if err := parsePositional(cfg, fs.Args()); err != nil {
		return err
	}

	// ── tunnel spec ──────────────────────────────────────────────
	if cfg.TunnelSpec != "" {
		user, host, port, err := config.ParseTunnelSpec(cfg.TunnelSpec)
		if err != nil {
			return fmt.Errorf("tunnel: %w", err)
		}
		cfg.TunnelEnabled = true
		cfg.TunnelUser = user
		cfg.TunnelHost = host
		cfg.TunnelPort = port
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	// ── build & run ──────────────────────────────────────────────
	logger := util.NewLogger(cfg.LogVerbosity())
	if cfg.NoColor {
		logger.SetColor(false)
	}

	mode, err := core.Build(cfg, logger)
	if err != nil {
		return err
	}
	return mode.Run(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────

func parsePositional(cfg *config.Config, remaining []string) error {
	switch len(remaining) {
	case 0:
		if cfg.List {
			return nil
		}
		return fmt.Errorf("server id prefix required (use --help for usage)")
	case 1:
		cfg.Prefix = remaining[0]
		return nil
	default:
		return fmt.Errorf("too many arguments: expected one server id prefix")
	}
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `wsrcon – WebRcon Console v%s

An interactive remote console for game servers speaking WebRcon.

Usage:
  wsrcon [options] <id-prefix>                Open a console
  wsrcon -l [-f servers.yaml]                 List servers
  wsrcon --dry-run <id-prefix>                Show the target only
  wsrcon -T user@gateway <id-prefix>          Console through a bastion

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  wsrcon eu                                   Connect to the server whose id starts with "eu"
  wsrcon -f prod.yaml -w 5 eu-main            Custom list, 5s connect timeout
  wsrcon -T ops@bastion:2222 eu-main          Reach a private server
  echo "status" | wsrcon eu-main              Send one command and exit
`)
}
