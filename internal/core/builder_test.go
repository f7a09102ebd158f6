package core

import (
	"testing"
	"time"

	"wsrcon/config"
	"wsrcon/internal/transport"
	"wsrcon/util"
)

// TestBuild_Console verifies that Build produces a ConsoleMode for a
// plain prefix.
func TestBuild_Console(t *testing.T) {
	cfg := &config.Config{File: "servers.yaml", Prefix: "eu"}
	logger := util.NewLogger(0)

	mode, err := Build(cfg, logger)
	if err != nil {
		t.Fatal(err)
	}
	cm, ok := mode.(*ConsoleMode)
	if !ok {
		t.Fatalf("expected *ConsoleMode, got %T", mode)
	}
	if _, ok := cm.Dialer.(*transport.TCPDialer); !ok {
		t.Errorf("expected *transport.TCPDialer, got %T", cm.Dialer)
	}
	if cm.Timeout != config.DefaultConnTimeout {
		t.Errorf("timeout = %v, want %v", cm.Timeout, config.DefaultConnTimeout)
	}
}

// TestBuild_Timeout verifies an explicit timeout reaches both the
// dialer and the handshake.
func TestBuild_Timeout(t *testing.T) {
	cfg := &config.Config{File: "servers.yaml", Prefix: "eu", ConnectTimeout: 5 * time.Second}

	mode, err := Build(cfg, util.NewLogger(0))
	if err != nil {
		t.Fatal(err)
	}
	cm := mode.(*ConsoleMode)
	if cm.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", cm.Timeout)
	}
	if d := cm.Dialer.(*transport.TCPDialer); d.Timeout != 5*time.Second {
		t.Errorf("dialer timeout = %v", d.Timeout)
	}
}

// TestBuild_Tunnel verifies that -T selects the SSH dialer.
func TestBuild_Tunnel(t *testing.T) {
	cfg := &config.Config{
		File:          "servers.yaml",
		Prefix:        "eu",
		TunnelEnabled: true,
		TunnelUser:    "ops",
		TunnelHost:    "bastion",
		TunnelPort:    22,
	}

	mode, err := Build(cfg, util.NewLogger(0))
	if err != nil {
		t.Fatal(err)
	}
	cm := mode.(*ConsoleMode)
	if _, ok := cm.Dialer.(*transport.SSHDialer); !ok {
		t.Errorf("expected *transport.SSHDialer, got %T", cm.Dialer)
	}
}

// TestBuild_List verifies Build produces a ListMode.
func TestBuild_List(t *testing.T) {
	cfg := &config.Config{File: "servers.yaml", List: true}

	mode, err := Build(cfg, util.NewLogger(0))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := mode.(*ListMode); !ok {
		t.Errorf("expected *ListMode, got %T", mode)
	}
}

// TestBuild_DryRun verifies Build produces a DryRunMode that remembers
// the bastion.
func TestBuild_DryRun(t *testing.T) {
	cfg := &config.Config{
		File:          "servers.yaml",
		Prefix:        "eu",
		DryRun:        true,
		TunnelSpec:    "ops@bastion",
		TunnelEnabled: true,
		TunnelHost:    "bastion",
	}

	mode, err := Build(cfg, util.NewLogger(0))
	if err != nil {
		t.Fatal(err)
	}
	dm, ok := mode.(*DryRunMode)
	if !ok {
		t.Fatalf("expected *DryRunMode, got %T", mode)
	}
	if dm.Via != "ops@bastion" {
		t.Errorf("via = %q", dm.Via)
	}
}
