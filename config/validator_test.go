package config

import (
	"strings"
	"testing"

	wserr "wsrcon/internal/errors"
)

// TestValidate_ErrorMessages verifies that Validate returns actionable
// error messages with hints.
func TestValidate_ErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantSub string // substring expected in error
	}{
		{
			name:    "missing prefix has hint",
			cfg:     Config{File: DefaultServersFile},
			wantSub: "hint: use --list",
		},
		{
			name:    "empty file has hint",
			cfg:     Config{Prefix: "abc"},
			wantSub: "hint:",
		},
		{
			name:    "quiet conflict",
			cfg:     Config{File: "f", Prefix: "a", Quiet: true, Verbose: 1},
			wantSub: "-q and -v are mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantSub)
			}
		})
	}
}

func TestValidate_ConfigErrorType(t *testing.T) {
	err := (&Config{File: "f"}).Validate()
	var ce *wserr.ConfigError
	if !wserr.As(err, &ce) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if ce.Field != "id-prefix" {
		t.Errorf("Field = %q, want %q", ce.Field, "id-prefix")
	}
}

// TestParseTunnelSpec_EdgeCases covers additional tunnel specs.
func TestParseTunnelSpec_EdgeCases(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"user@host.with.dots:22", false},
		{"user@host-with-dashes", false},
		{"host:0", true},     // port 0 out of range
		{"host:65536", true}, // port too high
		{"user@", false},     // regex treats "user@" as hostname
		{"", true},           // empty string
		{":22", true},        // no host before colon
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, _, _, err := ParseTunnelSpec(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseTunnelSpec(%q) err = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
