// Package protocol implements the WebRcon envelope carried in every
// WebSocket text frame.
//
// Outbound frames are built by Encode.  Inbound frames are classified
// by Decode into one of a closed set of Frame variants so that the
// session loop can switch on the result instead of poking at untyped
// JSON.
package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// Identifier is sent on every outbound envelope.  The client does
	// not pair requests with responses.
	Identifier = 1

	// SenderName labels outbound envelopes.
	SenderName = "WebRcon"
)

// Envelope is the wire message unit.
type Envelope struct {
	Identifier int    `json:"Identifier"`
	Message    string `json:"Message"`
	Name       string `json:"Name"`
}

// Encode wraps an operator line in an Envelope and returns it as a
// single-line JSON object.  Double quotes in text come out
// backslash-escaped.
func Encode(text string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Envelope{Identifier: Identifier, Message: text, Name: SenderName}); err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ── Decoded frames ───────────────────────────────────────────────────

// Frame is the result of decoding one inbound text frame.  It is one
// of Payload, MissingPayload, WrongTypePayload, Malformed or
// UnrecognizedShape.
type Frame interface {
	frame()
}

// Payload carries display text, with escaped newlines already expanded.
type Payload struct {
	Text string
}

// MissingPayload is an object with no Message field.
type MissingPayload struct{}

// WrongTypePayload is an object whose Message field is not a string.
type WrongTypePayload struct {
	Raw string // the Message value as sent
}

// Malformed is a frame that is not well-formed JSON.
type Malformed struct {
	Err error
}

// UnrecognizedShape is well-formed JSON whose top-level value is not an
// object.
type UnrecognizedShape struct {
	Raw string
}

func (Payload) frame()           {}
func (MissingPayload) frame()    {}
func (WrongTypePayload) frame()  {}
func (Malformed) frame()         {}
func (UnrecognizedShape) frame() {}

// Decode classifies an inbound text frame.  It never fails; problems
// are reported through the returned variant.
func Decode(data []byte) Frame {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Malformed{Err: err}
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return UnrecognizedShape{Raw: string(raw)}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return Malformed{Err: err}
	}

	msg, ok := obj["Message"]
	if !ok {
		return MissingPayload{}
	}

	var text string
	if bytes.Equal(bytes.TrimSpace(msg), []byte("null")) || json.Unmarshal(msg, &text) != nil {
		return WrongTypePayload{Raw: string(msg)}
	}
	return Payload{Text: unescapeNewlines(text)}
}

// unescapeNewlines turns every literal backslash-n pair into a line
// break.  Servers double-escape newlines inside Message.
func unescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
