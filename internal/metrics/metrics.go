// Package metrics provides lightweight, lock-free counters for a
// remote-console session.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks traffic and diagnostics for one session.
type Collector struct {
	framesIn    atomic.Int64
	framesOut   atomic.Int64
	bytesIn     atomic.Int64
	bytesOut    atomic.Int64
	diagnostics atomic.Int64

	mu          sync.RWMutex
	startTime   time.Time
	lastDiag    time.Time
	lastDiagMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Traffic ──────────────────────────────────────────────────────────

// FrameReceived records one inbound frame of n bytes.
func (c *Collector) FrameReceived(n int) {
	if c == nil {
		return
	}
	c.framesIn.Add(1)
	c.bytesIn.Add(int64(n))
}

// FrameSent records one outbound frame of n bytes.
func (c *Collector) FrameSent(n int) {
	if c == nil {
		return
	}
	c.framesOut.Add(1)
	c.bytesOut.Add(int64(n))
}

// FramesIn returns the number of inbound frames.
func (c *Collector) FramesIn() int64 {
	if c == nil {
		return 0
	}
	return c.framesIn.Load()
}

// FramesOut returns the number of outbound frames.
func (c *Collector) FramesOut() int64 {
	if c == nil {
		return 0
	}
	return c.framesOut.Load()
}

// ── Diagnostics ──────────────────────────────────────────────────────

// RecordDiagnostic counts an inbound frame that produced no display
// text and remembers its message.
func (c *Collector) RecordDiagnostic(msg string) {
	if c == nil {
		return
	}
	c.diagnostics.Add(1)
	c.mu.Lock()
	c.lastDiag = time.Now()
	c.lastDiagMsg = msg
	c.mu.Unlock()
}

// Diagnostics returns the number of diagnostics recorded.
func (c *Collector) Diagnostics() int64 {
	if c == nil {
		return 0
	}
	return c.diagnostics.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Duration       string `json:"duration"`
	FramesIn       int64  `json:"frames_in"`
	FramesOut      int64  `json:"frames_out"`
	BytesIn        int64  `json:"bytes_in"`
	BytesOut       int64  `json:"bytes_out"`
	Diagnostics    int64  `json:"diagnostics"`
	LastDiagnostic string `json:"last_diagnostic,omitempty"`
	LastDiagAt     string `json:"last_diagnostic_at,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Duration:    time.Since(c.startTime).Truncate(time.Millisecond).String(),
		FramesIn:    c.framesIn.Load(),
		FramesOut:   c.framesOut.Load(),
		BytesIn:     c.bytesIn.Load(),
		BytesOut:    c.bytesOut.Load(),
		Diagnostics: c.diagnostics.Load(),
	}
	if !c.lastDiag.IsZero() {
		s.LastDiagnostic = c.lastDiagMsg
		s.LastDiagAt = c.lastDiag.Format(time.RFC3339)
	}
	return s
}

// JSON returns the snapshot as a compact JSON string.
func (c *Collector) JSON() string {
	data, _ := json.Marshal(c.Snapshot())
	return string(data)
}
