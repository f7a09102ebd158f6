// Package console turns the operator's terminal into a stream of
// lines.
//
// A Producer owns two goroutines: a reader that blocks on the input
// and a pump that buffers completed lines in an unbounded FIFO.  The
// reader never waits for the consumer, so a slow session loop cannot
// stall keystroke handling and vice versa.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"

	"wsrcon/util"
)

// Producer delivers lines read from an io.Reader on Lines().
type Producer struct {
	lines  chan string
	stop   chan struct{}
	once   sync.Once
	logger *util.Logger

	mu  sync.Mutex
	err error
}

// Start begins reading r line by line.  Lines() is closed at end of
// input or on a read error; Err reports which.
func Start(r io.Reader, logger *util.Logger) *Producer {
	p := &Producer{
		lines:  make(chan string),
		stop:   make(chan struct{}),
		logger: logger,
	}
	in := make(chan string)
	go p.read(r, in)
	go p.pump(in)
	return p
}

// Lines returns the delivery queue.  It is closed exactly once, after
// the last line.
func (p *Producer) Lines() <-chan string { return p.lines }

// Err returns the read failure that ended the producer, or nil for a
// clean end of input.  Only meaningful once Lines() is closed.
func (p *Producer) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Stop abandons any queued lines and releases the pump.  A reader
// blocked inside r.Read stays blocked until r returns.
func (p *Producer) Stop() {
	p.once.Do(func() { close(p.stop) })
}

func (p *Producer) read(r io.Reader, in chan<- string) {
	defer close(in)

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			select {
			case in <- strings.TrimRightFunc(line, unicode.IsSpace):
			case <-p.stop:
				return
			}
		}
		if err == io.EOF {
			p.logger.Debug("console: end of input")
			return
		}
		if err != nil {
			p.mu.Lock()
			p.err = fmt.Errorf("read console: %w", err)
			p.mu.Unlock()
			return
		}
	}
}

// pump moves lines from in to p.lines, queueing as many as needed.
func (p *Producer) pump(in <-chan string) {
	defer close(p.lines)

	var queue []string
	for in != nil || len(queue) > 0 {
		var (
			out  chan<- string
			next string
		)
		if len(queue) > 0 {
			out = p.lines
			next = queue[0]
		}

		select {
		case line, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			queue = append(queue, line)
		case out <- next:
			queue[0] = ""
			queue = queue[1:]
		case <-p.stop:
			return
		}
	}
}
