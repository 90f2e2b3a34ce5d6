// Package report is the fire-and-forget sink for measurement output.
//
// Progress and duration lines are the product of a benchmark run, so
// they are kept apart from the structured log stream: logs go to
// stderr, measurements go through a Sink.
package report

import (
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Sink receives measurement output. Implementations must be safe for
// concurrent use; the contention driver reports from supervisor
// goroutines.
type Sink interface {
	// Progress reports cumulative allocation progress and the peak
	// resident memory observed so far.
	Progress(percent int, peakBytes uint64)

	// Duration reports a labeled wall-clock duration.
	Duration(label string, d time.Duration)
}

// consoleRedrawRate caps progress redraws per second. Tight allocation
// loops cross 1% boundaries faster than a terminal can usefully paint.
const consoleRedrawRate = 20

// Console writes measurements to a terminal, redrawing the progress
// line in place.
type Console struct {
	mu      sync.Mutex
	w       io.Writer
	limiter *rate.Limiter
	midline bool
}

// NewConsole creates a console sink writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{
		w:       w,
		limiter: rate.NewLimiter(consoleRedrawRate, 1),
	}
}

// Progress redraws the progress line. Redraws are throttled except for
// the final 100% line, which always prints.
func (c *Console) Progress(percent int, peakBytes uint64) {
	if percent < 100 && !c.limiter.Allow() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "\rallocated %d%%  | %d MB", percent, peakBytes/1_000_000)
	c.midline = true
}

// Duration prints a labeled duration on its own line.
func (c *Console) Duration(label string, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.midline {
		fmt.Fprintln(c.w)
		c.midline = false
	}
	fmt.Fprintf(c.w, "%s duration: %.3fs\n", label, d.Seconds())
}

// Discard returns a sink that drops everything. Useful in tests.
func Discard() Sink {
	return discard{}
}

type discard struct{}

func (discard) Progress(int, uint64)           {}
func (discard) Duration(string, time.Duration) {}
