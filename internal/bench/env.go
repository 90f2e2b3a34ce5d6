package bench

import (
	"github.com/dnut/cmapbench/internal/bench/report"
	"github.com/dnut/cmapbench/internal/telemetry/logger"
	"github.com/dnut/cmapbench/internal/telemetry/metric"
)

// Env carries the collaborators a driver reports through. Zero-value
// fields are replaced with no-op implementations, so tests can populate
// only what they assert on.
type Env struct {
	Log     logger.Logger
	Sink    report.Sink
	Metrics *metric.Registry

	// Resident samples the process resident set size. ok=false means
	// the sample is unavailable and must be skipped.
	Resident func() (uint64, bool)
}

func (e Env) normalized() Env {
	if e.Log == nil {
		e.Log = logger.Discard()
	}
	if e.Sink == nil {
		e.Sink = report.Discard()
	}
	if e.Resident == nil {
		e.Resident = func() (uint64, bool) { return 0, false }
	}
	return e
}
