package bench

import (
	"fmt"
	"strings"
)

// Focus selects which contention workload is the bounded, measured
// operation. The non-focused operation loops its batch indefinitely
// until the process exits.
type Focus int

const (
	// FocusNone runs both workloads bounded; each finishes its ~1s
	// batch and exits.
	FocusNone Focus = iota
	// FocusRead measures readers while writers loop forever.
	FocusRead
	// FocusWrite measures writers while readers loop forever.
	FocusWrite
)

// ParseFocus parses a focus flag value. The empty string means no
// focus.
func ParseFocus(s string) (Focus, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return FocusNone, nil
	case "read":
		return FocusRead, nil
	case "write":
		return FocusWrite, nil
	}
	return FocusNone, fmt.Errorf("unknown focus %q (want read or write)", s)
}

func (f Focus) String() string {
	switch f {
	case FocusRead:
		return "read"
	case FocusWrite:
		return "write"
	default:
		return "none"
	}
}

// Workload holds the immutable parameters of a contention run.
// Constructed once per run and captured by value at worker spawn.
type Workload struct {
	// MaxKey caps the key space: keys are drawn uniformly from
	// 0..=MaxKey, which bounds the map size.
	MaxKey uint64

	// PriorWrites is the number of entries inserted before the paced
	// phase begins.
	PriorWrites uint64

	// WritesPerSecond is the target aggregate write rate. It is also
	// the total write count, sizing the bounded batch for ~1 second.
	// Zero disables writers.
	WritesPerSecond uint64

	// ReadsPerSecond is the target aggregate read rate; zero disables
	// readers.
	ReadsPerSecond uint64

	// CheapReads selects point lookups; otherwise each read copies the
	// full key set out of the map.
	CheapReads bool

	Focus Focus
}
