package pace

import "time"

// GapNanos converts a target aggregate rate into the per-worker gap
// between successive operations. It returns false when the rate is
// zero, meaning the operation should not run at all.
//
// The gap is threads * 1e9 / rate using integer division. At low rates
// the truncation biases the achieved rate slightly high; that
// approximation is part of the measured semantics.
func GapNanos(threads, ratePerSecond uint64) (time.Duration, bool) {
	if ratePerSecond == 0 {
		return 0, false
	}
	return time.Duration(threads * uint64(time.Second) / ratePerSecond), true
}

// Pacer is the per-worker schedule state. It is owned by a single
// goroutine and must not be shared.
type Pacer struct {
	next int64
	gap  int64
}

// New creates a Pacer whose schedule starts now.
func New(gap time.Duration) *Pacer {
	return &Pacer{
		next: time.Now().UnixNano(),
		gap:  int64(gap),
	}
}

// Wait blocks until the next scheduled fire time. If the schedule has
// already passed it returns immediately.
func (p *Pacer) Wait() {
	now := time.Now().UnixNano()
	if now < p.next {
		time.Sleep(time.Duration(p.next - now))
	}
}

// Advance moves the schedule forward by one gap. Called after the
// operation fires; the advance is by the constant gap, never by the
// observed elapsed time.
func (p *Pacer) Advance() {
	p.next += p.gap
}
