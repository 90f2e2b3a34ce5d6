package bench

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dnut/cmapbench/pkg/cmap"
)

// InitParams holds the parameters of a bulk-allocation run.
type InitParams struct {
	// Entries is the number of inner maps inserted into the outer map.
	Entries uint64

	// InnerItems is the mean inner map size. Actual sizes are drawn
	// from a normal distribution with stddev InnerItems/3. Zero means
	// every inner map stays empty.
	InnerItems uint64
}

// OuterMap is the map of maps built by the init driver.
type OuterMap = cmap.Map[uint64, cmap.Map[uint64, struct{}]]

// RunInit measures the cost of allocating Entries inner maps into a
// fresh outer map, then the cost of tearing the whole structure down.
// Single-threaded; the factories decide which backend is under test.
func RunInit(p InitParams, newOuter cmap.Factory[uint64, cmap.Map[uint64, struct{}]], newInner cmap.Factory[uint64, struct{}], env Env) error {
	if p.Entries == 0 {
		return fmt.Errorf("init: entries must be positive")
	}
	env = env.normalized()

	start := time.Now()
	outer, peak := buildOuter(p, newOuter, newInner, env)
	env.Sink.Progress(100, peak)
	env.Sink.Duration("init", time.Since(start))

	// Teardown cost is part of what this driver characterizes. Go has
	// no deterministic drop, so the equivalent is releasing the only
	// reference and forcing a full collection under the clock.
	dropStart := time.Now()
	runtime.KeepAlive(outer)
	outer = nil
	runtime.GC()
	env.Sink.Duration("drop", time.Since(dropStart))

	return nil
}

// buildOuter runs the allocation loop, sampling resident memory at
// every 1% boundary. Runs smaller than 100 entries sample every
// iteration, which also keeps the progress step from reaching zero.
func buildOuter(p InitParams, newOuter cmap.Factory[uint64, cmap.Map[uint64, struct{}]], newInner cmap.Factory[uint64, struct{}], env Env) (OuterMap, uint64) {
	step := p.Entries / 100
	if step == 0 {
		step = 1
	}

	outer := newOuter()
	var peak uint64
	for i := uint64(0); i < p.Entries; i++ {
		inner := newInner()
		if p.InnerItems != 0 {
			n := normalCount(float64(p.InnerItems), float64(p.InnerItems)/3)
			for x := uint64(0); x < n; x++ {
				inner.Insert(x, struct{}{})
			}
		}
		outer.Insert(i, inner)
		env.Metrics.AddMaps(1)

		if i%step == 0 {
			if rss, ok := env.Resident(); ok && rss > peak {
				peak = rss
				env.Metrics.SetResidentPeak(peak)
			}
			env.Sink.Progress(int(i*100/p.Entries), peak)
		}
	}

	return outer, peak
}
