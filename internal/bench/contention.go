package bench

import (
	"runtime"
	"sync"
	"time"

	"github.com/dnut/cmapbench/internal/bench/pace"
	"github.com/dnut/cmapbench/internal/telemetry/metric"
	"github.com/dnut/cmapbench/pkg/cmap"
)

// RunContention drives a shared map with paced reader and writer
// goroutines, one of each kind per hardware thread.
//
// Each worker's bounded batch is rate/threads operations, sized for a
// nominal one second at the target rate; the division remainder is
// dropped, not redistributed. With a focus selected, workers of the
// other kind repeat their batch forever and are abandoned when the
// driver returns — they die with the process. That is a deliberate
// leak: the process is expected to exit shortly after the measured
// phase.
func RunContention(w Workload, m cmap.Map[uint64, struct{}], env Env) {
	env = env.normalized()

	threads := uint64(runtime.NumCPU())
	writeGap, writeOK := pace.GapNanos(threads, w.WritesPerSecond)
	readGap, readOK := pace.GapNanos(threads, w.ReadsPerSecond)

	// Phase 1: seed the map before any pacing starts.
	for i := uint64(0); i < w.PriorWrites; i++ {
		m.Insert(randKey(w.MaxKey), struct{}{})
	}

	// Phase 2: paced concurrent run.
	start := time.Now()
	var writers, readers sync.WaitGroup
	for t := uint64(0); t < threads; t++ {
		if writeOK {
			writers.Add(1)
			go func() {
				defer writers.Done()
				p := pace.New(writeGap)
				batch := w.WritesPerSecond / threads
				for {
					for n := uint64(0); n < batch; n++ {
						p.Wait()
						m.Insert(randKey(w.MaxKey), struct{}{})
						p.Advance()
					}
					env.Metrics.AddOps(metric.KindWrite, batch)
					if w.Focus != FocusRead {
						return
					}
				}
			}()
		}
		if readOK {
			readers.Add(1)
			go func() {
				defer readers.Done()
				p := pace.New(readGap)
				batch := w.ReadsPerSecond / threads
				for {
					for n := uint64(0); n < batch; n++ {
						p.Wait()
						if w.CheapReads {
							m.Get(randKey(w.MaxKey))
						} else {
							m.Keys()
						}
						p.Advance()
					}
					env.Metrics.AddOps(metric.KindRead, batch)
					if w.Focus != FocusWrite {
						return
					}
				}
			}()
		}
	}

	// One join supervisor per kind reports elapsed time once all of
	// its bounded batches finish. A kind running unbounded never
	// reports.
	writersDone := make(chan struct{})
	go func() {
		writers.Wait()
		env.Sink.Duration("contention writers", time.Since(start))
		close(writersDone)
	}()
	readersDone := make(chan struct{})
	go func() {
		readers.Wait()
		env.Sink.Duration("contention readers", time.Since(start))
		close(readersDone)
	}()

	// Await only the kinds running bounded batches.
	if w.Focus != FocusRead {
		<-writersDone
	}
	if w.Focus != FocusWrite {
		<-readersDone
	}
}
