// Package bench implements the benchmark drivers.
//
// Two experiment modes exist:
//
//   - Init: single-threaded bulk allocation stress. An outer map is
//     filled with many freshly constructed inner maps and both the
//     construction and the teardown are timed.
//   - Contention: a shared map is driven by paced reader and writer
//     goroutines, one pair per hardware thread, for a nominal one
//     second window.
//
// Drivers are generic over the map backend through the cmap.Map
// contract, isolating lock granularity as the only variable under
// test. The drivers themselves hold no locks and share nothing between
// workers beyond the map reference and the immutable workload
// parameters captured at spawn.
package bench
