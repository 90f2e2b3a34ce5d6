// Package cmap provides concurrent map implementations for cmapbench.
//
// Two backends satisfy the same Map contract:
//
//   - Sharded: the key space is partitioned across a power-of-two number
//     of independently locked shards, reducing contention under parallel
//     access
//   - RWLocked: a single map guarded by one sync.RWMutex, so readers run
//     concurrently but every writer excludes everything else
//
// The backends share no state, only the contract, which lets the
// benchmark drivers be written once and run against either one.
//
// Thread Safety:
//
// All operations on both backends are safe for concurrent use. An Insert
// that has returned is visible to any Get or Keys call issued afterward
// from any goroutine.
package cmap
