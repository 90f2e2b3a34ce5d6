// Package meminfo samples the resident memory of the current process.
//
// The probe is optional by contract: callers must skip the sample when
// ok is false rather than treat it as an error, since resident-set
// accounting is only available where /proc is mounted.
package meminfo

import "github.com/prometheus/procfs"

// Resident returns the current resident set size in bytes. ok is false
// when the platform exposes no /proc-based process accounting.
func Resident() (uint64, bool) {
	p, err := procfs.Self()
	if err != nil {
		return 0, false
	}

	stat, err := p.Stat()
	if err != nil {
		return 0, false
	}

	rss := stat.ResidentMemory()
	if rss < 0 {
		return 0, false
	}
	return uint64(rss), true
}
