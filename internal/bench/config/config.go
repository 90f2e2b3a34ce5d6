// Package config defines the benchmark configuration structure.
package config

import "runtime"

// Map backend selectors.
const (
	BackendSharded = "sharded"
	BackendRWLock  = "rwlock"
)

// Default configuration values.
const (
	DefaultBackend   = BackendSharded
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config is the root configuration for cmapbench.
type Config struct {
	Map     MapSection     `koanf:"map"`
	Log     LogSection     `koanf:"log"`
	Metrics MetricsSection `koanf:"metrics"`
}

// MapSection selects and sizes the map backend under test.
type MapSection struct {
	// Backend is the implementation under test: sharded or rwlock.
	Backend string `koanf:"backend"`

	// Shards overrides the shard count of the sharded backend. Must be
	// a power of two. Zero derives the count from Cores.
	Shards int `koanf:"shards"`

	// Cores simulates a core count when deriving the default shard
	// count. Zero uses the detected hardware parallelism.
	Cores int `koanf:"cores"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// MetricsSection configures the optional Prometheus endpoint.
type MetricsSection struct {
	// Addr is the listen address for /metrics. Empty disables the
	// endpoint.
	Addr string `koanf:"addr"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Map: MapSection{
			Backend: DefaultBackend,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// ShardCount resolves the shard count for the sharded backend: the
// explicit override if set, otherwise 4 * cores rounded up to a power
// of two.
func (c *Config) ShardCount() int {
	if c.Map.Shards > 0 {
		return c.Map.Shards
	}

	cores := c.Map.Cores
	if cores <= 0 {
		cores = runtime.NumCPU()
	}
	return nextPowerOfTwo(4 * cores)
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
