package config

import "fmt"

// Verify checks the configuration for values that would corrupt a run.
// A benchmark has no recovery path, so everything suspicious is
// rejected before any measurement starts.
func Verify(c *Config) error {
	switch c.Map.Backend {
	case BackendSharded, BackendRWLock:
	default:
		return fmt.Errorf("map.backend: unknown backend %q (want %s or %s)",
			c.Map.Backend, BackendSharded, BackendRWLock)
	}

	if c.Map.Shards < 0 {
		return fmt.Errorf("map.shards: must not be negative, got %d", c.Map.Shards)
	}
	if c.Map.Shards > 0 && c.Map.Shards&(c.Map.Shards-1) != 0 {
		return fmt.Errorf("map.shards: must be a power of two, got %d", c.Map.Shards)
	}

	if c.Map.Cores < 0 {
		return fmt.Errorf("map.cores: must not be negative, got %d", c.Map.Cores)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}

	return nil
}
