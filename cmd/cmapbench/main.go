// Package main provides the entry point for cmapbench.
//
// cmapbench is a load generator for concurrent key-value map
// implementations. It measures throughput and latency behavior under
// rate-paced read/write workloads, and the memory/time cost of bulk
// map allocation, against either a sharded map or a single-lock map.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/urfave/cli/v2"

	"github.com/dnut/cmapbench/internal/bench"
	"github.com/dnut/cmapbench/internal/bench/config"
	"github.com/dnut/cmapbench/internal/bench/meminfo"
	"github.com/dnut/cmapbench/internal/bench/report"
	"github.com/dnut/cmapbench/internal/infra/buildinfo"
	"github.com/dnut/cmapbench/internal/infra/confloader"
	"github.com/dnut/cmapbench/internal/telemetry/logger"
	"github.com/dnut/cmapbench/internal/telemetry/metric"
	"github.com/dnut/cmapbench/pkg/cmap"
)

func main() {
	if err := app().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func app() *cli.App {
	return &cli.App{
		Name:    "cmapbench",
		Usage:   "load generator for concurrent key-value map implementations",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			initCommand(),
			contentionCommand(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to YAML configuration file",
			EnvVars: []string{"CMAPBENCH_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "map",
			Aliases: []string{"m"},
			Usage:   "map backend to test: sharded or rwlock",
			Value:   config.DefaultBackend,
		},
		&cli.IntFlag{
			Name:    "shards",
			Aliases: []string{"s"},
			Usage:   "shard count for the sharded backend (default: 4*cores rounded up to a power of two)",
		},
		&cli.IntFlag{
			Name:  "cores",
			Usage: "simulated core count used to derive the default shard count",
		},
		&cli.StringFlag{
			Name:  "metrics-addr",
			Usage: "serve Prometheus metrics on this address for the duration of the run",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, warn, error",
			Value: config.DefaultLogLevel,
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "log format: text, json",
			Value: config.DefaultLogFormat,
		},
	}
}

func initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "fill an outer map with a large number of freshly allocated inner maps",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:    "entries",
				Aliases: []string{"e"},
				Usage:   "number of inner maps to insert into the outer map",
				Value:   10_000_000,
			},
			&cli.Uint64Flag{
				Name:    "inner-items",
				Aliases: []string{"i"},
				Usage:   "mean number of items per inner map, normally distributed (0 = empty)",
			},
		},
		Action: runInit,
	}
}

func contentionCommand() *cli.Command {
	return &cli.Command{
		Name:  "contention",
		Usage: "drive a single shared map with paced read and write operations for ~1 second",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:    "max-entries",
				Aliases: []string{"M"},
				Usage:   "cap on map size: keys are drawn from 0..=max-entries (default: prior-writes + writes-per-second)",
			},
			&cli.Uint64Flag{
				Name:    "prior-writes",
				Aliases: []string{"p"},
				Usage:   "entries written into the map before the benchmark begins",
			},
			&cli.Uint64Flag{
				Name:    "writes-per-second",
				Aliases: []string{"w"},
				Usage:   "write operations per second; also the total write count",
				Value:   10_000_000,
			},
			&cli.Uint64Flag{
				Name:    "reads-per-second",
				Aliases: []string{"r"},
				Usage:   "read operations per second; also the total read count",
				Value:   10_000_000,
			},
			&cli.BoolFlag{
				Name:  "cheap-reads",
				Usage: "point lookups instead of copying all keys per read",
			},
			&cli.StringFlag{
				Name:    "focus",
				Aliases: []string{"f"},
				Usage:   "loop the other operation infinitely; the run ends when the focused operation (read or write) completes",
			},
		},
		Action: runContention,
	}
}

func runInit(c *cli.Context) error {
	rt, err := setup(c)
	if err != nil {
		return err
	}
	defer rt.close()

	params := bench.InitParams{
		Entries:    c.Uint64("entries"),
		InnerItems: c.Uint64("inner-items"),
	}
	rt.log.Info("starting init run",
		"backend", rt.cfg.Map.Backend,
		"shards", rt.shards(),
		"entries", params.Entries,
		"inner_items", params.InnerItems)

	newOuter, newInner := factories(rt.cfg)
	return bench.RunInit(params, newOuter, newInner, rt.env)
}

func runContention(c *cli.Context) error {
	rt, err := setup(c)
	if err != nil {
		return err
	}
	defer rt.close()

	focus, err := bench.ParseFocus(c.String("focus"))
	if err != nil {
		return err
	}

	w := bench.Workload{
		MaxKey:          c.Uint64("max-entries"),
		PriorWrites:     c.Uint64("prior-writes"),
		WritesPerSecond: c.Uint64("writes-per-second"),
		ReadsPerSecond:  c.Uint64("reads-per-second"),
		CheapReads:      c.Bool("cheap-reads"),
		Focus:           focus,
	}
	if !c.IsSet("max-entries") {
		w.MaxKey = w.PriorWrites + w.WritesPerSecond
	}

	rt.log.Info("starting contention run",
		"backend", rt.cfg.Map.Backend,
		"shards", rt.shards(),
		"max_key", w.MaxKey,
		"prior_writes", w.PriorWrites,
		"writes_per_second", w.WritesPerSecond,
		"reads_per_second", w.ReadsPerSecond,
		"cheap_reads", w.CheapReads,
		"focus", w.Focus.String())

	_, newInner := factories(rt.cfg)
	bench.RunContention(w, newInner(), rt.env)
	return nil
}

// runEnv bundles what a subcommand action needs after setup.
type runEnv struct {
	cfg   *config.Config
	log   logger.Logger
	env   bench.Env
	close func()
}

// shards returns the resolved shard count, or 0 for the single-lock
// backend where sharding does not apply.
func (rt *runEnv) shards() int {
	if rt.cfg.Map.Backend != config.BackendSharded {
		return 0
	}
	return rt.cfg.ShardCount()
}

// setup resolves configuration (defaults < file < env < flags), then
// builds the logger, metrics, and report sink for the run.
func setup(c *cli.Context) (*runEnv, error) {
	cfg := config.Default()

	var opts []confloader.Option
	if path := c.String("config"); path != "" {
		opts = append(opts, confloader.WithConfigFile(path))
	}
	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if c.IsSet("map") {
		cfg.Map.Backend = c.String("map")
	}
	if c.IsSet("shards") {
		cfg.Map.Shards = c.Int("shards")
	}
	if c.IsSet("cores") {
		cfg.Map.Cores = c.Int("cores")
	}
	if c.IsSet("metrics-addr") {
		cfg.Metrics.Addr = c.String("metrics-addr")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	}).With("run_id", newRunID())

	metrics := metric.NewRegistry()
	closer := func() {}
	if cfg.Metrics.Addr != "" {
		srv := &http.Server{Addr: cfg.Metrics.Addr, Handler: metrics.Handler()}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("metrics server failed", "error", err)
			}
		}()
		log.Info("serving metrics", "addr", cfg.Metrics.Addr)
		closer = func() { srv.Close() }
	}

	return &runEnv{
		cfg: cfg,
		log: log,
		env: bench.Env{
			Log:      log,
			Sink:     report.NewConsole(os.Stdout),
			Metrics:  metrics,
			Resident: meminfo.Resident,
		},
		close: closer,
	}, nil
}

// factories returns the outer and inner map constructors for the
// selected backend. Both drivers only ever need uint64 keys.
func factories(cfg *config.Config) (cmap.Factory[uint64, cmap.Map[uint64, struct{}]], cmap.Factory[uint64, struct{}]) {
	if cfg.Map.Backend == config.BackendRWLock {
		return cmap.RWLockedFactory[uint64, cmap.Map[uint64, struct{}]](),
			cmap.RWLockedFactory[uint64, struct{}]()
	}

	shards := cfg.ShardCount()
	return cmap.ShardedFactory[uint64, cmap.Map[uint64, struct{}]](shards, cmap.NewUint64Hasher),
		cmap.ShardedFactory[uint64, struct{}](shards, cmap.NewUint64Hasher)
}

func newRunID() string {
	return strings.ToLower(ulid.Make().String())
}
