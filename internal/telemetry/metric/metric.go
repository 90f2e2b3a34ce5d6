package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation kinds used as the label on the ops counter.
const (
	KindRead  = "read"
	KindWrite = "write"
)

// Registry holds all benchmark metrics. A nil *Registry is valid and
// drops every observation, so drivers never need to branch on whether
// metrics are enabled.
type Registry struct {
	reg *prometheus.Registry

	ops           *prometheus.CounterVec
	mapsAllocated prometheus.Counter
	residentPeak  prometheus.Gauge
}

// NewRegistry creates a registry with all benchmark metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		reg: reg,
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cmapbench_ops_total",
			Help: "Completed map operations by kind.",
		}, []string{"kind"}),
		mapsAllocated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cmapbench_maps_allocated_total",
			Help: "Inner maps constructed by the init driver.",
		}),
		residentPeak: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cmapbench_resident_peak_bytes",
			Help: "Peak resident set size observed during the run.",
		}),
	}

	reg.MustRegister(r.ops, r.mapsAllocated, r.residentPeak)
	return r
}

// AddOps records n completed operations of the given kind.
func (r *Registry) AddOps(kind string, n uint64) {
	if r == nil {
		return
	}
	r.ops.WithLabelValues(kind).Add(float64(n))
}

// AddMaps records n constructed inner maps.
func (r *Registry) AddMaps(n uint64) {
	if r == nil {
		return
	}
	r.mapsAllocated.Add(float64(n))
}

// SetResidentPeak records the peak resident memory in bytes.
func (r *Registry) SetResidentPeak(bytes uint64) {
	if r == nil {
		return
	}
	r.residentPeak.Set(float64(bytes))
}

// Handler returns an HTTP handler serving the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
