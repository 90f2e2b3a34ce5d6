// Package metric provides Prometheus metrics for cmapbench.
//
// A run-to-completion benchmark does not need a metrics endpoint, but
// focus runs can leave the non-focused workload looping indefinitely;
// serving /metrics during the run is the only way to watch those
// workers. The endpoint is off unless an address is configured.
//
// Counters are added per bounded batch rather than per operation so
// accounting stays out of the paced hot path.
package metric
