// Package pace throttles operation issuance to approximate a target
// aggregate rate across worker goroutines.
//
// Each worker owns a Pacer holding its next fire time and a constant
// inter-operation gap. The schedule is fixed-cadence: the next fire
// time advances by the gap regardless of how long the operation or the
// sleep actually took, so sleep/wake jitter does not accumulate into
// drift. A worker whose operations are slower than the gap simply
// never sleeps and runs at its maximum achievable rate; falling behind
// schedule is a measurement signal, not an error.
package pace
