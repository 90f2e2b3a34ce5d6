// Package logger provides structured logging for cmapbench.
//
// It wraps the standard library log/slog to provide structured JSON or
// text logging with a configurable level. Measurement output
// (progress lines, durations) deliberately bypasses the logger and goes
// through the report sink instead, so machine-readable logs and human
// progress output never interleave on the same stream.
package logger
