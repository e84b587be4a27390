// Package telemetry exposes Prometheus instrumentation for the
// agglomeration pipeline: counters for fragments built, merges performed,
// snapshots emitted, and scoring-function cache hits/misses, plus a
// histogram of per-threshold wall time.
//
// This is the one process-wide shared resource in an otherwise single-
// threaded, synchronous engine (spec §5): registration happens once via
// sync.Once, and every Counters method is safe to call on a nil receiver
// as a no-op, so instrumentation can never block or fail the pipeline it
// observes.
package telemetry
