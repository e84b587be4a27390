package agglomerator

import (
	"math/rand"

	"github.com/voxelgraph/waterz/affinity"
	"github.com/voxelgraph/waterz/telemetry"
)

// MergeEvent records one merge from the optional append-only merge
// history: the two regions' roots immediately before the merge, and the
// score that triggered it.
type MergeEvent struct {
	RootBeforeU int
	RootBeforeV int
	Score       float64
}

// Snapshot is one labeling emitted by a Sequence, corresponding to one
// requested threshold.
type Snapshot struct {
	Threshold float64
	Labels    *affinity.LabelVolume
}

// Options configures a Sequence. The zero value disables both optional
// outputs and seeds Random leaves from the package-level math/rand source.
type Options struct {
	// TrackMergeHistory, when true, accumulates a MergeEvent per merge,
	// retrievable via Sequence.MergeHistory.
	TrackMergeHistory bool
	// TrackRegionGraph, when true, keeps Sequence.RegionGraph returning the
	// live region graph as it is mutated by the merge loop; when false,
	// RegionGraph always returns nil (saving nothing extra today, since the
	// graph is mutated in place regardless, but documents the caller's
	// intent not to rely on it).
	TrackRegionGraph bool
	// Rand seeds the Random scoring leaf. When nil, Random falls back to
	// the package-level math/rand source.
	Rand *rand.Rand
	// Telemetry, when non-nil, receives a count of every merge performed.
	// A nil value (the default) disables instrumentation entirely; every
	// method on a nil *telemetry.Counters is a safe no-op.
	Telemetry *telemetry.Counters
}

// Option is a functional option for NewSequence, matching the teacher's
// Source/WithReturnPath construction idiom.
type Option func(*Options)

// DefaultOptions returns the zero-value Options: no optional outputs
// tracked, unseeded Random draws.
func DefaultOptions() Options { return Options{} }

// WithMergeHistory enables the append-only merge history.
func WithMergeHistory() Option {
	return func(o *Options) { o.TrackMergeHistory = true }
}

// WithRegionGraphDump enables retrieving the region graph after the
// sequence is consumed.
func WithRegionGraphDump() Option {
	return func(o *Options) { o.TrackRegionGraph = true }
}

// WithRand supplies the random source backing Random scoring leaves, for
// reproducible runs. Panics immediately if r is nil, matching the
// teacher's panic-on-invalid-construction convention for option
// constructors.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("agglomerator: WithRand requires a non-nil source")
	}

	return func(o *Options) { o.Rand = r }
}

// WithTelemetry wires a *telemetry.Counters into the merge loop so every
// merge performed is reported.
func WithTelemetry(t *telemetry.Counters) Option {
	return func(o *Options) { o.Telemetry = t }
}
