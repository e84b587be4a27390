package waterz

import (
	"math/rand"

	"github.com/voxelgraph/waterz/affinity"
	"github.com/voxelgraph/waterz/cache"
	"github.com/voxelgraph/waterz/telemetry"
)

// DefaultAffLow and DefaultAffHigh are the default affinity clamping
// thresholds (spec §6).
const (
	DefaultAffLow  = 0.0001
	DefaultAffHigh = 0.9999
)

// DefaultScoringFunction is the default scoring expression, mirroring the
// original source's default of one-minus-max-affinity weighted by min-size.
const DefaultScoringFunction = "Multiply<OneMinus<MaxAffinity>, MinSize>"

// Options configures a call to Agglomerate. The zero value is invalid;
// Agglomerate starts from defaultOptions and applies the With* functions
// passed to it on top.
type Options struct {
	AffLow, AffHigh float32

	// Fragments, when non-nil, is used in place of running InitialSegmenter
	// (spec §6 "fragments: optional precomputed 3D integer fragment array").
	Fragments *affinity.LabelVolume

	// GroundTruth, when non-nil, is compared against every emitted
	// labeling via package metrics.
	GroundTruth *affinity.LabelVolume

	ScoringFunction string

	ReturnMergeHistory bool
	ReturnRegionGraph  bool

	ForceRebuild bool

	// Rand seeds the Random scoring leaf, for reproducible runs.
	Rand *rand.Rand

	// Cache, when non-nil, memoizes parsed scoring trees on disk. When
	// nil, every call to Agglomerate parses ScoringFunction fresh.
	Cache *cache.Cache

	// Telemetry, when non-nil, receives Prometheus instrumentation for
	// this run. A nil value disables instrumentation entirely.
	Telemetry *telemetry.Counters
}

// defaultOptions returns the zero-configured Options: default affinity
// thresholds and scoring function, no ground truth, no cache, no
// telemetry, nothing extra returned.
func defaultOptions() Options {
	return Options{
		AffLow:          DefaultAffLow,
		AffHigh:         DefaultAffHigh,
		ScoringFunction: DefaultScoringFunction,
	}
}

// Option is a functional option for Agglomerate.
type Option func(*Options)

// WithAffinityThresholds overrides the default clamping thresholds.
func WithAffinityThresholds(low, high float32) Option {
	return func(o *Options) { o.AffLow, o.AffHigh = low, high }
}

// WithFragments supplies a precomputed fragment labeling, skipping
// InitialSegmenter entirely.
func WithFragments(fragments *affinity.LabelVolume) Option {
	return func(o *Options) { o.Fragments = fragments }
}

// WithGroundTruth supplies a ground-truth labeling; every emitted snapshot
// is then accompanied by metrics comparing it against this labeling.
func WithGroundTruth(gt *affinity.LabelVolume) Option {
	return func(o *Options) { o.GroundTruth = gt }
}

// WithScoringFunction overrides the default scoring expression.
func WithScoringFunction(expr string) Option {
	return func(o *Options) { o.ScoringFunction = expr }
}

// WithMergeHistory enables retrieving the merge history through the
// MergeHistory field of each Result.
func WithMergeHistory() Option {
	return func(o *Options) { o.ReturnMergeHistory = true }
}

// WithRegionGraphDump enables retrieving the region graph through the
// RegionGraph field of each Result.
func WithRegionGraphDump() Option {
	return func(o *Options) { o.ReturnRegionGraph = true }
}

// WithForceRebuild bypasses the scoring-function cache, if one is
// configured.
func WithForceRebuild() Option {
	return func(o *Options) { o.ForceRebuild = true }
}

// WithRand supplies the random source backing Random scoring leaves.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithCache enables the on-disk scoring-function cache.
func WithCache(c *cache.Cache) Option {
	return func(o *Options) { o.Cache = c }
}

// WithTelemetry enables Prometheus instrumentation for this run.
func WithTelemetry(t *telemetry.Counters) Option {
	return func(o *Options) { o.Telemetry = t }
}
