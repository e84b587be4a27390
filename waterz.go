package waterz

import (
	"context"
	"time"

	"github.com/voxelgraph/waterz/affinity"
	"github.com/voxelgraph/waterz/agglomerator"
	"github.com/voxelgraph/waterz/fragment"
	"github.com/voxelgraph/waterz/metrics"
	"github.com/voxelgraph/waterz/region"
	"github.com/voxelgraph/waterz/scoring"
	"github.com/voxelgraph/waterz/telemetry"
)

// Result is one item of the output sequence (spec §6): a labeling for one
// requested threshold, optionally accompanied by metrics against a ground
// truth labeling, the merge history, and/or the final region graph,
// depending on which With* options were supplied to Agglomerate.
type Result struct {
	Threshold    float64
	Labels       *affinity.LabelVolume
	Metrics      *metrics.Scores
	MergeHistory []agglomerator.MergeEvent
	RegionGraph  *region.Graph
}

// Sequence is the lazy, stateful output sequence Agglomerate returns: each
// call to Next advances the underlying merge loop just far enough to cross
// the next requested threshold and yields its Result.
type Sequence struct {
	inner       *agglomerator.Sequence
	groundTruth *affinity.LabelVolume
	returnHist  bool
	returnGraph bool
	telemetry   *telemetry.Counters
}

// Agglomerate is the engine's entry point (spec §6): it validates affs,
// builds (or reuses) a fragment labeling, builds the region adjacency
// graph, parses (or fetches from cache) the scoring function, and returns a
// lazy Sequence of one Result per entry of thresholds.
//
// thresholds must be non-decreasing. affLow/affHigh default to 0.0001 and
// 0.9999 unless overridden with WithAffinityThresholds.
func Agglomerate(affs *affinity.AffinityVolume, thresholds []float64, opts ...Option) (*Sequence, error) {
	if affs == nil {
		return nil, ErrNilAffinities
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	fragments := cfg.Fragments
	if fragments == nil {
		built, err := fragment.Segment(affs, cfg.AffLow, cfg.AffHigh)
		if err != nil {
			return nil, err
		}
		fragments = built
		cfg.Telemetry.IncFragmentsBuilt()
	} else if err := affs.CheckShapeMatches(fragments); err != nil {
		return nil, err
	}

	tree, err := buildTree(cfg)
	if err != nil {
		return nil, err
	}

	g, err := region.BuildFromLabels(fragments, affs, tree.Mask())
	if err != nil {
		return nil, err
	}
	cfg.Telemetry.IncRegionGraphsBuilt()

	var aggOpts []agglomerator.Option
	if cfg.ReturnMergeHistory {
		aggOpts = append(aggOpts, agglomerator.WithMergeHistory())
	}
	if cfg.ReturnRegionGraph {
		aggOpts = append(aggOpts, agglomerator.WithRegionGraphDump())
	}
	if cfg.Rand != nil {
		aggOpts = append(aggOpts, agglomerator.WithRand(cfg.Rand))
	}
	if cfg.Telemetry != nil {
		aggOpts = append(aggOpts, agglomerator.WithTelemetry(cfg.Telemetry))
	}

	inner, err := agglomerator.NewSequence(g, tree, fragments, thresholds, aggOpts...)
	if err != nil {
		return nil, err
	}

	return &Sequence{
		inner:       inner,
		groundTruth: cfg.GroundTruth,
		returnHist:  cfg.ReturnMergeHistory,
		returnGraph: cfg.ReturnRegionGraph,
		telemetry:   cfg.Telemetry,
	}, nil
}

// buildTree parses cfg.ScoringFunction, going through cfg.Cache when one is
// configured so repeated runs with the same expression skip re-parsing, and
// reporting the outcome to cfg.Telemetry (a nil *telemetry.Counters is a
// valid no-op receiver).
func buildTree(cfg Options) (*scoring.Tree, error) {
	if cfg.Cache == nil {
		return scoring.Build(cfg.ScoringFunction)
	}

	tree, hit, err := cfg.Cache.Build(cfg.ScoringFunction, cfg.ForceRebuild)
	if err != nil {
		return nil, err
	}
	if hit {
		cfg.Telemetry.IncCacheHit()
	} else {
		cfg.Telemetry.IncCacheMiss()
	}

	return tree, nil
}

// Next advances the sequence to the next threshold. ok is false once every
// threshold has been emitted.
func (s *Sequence) Next(ctx context.Context) (*Result, bool, error) {
	start := time.Now()
	snap, ok, err := s.inner.Next(ctx)
	if err != nil || !ok {
		return nil, ok, err
	}
	s.telemetry.ObserveThreshold(time.Since(start))
	s.telemetry.IncSnapshot()

	res := &Result{Threshold: snap.Threshold, Labels: snap.Labels}
	if s.groundTruth != nil {
		scores, err := metrics.Compute(snap.Labels, s.groundTruth)
		if err != nil {
			return nil, false, err
		}
		res.Metrics = &scores
	}
	if s.returnHist {
		res.MergeHistory = s.inner.MergeHistory()
	}
	if s.returnGraph {
		res.RegionGraph = s.inner.RegionGraph()
	}

	return res, true, nil
}
