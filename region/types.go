package region

// AggKind is a bitmask selecting which per-edge statistic accumulators are
// active. A scoring expression tree inspects itself once at construction
// time (see package scoring) and reports exactly the kinds it needs; only
// those are populated on each edge, matching design note §9's "inspect the
// tree once, compute the aggregation bitmask, instantiate exactly those
// fields" guidance.
type AggKind uint8

const (
	// AggMin selects the running minimum affinity.
	AggMin AggKind = 1 << iota
	// AggMax selects the running maximum affinity.
	AggMax
	// AggMean selects the running sum+count used for the mean.
	AggMean
	// AggHistogram selects a fixed-width histogram over [0,1].
	AggHistogram
	// AggTopK selects a top-k partial vector of the largest samples.
	AggTopK
	// AggExact selects an unbounded, ascending-sorted vector of every raw
	// sample, used to answer exact (non-histogram) quantile queries. More
	// expensive than AggHistogram; populated whenever a scoring expression
	// asks for an exact quantile, whether or not it also requests a
	// histogram.
	AggExact
)

// Has reports whether kind is set in the mask.
func (m AggKind) Has(kind AggKind) bool { return m&kind != 0 }

// AggregationMask fully describes which aggregations to maintain, including
// the size parameters (histogram bin count, top-k width) those aggregations
// need. A zero value means "no aggregation beyond contact_area".
type AggregationMask struct {
	Kinds         AggKind
	HistogramBins int
	TopK          int
}

// Merge returns the union of two masks, taking the larger of any size
// parameter. Used when multiple scoring sub-expressions each request
// aggregations on the same edge.
func (m AggregationMask) Merge(other AggregationMask) AggregationMask {
	out := AggregationMask{Kinds: m.Kinds | other.Kinds}
	out.HistogramBins = m.HistogramBins
	if other.HistogramBins > out.HistogramBins {
		out.HistogramBins = other.HistogramBins
	}
	out.TopK = m.TopK
	if other.TopK > out.TopK {
		out.TopK = other.TopK
	}

	return out
}

// Aggregation holds the per-edge statistic accumulators. Only the fields
// selected by the owning Graph's AggregationMask are meaningfully
// maintained; others stay at their zero value and are never read.
type Aggregation struct {
	HasMin bool
	Min    float32

	HasMax bool
	Max    float32

	HasMean bool
	Sum     float64
	Count   uint64

	// Histogram has len == mask.HistogramBins when AggHistogram is set, nil
	// otherwise. Histogram[i] counts samples in [i/bins, (i+1)/bins).
	Histogram []uint32

	// TopK holds up to mask.TopK largest samples, sorted descending. Nil
	// when AggTopK is unset.
	TopK []float32

	// Exact holds every raw sample seen, ascending-sorted, when AggExact is
	// set. Nil otherwise.
	Exact []float32

	// N is the total number of samples folded into this aggregation,
	// tracked unconditionally regardless of mask. FirstValue is the value
	// of the very first sample, so that histogram- or quantile-based
	// aggregations with exactly one sample can report that sample exactly
	// rather than a bucket or order-statistic approximation (spec §7
	// numerical edge cases).
	N          uint64
	FirstValue float32
}

// Region is a connected set of voxels sharing a label. Regions are born
// during initial segmentation (one per fragment) and only ever merged, never
// split; a merged-away region is retired and its ID no longer resolves via
// Graph.Region.
type Region struct {
	ID   int
	Size uint64

	// edges maps neighbor region ID -> the (shared) Edge object connecting
	// this region to that neighbor. Both endpoints of an edge hold a entry
	// in their own edges map pointing at the same *Edge.
	edges map[int]*Edge
}

// Edge connects two regions u<v. ID is assigned in creation order and is
// used both for deterministic iteration (Edges() sorted by ID) and as the
// initial FIFO tie-break key when multiple edges share a score.
type Edge struct {
	ID int
	U  int // U < V always
	V  int

	ContactArea uint64
	Agg         Aggregation

	Score float64
	// Stale is incremented every time this edge's score is recomputed after
	// a merge; a priority-queue entry is valid only while its captured
	// version still matches Stale (spec §3 invariant I5, §9 lazy heap
	// deletion).
	Stale uint32
}

// Other returns the endpoint of e that is not id.
func (e *Edge) Other(id int) int {
	if e.U == id {
		return e.V
	}

	return e.U
}
