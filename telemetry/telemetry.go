package telemetry

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters holds every Prometheus collector the pipeline reports to. A nil
// *Counters is valid and every method on it is a no-op, so callers that
// don't want instrumentation can simply pass nil instead of threading a
// feature flag through every component.
type Counters struct {
	fragmentsBuilt    prometheus.Counter
	regionGraphsBuilt prometheus.Counter
	mergesTotal       prometheus.Counter
	snapshotsTotal    prometheus.Counter
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
	thresholdDuration prometheus.Histogram
}

var (
	once     sync.Once
	instance *Counters
)

// New returns the process-wide Counters, registering its collectors with
// the default Prometheus registry on first call. Subsequent calls return
// the same instance; registering the same collector names twice would
// panic, which sync.Once prevents regardless of call order.
func New() *Counters {
	once.Do(func() {
		instance = &Counters{
			fragmentsBuilt: promauto.NewCounter(prometheus.CounterOpts{
				Name: "waterz_fragments_built_total",
				Help: "Total number of initial fragment labelings built.",
			}),
			regionGraphsBuilt: promauto.NewCounter(prometheus.CounterOpts{
				Name: "waterz_region_graphs_built_total",
				Help: "Total number of region adjacency graphs built.",
			}),
			mergesTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "waterz_merges_total",
				Help: "Total number of region merges performed.",
			}),
			snapshotsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "waterz_snapshots_total",
				Help: "Total number of threshold snapshots emitted.",
			}),
			cacheHits: promauto.NewCounter(prometheus.CounterOpts{
				Name: "waterz_scoring_cache_hits_total",
				Help: "Total number of scoring-function cache hits.",
			}),
			cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
				Name: "waterz_scoring_cache_misses_total",
				Help: "Total number of scoring-function cache misses.",
			}),
			thresholdDuration: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "waterz_threshold_duration_seconds",
				Help:    "Wall time spent advancing the merge loop to each requested threshold.",
				Buckets: prometheus.DefBuckets,
			}),
		}
	})

	return instance
}

// IncFragmentsBuilt increments the fragments-built counter.
func (c *Counters) IncFragmentsBuilt() {
	if c == nil {
		return
	}
	c.fragmentsBuilt.Inc()
}

// IncRegionGraphsBuilt increments the region-graphs-built counter.
func (c *Counters) IncRegionGraphsBuilt() {
	if c == nil {
		return
	}
	c.regionGraphsBuilt.Inc()
}

// IncMerge increments the merges-performed counter.
func (c *Counters) IncMerge() {
	if c == nil {
		return
	}
	c.mergesTotal.Inc()
}

// IncSnapshot increments the snapshots-emitted counter.
func (c *Counters) IncSnapshot() {
	if c == nil {
		return
	}
	c.snapshotsTotal.Inc()
}

// IncCacheHit increments the scoring-function cache hit counter.
func (c *Counters) IncCacheHit() {
	if c == nil {
		return
	}
	c.cacheHits.Inc()
}

// IncCacheMiss increments the scoring-function cache miss counter.
func (c *Counters) IncCacheMiss() {
	if c == nil {
		return
	}
	c.cacheMisses.Inc()
}

// ObserveThreshold records the wall time spent advancing the merge loop to
// one requested threshold.
func (c *Counters) ObserveThreshold(d time.Duration) {
	if c == nil {
		return
	}
	c.thresholdDuration.Observe(d.Seconds())
}
