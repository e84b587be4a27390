package region

import "sort"

// Graph is the region adjacency graph: a set of Regions plus the Edges
// between 6-connected neighbors, annotated with exactly the aggregations
// named by mask.
type Graph struct {
	mask AggKind
	// histogramBins/topK mirror the values given in the owning
	// AggregationMask; every Aggregation this Graph creates honors them.
	histogramBins int
	topK          int

	regions map[int]*Region
	edges   map[edgeKey]*Edge

	nextEdgeID int
}

type edgeKey struct{ u, v int }

// canonicalKey returns the (min,max) key for an unordered region pair.
func canonicalKey(a, b int) edgeKey {
	if a < b {
		return edgeKey{a, b}
	}

	return edgeKey{b, a}
}

// NewGraph allocates an empty region graph honoring the given aggregation
// mask for every edge it creates.
func NewGraph(mask AggregationMask) *Graph {
	return &Graph{
		mask:          mask.Kinds,
		histogramBins: mask.HistogramBins,
		topK:          mask.TopK,
		regions:       make(map[int]*Region),
		edges:         make(map[edgeKey]*Edge),
	}
}

// AddRegion inserts (or returns the existing) region with the given ID,
// setting its size if newly created.
//
// Complexity: O(1).
func (g *Graph) AddRegion(id int, size uint64) *Region {
	if r, ok := g.regions[id]; ok {
		return r
	}
	r := &Region{ID: id, Size: size, edges: make(map[int]*Edge)}
	g.regions[id] = r

	return r
}

// Region returns the region with the given ID.
//
// Complexity: O(1).
func (g *Graph) Region(id int) (*Region, bool) {
	r, ok := g.regions[id]

	return r, ok
}

// RegionIDs returns every live region ID in ascending order.
//
// Complexity: O(R log R).
func (g *Graph) RegionIDs() []int {
	ids := make([]int, 0, len(g.regions))
	for id := range g.regions {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// RegionCount returns the number of live regions.
func (g *Graph) RegionCount() int { return len(g.regions) }

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// GetEdge returns the edge between u and v, if one exists.
//
// Complexity: O(1).
func (g *Graph) GetEdge(u, v int) (*Edge, bool) {
	e, ok := g.edges[canonicalKey(u, v)]

	return e, ok
}

// Edges returns every live edge sorted by ID ascending, matching the
// teacher's deterministic-iteration convention (core.Graph.Edges()).
//
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NeighborEdges returns every edge incident to region id, in an
// unspecified-but-stable order (sorted by the neighbor's region ID), for
// O(deg(id)) enumeration.
//
// Complexity: O(deg(id) log deg(id)).
func (g *Graph) NeighborEdges(id int) []*Edge {
	r, ok := g.regions[id]
	if !ok {
		return nil
	}
	neighbors := make([]int, 0, len(r.edges))
	for nb := range r.edges {
		neighbors = append(neighbors, nb)
	}
	sort.Ints(neighbors)
	out := make([]*Edge, 0, len(neighbors))
	for _, nb := range neighbors {
		out = append(out, r.edges[nb])
	}

	return out
}

// newAggregation allocates an Aggregation honoring the graph's mask.
func (g *Graph) newAggregation() Aggregation {
	agg := Aggregation{}
	if g.mask.Has(AggHistogram) && g.histogramBins > 0 {
		agg.Histogram = make([]uint32, g.histogramBins)
	}
	if g.mask.Has(AggTopK) && g.topK > 0 {
		agg.TopK = make([]float32, 0, g.topK)
	}
	if g.mask.Has(AggExact) {
		agg.Exact = make([]float32, 0)
	}

	return agg
}

// EnsureEdge returns the edge between u and v, creating it (with an empty
// aggregation and contact_area=0) if absent. u and v must be distinct.
//
// Complexity: O(1).
func (g *Graph) EnsureEdge(u, v int) (*Edge, error) {
	if u == v {
		return nil, ErrSameRegion
	}
	key := canonicalKey(u, v)
	if e, ok := g.edges[key]; ok {
		return e, nil
	}
	e := &Edge{
		ID:  g.nextEdgeID,
		U:   key.u,
		V:   key.v,
		Agg: g.newAggregation(),
	}
	g.nextEdgeID++
	g.edges[key] = e
	g.regions[key.u].edges[key.v] = e
	g.regions[key.v].edges[key.u] = e

	return e, nil
}

// RetireEdge removes the edge between u and v from both the hash map and
// both endpoints' adjacency lists.
//
// Complexity: O(1).
func (g *Graph) RetireEdge(u, v int) {
	key := canonicalKey(u, v)
	delete(g.edges, key)
	if r, ok := g.regions[key.u]; ok {
		delete(r.edges, key.v)
	}
	if r, ok := g.regions[key.v]; ok {
		delete(r.edges, key.u)
	}
}

// RetireRegion removes a merged-away region from the graph. Its edges must
// already have been combined, rewired, or retired by the caller.
func (g *Graph) RetireRegion(id int) {
	delete(g.regions, id)
}

// RewireEndpoint moves the edge between old and other so that it instead
// connects newID and other, preserving every accumulated statistic on the
// edge object. Used when a region (old) is absorbed into newID during a
// merge and old's edge to some untouched neighbor other must survive under
// the new endpoint (spec §4.4 step 5, "rewire" case).
//
// The caller must ensure no edge already exists between newID and other;
// when one does, fold the two via CombineInto and RetireEdge(old, other)
// instead (the "combine" case).
//
// Returns nil if no edge exists between old and other.
//
// Complexity: O(1).
func (g *Graph) RewireEndpoint(old, newID, other int) *Edge {
	oldKey := canonicalKey(old, other)
	e, ok := g.edges[oldKey]
	if !ok {
		return nil
	}
	delete(g.edges, oldKey)
	if r, ok := g.regions[old]; ok {
		delete(r.edges, other)
	}
	if r, ok := g.regions[other]; ok {
		delete(r.edges, old)
	}

	newKey := canonicalKey(newID, other)
	e.U, e.V = newKey.u, newKey.v
	g.edges[newKey] = e
	if r, ok := g.regions[newID]; ok {
		r.edges[other] = e
	}
	if r, ok := g.regions[other]; ok {
		r.edges[newID] = e
	}

	return e
}

// Sample folds one raw, unclamped affinity value into an aggregation
// according to the graph's mask (spec §4.2: "update each active
// aggregation with affinity value a").
//
// Complexity: O(1) for min/max/mean/histogram, O(k) for the top-k insert,
// and O(n) in the number of samples already held for the exact vector.
func (g *Graph) Sample(agg *Aggregation, a float32) {
	if agg.N == 0 {
		agg.FirstValue = a
	}
	agg.N++

	if g.mask.Has(AggMin) {
		if !agg.HasMin || a < agg.Min {
			agg.Min = a
		}
		agg.HasMin = true
	}
	if g.mask.Has(AggMax) {
		if !agg.HasMax || a > agg.Max {
			agg.Max = a
		}
		agg.HasMax = true
	}
	if g.mask.Has(AggMean) {
		agg.Sum += float64(a)
		agg.Count++
		agg.HasMean = true
	}
	if g.mask.Has(AggHistogram) && len(agg.Histogram) > 0 {
		agg.Histogram[histogramBin(a, len(agg.Histogram))]++
	}
	if g.mask.Has(AggTopK) && g.topK > 0 {
		agg.TopK = insertTopK(agg.TopK, a, g.topK)
	}
	if g.mask.Has(AggExact) {
		agg.Exact = insertSorted(agg.Exact, a)
	}
}

// insertSorted inserts a into an ascending-sorted slice, preserving order.
func insertSorted(sorted []float32, a float32) []float32 {
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= a })
	sorted = append(sorted, 0)
	copy(sorted[i+1:], sorted[i:len(sorted)-1])
	sorted[i] = a

	return sorted
}

// mergeSorted merges two ascending-sorted slices into one ascending-sorted slice.
func mergeSorted(a, b []float32) []float32 {
	out := make([]float32, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// histogramBin maps a value in [0,1] to a bucket in [0,bins).
func histogramBin(a float32, bins int) int {
	idx := int(a * float32(bins))
	if idx < 0 {
		idx = 0
	}
	if idx >= bins {
		idx = bins - 1
	}

	return idx
}

// insertTopK inserts a into a descending-sorted slice, keeping at most k
// elements.
func insertTopK(topK []float32, a float32, k int) []float32 {
	i := 0
	for i < len(topK) && topK[i] >= a {
		i++
	}
	if i == k {
		// a is not among the top k; the slice is already full and sorted.
		return topK
	}
	topK = append(topK, 0)
	copy(topK[i+1:], topK[i:len(topK)-1])
	topK[i] = a
	if len(topK) > k {
		// Keep the capacity at k as well: CombineInto reads k back from it.
		topK = topK[:k:k]
	}

	return topK
}

// CombineInto folds src's statistics into dst, as required when two edges
// (u,w) and (v,w) collapse into one after u absorbs v (spec §4.4 step 5):
// contact areas add, min-of-min, max-of-max, elementwise-summed histograms,
// concatenated-then-truncated top-k, and summed sum/count for the mean.
//
// Complexity: O(bins + k).
func CombineInto(dst, src *Edge) {
	dst.ContactArea += src.ContactArea

	da, sa := &dst.Agg, &src.Agg
	if sa.HasMin && (!da.HasMin || sa.Min < da.Min) {
		da.Min = sa.Min
		da.HasMin = true
	}
	if sa.HasMax && (!da.HasMax || sa.Max > da.Max) {
		da.Max = sa.Max
		da.HasMax = true
	}
	if sa.HasMean {
		da.Sum += sa.Sum
		da.Count += sa.Count
		da.HasMean = true
	}
	if len(da.Histogram) > 0 && len(sa.Histogram) > 0 {
		for i := range da.Histogram {
			da.Histogram[i] += sa.Histogram[i]
		}
	}
	if cap(da.TopK) > 0 || len(sa.TopK) > 0 {
		k := cap(da.TopK)
		if k == 0 {
			k = len(sa.TopK)
		}
		merged := make([]float32, 0, k)
		merged = append(merged, da.TopK...)
		for _, v := range sa.TopK {
			merged = insertTopK(merged, v, k)
		}
		da.TopK = merged
	}
	if len(da.Exact) > 0 || len(sa.Exact) > 0 {
		da.Exact = mergeSorted(da.Exact, sa.Exact)
	}
	if da.N == 0 && sa.N == 1 {
		da.FirstValue = sa.FirstValue
	}
	da.N += sa.N

	dst.Stale++
}
