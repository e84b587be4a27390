// Package region implements the region adjacency graph: nodes are regions
// (initially fragments), edges exist between 6-connected neighboring
// regions, and each edge carries exactly the per-edge statistic
// accumulators ("aggregations") a scoring function needs.
//
// Two access paths are maintained deliberately, per spec §4.2: an O(1)
// edge-by-(u,v) hash map, and an O(deg(u)) adjacency list per region. This
// duplication is intrinsic to the agglomeration workload, which both
// looks up specific edges (to combine or rewire during a merge) and
// enumerates a region's whole neighborhood (to process every incident edge
// of the smaller side of a merge).
//
// Grounded on core.Graph's dual vertices/edges/adjacencyList storage
// (teacher package katalvlaran/lvlath/core), narrowed from a general
// directed/undirected/multigraph/loop-configurable graph to the one fixed
// topology this domain needs: undirected, no loops, no multi-edges, edges
// canonically keyed by (min(u,v), max(u,v)).
//
// Unlike core.Graph, Graph here carries no locks: spec §5 mandates a
// single-threaded, synchronous engine per volume with no shared mutable
// state across goroutines, so the concurrency machinery the teacher needs
// for a general-purpose library is simply inapplicable here.
package region
