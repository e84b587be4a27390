// Package agglomerator runs the priority-queue-driven merge loop over a
// region graph, producing one labeling per requested threshold.
//
// State: the region graph, a disjoint-set structure over region IDs (path
// compression, union by size, lower-id-wins ties), and a min-heap of
// (score, edge, version) entries. Every edge's score is computed once at
// construction and pushed into the heap. The main loop pops the
// lowest-scoring live edge; if its score exceeds the current threshold, the
// entry is pushed back and a labeling snapshot is emitted for that
// threshold before advancing to the next one. Otherwise the edge's two
// regions merge: the larger (ties: lower id) absorbs the smaller, the
// absorbed region's other edges are combined into or rewired onto the
// surviving region, and the triggering edge is retired.
//
// A heap entry becomes stale the moment the edge it names is combined,
// rewired, or retired — an incremented stale counter records this, and
// every pop compares the entry's captured version against the edge's
// current stale value, discarding mismatches without ever doing a
// logarithmic heap deletion (the same lazy-decrease-key idiom the package
// is grounded on uses for Dijkstra's relaxed distances).
//
// The produced Sequence is a lazy iterator: each call to Next runs the loop
// until a snapshot is due, checking for a cancelled context only at that
// boundary, never mid-merge.
package agglomerator
