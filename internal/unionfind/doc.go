// Package unionfind provides a disjoint-set (union-find) data structure over
// dense integer keys (voxel indices or region IDs), with path compression and
// union by size.
//
// Both the InitialSegmenter's directional-linking pass and the Agglomerator's
// merge loop need exactly this structure over two different key spaces
// (voxel index and region ID), so it lives here once instead of being
// duplicated per caller.
//
// Complexity:
//
//	– Find:  amortized O(α(n)) with path compression.
//	– Union: O(α(n)) amortized; merges the smaller set into the larger.
//	– Space: O(n).
package unionfind
