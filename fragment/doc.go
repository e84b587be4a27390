// Package fragment implements the InitialSegmenter: a deterministic,
// single-threaded watershed-like construction of seed fragments from
// thresholded affinities.
//
// The algorithm (spec §4.1):
//
//  1. Clamp affinities into [0, aff_high], treating anything below aff_low
//     as zero.
//  2. For every voxel, find the maximum affinity among its (up to) six
//     incident edges — three incoming (negative-direction neighbors) and
//     three outgoing (positive-direction neighbors).
//  3. Union the voxel with the neighbor achieving that maximum, using a
//     disjoint-set keyed by flat voxel index (internal/unionfind). Ties
//     break by fixed axis order z<y<x, negative direction before positive.
//  4. Voxels whose own maximum is zero are never unioned with anything and
//     are assigned label 0 (background) — this falls directly out of step 3
//     because a zero-affinity edge can never be anyone's chosen maximum.
//  5. Remaining components are compacted to dense labels 1..K in
//     first-appearance raster order.
//
// Grounded on gridgraph's grid-to-adjacency walk and connected-component
// labeling (teacher package katalvlaran/lvlath/gridgraph), generalized from
// 2D 4/8-connectivity with a generic BFS to 3D 6-connectivity with a
// steepest-ascent union-find pass, and on prim_kruskal's disjoint-set usage
// pattern (now shared via internal/unionfind).
package fragment
