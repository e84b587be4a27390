// Package waterz agglomerates a 3D affinity graph into a sequence of
// hierarchical segmentations.
//
// Given a per-voxel, per-axis affinity volume (how likely two neighboring
// voxels belong to the same object), waterz runs a four-stage pipeline:
//
//	fragment    — a watershed-like seed segmentation from locally maximal
//	              affinities (package fragment)
//	region      — a region adjacency graph over those fragments, with
//	              per-edge affinity statistics (package region)
//	scoring     — a small expression-tree grammar deciding merge order
//	              (package scoring)
//	agglomerator — a priority-queue-driven merge loop producing one
//	              labeling per requested threshold (package agglomerator)
//
// The root Agglomerate entry point wires these together into a lazy
// sequence of labelings, one per threshold, computed on demand as the
// caller consumes them. package metrics compares two label volumes (Rand
// index, variation of information); package cache memoizes parsed scoring
// expressions on disk; package telemetry exposes Prometheus instrumentation
// for the pipeline.
//
//	go get github.com/voxelgraph/waterz
package waterz
