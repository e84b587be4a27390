// Package metrics compares two label volumes of identical shape using the
// Rand index and variation of information (VOI), split into their merge and
// split components (spec §4.5).
//
// Both metrics are derived from the contingency table between the two
// labelings, counting co-occurrences of (labelA, labelB) per voxel.
// Background (label 0) in either volume excludes that voxel from every sum.
package metrics
