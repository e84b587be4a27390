// Package affinity defines the volumetric data model the segmentation engine
// operates on: the affinity array, fragment/label volumes, and the clamping
// rule applied before initial segmentation.
//
// An affinity volume A has shape (3, D, H, W): A.At(0, z, y, x) is the
// probability that voxel (z,y,x) and its z-1 neighbor belong to the same
// object; channels 1 and 2 give the y- and x- neighbors respectively.
// Out-of-range neighbors contribute no edge.
//
// A label volume (fragment or region labeling) has shape (D, H, W) of dense
// uint64 IDs; label 0 is reserved for background.
//
// Every constructor here validates shape, length and values eagerly and
// returns a sentinel error instead of panicking, matching the rest of the
// module's "fail at the boundary" policy; CheckShapeMatches and
// ValidateThresholds report the remaining cross-volume and threshold errors
// the same way.
package affinity
