package region

import "errors"

// Sentinel errors for region graph construction and queries.
var (
	// ErrRegionNotFound indicates an operation referenced a non-existent region.
	ErrRegionNotFound = errors.New("region: region not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("region: edge not found")

	// ErrSameRegion indicates an edge was requested between a region and itself.
	ErrSameRegion = errors.New("region: cannot form an edge from a region to itself")

	// ErrNilVolume indicates a nil affinity or label volume was supplied to the builder.
	ErrNilVolume = errors.New("region: volume is nil")
)
