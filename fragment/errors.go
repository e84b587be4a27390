package fragment

import "errors"

// Sentinel errors for InitialSegmenter.
var (
	// ErrNilVolume indicates a nil *affinity.AffinityVolume was supplied.
	ErrNilVolume = errors.New("fragment: affinity volume is nil")
)
