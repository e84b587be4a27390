package agglomerator

import "errors"

// Sentinel errors for Sequence construction.
var (
	// ErrNilGraph indicates a nil region graph was supplied.
	ErrNilGraph = errors.New("agglomerator: region graph is nil")

	// ErrNilTree indicates a nil scoring tree was supplied.
	ErrNilTree = errors.New("agglomerator: scoring tree is nil")

	// ErrNilFragments indicates a nil fragment label volume was supplied.
	ErrNilFragments = errors.New("agglomerator: fragment label volume is nil")

	// ErrEmptyThresholds indicates an empty threshold list was supplied;
	// a sequence with nothing to emit is not a meaningful request.
	ErrEmptyThresholds = errors.New("agglomerator: thresholds must be non-empty")

	// ErrThresholdsNotSorted indicates the threshold list is not
	// non-decreasing, which the single forward pass over the heap requires.
	ErrThresholdsNotSorted = errors.New("agglomerator: thresholds must be non-decreasing")
)
