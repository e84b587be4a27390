package affinity

import "errors"

// Sentinel errors for affinity/label volume construction and validation.
var (
	// ErrNonPositiveShape indicates a dimension (D, H, or W) was <= 0.
	ErrNonPositiveShape = errors.New("affinity: depth, height and width must all be positive")

	// ErrLengthMismatch indicates the backing slice's length does not match
	// the declared shape.
	ErrLengthMismatch = errors.New("affinity: data length does not match declared shape")

	// ErrNaNValue indicates an affinity value was NaN, which has no defined
	// clamped behavior.
	ErrNaNValue = errors.New("affinity: value is NaN")

	// ErrShapeMismatch indicates two volumes that must share spatial shape
	// (e.g. an affinity volume and a precomputed fragment volume) do not.
	ErrShapeMismatch = errors.New("affinity: volumes do not share a spatial shape")

	// ErrThresholdOrder indicates aff_threshold_low > aff_threshold_high.
	ErrThresholdOrder = errors.New("affinity: aff_threshold_low must be <= aff_threshold_high")

	// ErrThresholdRange indicates a threshold fell outside [0, 1].
	ErrThresholdRange = errors.New("affinity: thresholds must lie in [0, 1]")
)
