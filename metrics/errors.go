package metrics

import "errors"

// ErrShapeMismatch indicates the two label volumes being compared do not
// share the same spatial shape.
var ErrShapeMismatch = errors.New("metrics: label volumes have mismatched shapes")
