package waterz

import "errors"

// ErrNilAffinities indicates a nil affinity volume was supplied to
// Agglomerate.
var ErrNilAffinities = errors.New("waterz: affinity volume is nil")
