package scoring

import "errors"

// Sentinel errors for scoring-function parsing and validation.
var (
	// ErrParse indicates malformed scoring-function grammar (bad tokens,
	// mismatched angle brackets, a missing or out-of-range argument).
	ErrParse = errors.New("scoring: parse error")

	// ErrUnsupportedOperator indicates a grammar name that names no known
	// leaf or combinator.
	ErrUnsupportedOperator = errors.New("scoring: unsupported operator")

	// ErrConflictingAggregations indicates a tree requests both a top-k and
	// a histogram aggregation on the same edge; only one partial-vector
	// representation is maintained per edge, so these cannot coexist.
	ErrConflictingAggregations = errors.New("scoring: conflicting aggregation requirements")
)
