// Package cache memoizes parsed and validated scoring.Tree values on disk,
// keyed by a content hash of their source expression (spec §5, §6).
//
// The engine has no template-compilation step to amortize (the source
// system this was distilled from JIT-compiles a C++ template per scoring
// expression), so the cached artifact here is simply the already-parsed,
// already-validated expression tree, gob-encoded. The cache still earns its
// keep by skipping re-parsing and re-validating a scoring expression across
// repeated runs of the same pipeline, and its entries are guarded by an
// advisory exclusive file lock keyed to the expression's content hash so
// concurrent callers never race on the same cache entry (spec §5's "process-
// wide scoring-function cache ... guarded against concurrent build").
package cache
