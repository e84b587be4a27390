package cache

import "errors"

// Sentinel errors for cache construction and lookup.
var (
	// ErrNoHomeDir indicates the default cache directory could not be
	// resolved because the user's home directory is unknown.
	ErrNoHomeDir = errors.New("cache: cannot resolve home directory for default cache location")
)
