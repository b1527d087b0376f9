package db

import "errors"

// ErrNotFound is wrapped by every KVStore implementation to report a
// missing key, so callers can test absence without knowing the engine.
var ErrNotFound = errors.New("key not found")
