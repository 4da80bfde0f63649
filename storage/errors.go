package storage

import "errors"

// ErrStorageUnavailable means the embedded database could not be opened.
// Fatal for persistence, never fatal for the site: callers fall back to
// in-memory defaults.
var ErrStorageUnavailable = errors.New("storage unavailable")
