package repository

import "errors"

// ErrNotFound is returned when an id-targeted read, update or delete
// matches zero rows. Callers use errors.Is to distinguish it from
// genuine store failures.
var ErrNotFound = errors.New("not found")
