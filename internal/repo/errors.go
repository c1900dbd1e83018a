package repo

import "errors"

// ErrNotFound is returned when a record is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a uniqueness constraint is violated.
// It is decided here, at the storage boundary, from the driver's typed
// error rather than by callers inspecting error shapes.
var ErrAlreadyExists = errors.New("already exists")
