package repositories

import "errors"

// ErrNotFound is returned when a record is absent, or soft-deleted where an
// active record was required. Callers match it with errors.Is.
var ErrNotFound = errors.New("record not found")
