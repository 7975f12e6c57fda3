package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no document exists under the requested key.
var ErrNotFound = errors.New("document not found")

// Document is one named record in the documents table.
type Document struct {
	Key       string
	Value     string
	Revision  int64 // bumped on every overwrite
	UpdatedAt time.Time
}
