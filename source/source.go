package source

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a named object does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Source resolves dataset names to byte streams.
type Source interface {
	// Open opens the named object for reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
