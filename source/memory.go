package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
)

// Bytes is an in-memory Source keyed by object name.
// Useful for tests and embedded data.
type Bytes map[string][]byte

// Open returns a reader over the named entry.
func (s Bytes) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}
