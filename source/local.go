package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// Local implements Source using the local file system.
type Local struct {
	root string
}

// NewLocal creates a new Local source rooted at the given directory.
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Open opens the named file for reading. A missing file satisfies
// errors.Is(err, ErrNotFound).
func (s *Local) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Open(filepath.Join(s.root, name))
}
