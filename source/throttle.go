package source

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// Throttled wraps a Source and paces reads with a token-bucket limiter.
// All streams opened through it share one limiter, so aggregate read
// throughput stays at or below bytesPerSec.
type Throttled struct {
	src     Source
	limiter *rate.Limiter
}

// NewThrottled creates a Throttled source limited to bytesPerSec.
// bytesPerSec also serves as the burst size.
func NewThrottled(src Source, bytesPerSec int) *Throttled {
	return &Throttled{
		src:     src,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec),
	}
}

// Open opens the named object through the underlying source.
// The returned stream honors cancellation of ctx during paced reads.
func (s *Throttled) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.src.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	return &throttledReader{ctx: ctx, rc: rc, limiter: s.limiter}, nil
}

type throttledReader struct {
	ctx     context.Context
	rc      io.ReadCloser
	limiter *rate.Limiter
}

func (r *throttledReader) Read(p []byte) (int, error) {
	// Cap each read at the burst size so WaitN never exceeds it.
	if burst := r.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}

	n, err := r.rc.Read(p)
	if n > 0 {
		if werr := r.limiter.WaitN(r.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

func (r *throttledReader) Close() error {
	return r.rc.Close()
}
