package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/panjf2000/ants/v2"
)

// AsyncRecorder hands decisions to a bounded worker pool so accessors never
// block on the sink. Decisions are recorded with a detached context because
// the request context may already be cancelled by the time a worker runs.
type AsyncRecorder struct {
	inner Recorder
	pool  *ants.Pool
}

func NewAsyncRecorder(inner Recorder, workers int) (*AsyncRecorder, error) {
	if workers <= 0 {
		workers = 4
	}
	pool, err := ants.NewPool(workers, ants.WithNonblocking(false))
	if err != nil {
		return nil, fmt.Errorf("create audit worker pool: %w", err)
	}

	return &AsyncRecorder{inner: inner, pool: pool}, nil
}

func (r *AsyncRecorder) Record(_ context.Context, d Decision) {
	if err := r.pool.Submit(func() {
		r.inner.Record(context.Background(), d)
	}); err != nil {
		// Pool released mid-shutdown; fall back to recording inline so the
		// decision is never lost.
		r.inner.Record(context.Background(), d)
	}
}

// Close waits for in-flight decisions to finish before releasing the pool.
// The wait is bounded so shutdown cannot hang on a stuck sink.
func (r *AsyncRecorder) Close() error {
	if err := r.pool.ReleaseTimeout(5 * time.Second); err != nil {
		return fmt.Errorf("release audit worker pool: %w", err)
	}
	return nil
}
