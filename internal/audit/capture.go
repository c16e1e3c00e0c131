package audit

import (
	"context"
	"sync"
)

// CaptureRecorder retains every decision in memory so tests can assert on
// authorization outcomes instead of parsing log output.
type CaptureRecorder struct {
	mu        sync.Mutex
	decisions []Decision
}

func NewCaptureRecorder() *CaptureRecorder {
	return &CaptureRecorder{}
}

func (r *CaptureRecorder) Record(_ context.Context, d Decision) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decisions = append(r.decisions, d)
}

// Decisions returns a copy of everything recorded so far.
func (r *CaptureRecorder) Decisions() []Decision {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Decision, len(r.decisions))
	copy(out, r.decisions)
	return out
}

// Denials returns only the deny decisions.
func (r *CaptureRecorder) Denials() []Decision {
	var out []Decision
	for _, d := range r.Decisions() {
		if d.Effect == EffectDeny {
			out = append(out, d)
		}
	}
	return out
}

// Reset clears the captured decisions.
func (r *CaptureRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decisions = nil
}
