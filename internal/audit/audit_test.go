package audit

import (
	"context"
	"testing"
	"time"
)

func TestCaptureRecorderFiltersDenials(t *testing.T) {
	rec := NewCaptureRecorder()
	rec.Record(context.Background(), Decision{Effect: EffectGrant, Entity: "team", EntityID: "t1"})
	rec.Record(context.Background(), Decision{Effect: EffectDeny, Entity: "player", EntityID: "p1", Reason: "team not in scope"})

	if got := len(rec.Decisions()); got != 2 {
		t.Fatalf("expected 2 decisions, got %d", got)
	}

	denials := rec.Denials()
	if len(denials) != 1 {
		t.Fatalf("expected 1 denial, got %d", len(denials))
	}
	if denials[0].Entity != "player" {
		t.Fatalf("expected player denial, got %s", denials[0].Entity)
	}
}

func TestAsyncRecorderDeliversAllDecisions(t *testing.T) {
	capture := NewCaptureRecorder()
	rec, err := NewAsyncRecorder(capture, 2)
	if err != nil {
		t.Fatalf("create async recorder: %v", err)
	}

	for i := 0; i < 20; i++ {
		rec.Record(context.Background(), Decision{Effect: EffectDeny, Entity: "match"})
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(capture.Decisions()) == 20 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if got := len(capture.Decisions()); got != 20 {
		t.Fatalf("expected 20 delivered decisions, got %d", got)
	}
}

type slowRecorder struct {
	inner *CaptureRecorder
	delay time.Duration
}

func (s *slowRecorder) Record(ctx context.Context, d Decision) {
	time.Sleep(s.delay)
	s.inner.Record(ctx, d)
}

func TestAsyncRecorderCloseWaitsForInFlightWork(t *testing.T) {
	capture := NewCaptureRecorder()
	sink := &slowRecorder{inner: capture, delay: 50 * time.Millisecond}
	rec, err := NewAsyncRecorder(sink, 2)
	if err != nil {
		t.Fatalf("create async recorder: %v", err)
	}

	for i := 0; i < 4; i++ {
		rec.Record(context.Background(), Decision{Effect: EffectDeny, Entity: "team"})
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if got := len(capture.Decisions()); got != 4 {
		t.Fatalf("expected all decisions delivered before close returned, got %d", got)
	}
}
