package audit

import (
	"context"

	"github.com/coachstack/coachstack/internal/platform/logging"
)

// Effect classifies an authorization decision.
type Effect string

const (
	EffectGrant Effect = "grant"
	EffectDeny  Effect = "deny"
)

// Decision is one authorization outcome at an accessor boundary. Every read
// filter, ownership check, and create-side team verification emits exactly
// one Decision through the injected Recorder.
type Decision struct {
	Effect         Effect
	Entity         string
	EntityID       string
	TeamID         string
	CoachID        string
	OrganizationID string
	Reason         string
}

// Recorder receives authorization decisions. Implementations must be safe
// for concurrent use.
type Recorder interface {
	Record(ctx context.Context, d Decision)
}

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Decision) {}

// LogRecorder emits decisions as structured log events. Grants log at debug,
// denials at info: denials are the signal operators page on.
type LogRecorder struct {
	logger *logging.Logger
}

func NewLogRecorder(logger *logging.Logger) *LogRecorder {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) Record(ctx context.Context, d Decision) {
	fields := []any{
		"effect", string(d.Effect),
		"entity", d.Entity,
		"entity_id", d.EntityID,
		"team_id", d.TeamID,
		"coach_id", d.CoachID,
		"organization_id", d.OrganizationID,
		"reason", d.Reason,
	}

	if d.Effect == EffectDeny {
		r.logger.InfoContext(ctx, "authorization denied", fields...)
		return
	}
	r.logger.DebugContext(ctx, "authorization granted", fields...)
}
