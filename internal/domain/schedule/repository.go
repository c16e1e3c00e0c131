package schedule

import (
	"context"

	"github.com/coachstack/coachstack/internal/domain/tenant"
)

// Repository describes schedule persistence. Day rows are authorized by
// walking day → schedule → team.
type Repository interface {
	List(ctx context.Context, tc tenant.Context) ([]Schedule, error)
	GetByID(ctx context.Context, tc tenant.Context, scheduleID string) (Schedule, bool, error)
	// Create persists the schedule and its day rows atomically.
	Create(ctx context.Context, item Schedule) error
	Update(ctx context.Context, tc tenant.Context, scheduleID string, patch Patch) (Schedule, bool, error)
	Delete(ctx context.Context, tc tenant.Context, scheduleID string) (bool, error)

	// AddDay reports false when the parent schedule is absent or outside
	// the tenant boundary.
	AddDay(ctx context.Context, tc tenant.Context, item Day) (bool, error)
	DeleteDay(ctx context.Context, tc tenant.Context, dayID string) (bool, error)
}
