package team

import (
	"context"

	"github.com/coachstack/coachstack/internal/domain/tenant"
)

// Repository describes team persistence. Every method takes the resolved
// tenant context and re-applies the team-id predicate itself; it never
// relies on the storage-side policy alone.
type Repository interface {
	List(ctx context.Context, tc tenant.Context) ([]Team, error)
	GetByID(ctx context.Context, tc tenant.Context, teamID string) (Team, bool, error)
	Create(ctx context.Context, item Team) error
	Update(ctx context.Context, tc tenant.Context, teamID string, patch Patch) (Team, bool, error)
	Delete(ctx context.Context, tc tenant.Context, teamID string) (bool, error)

	// ListIDsOwned returns the ids of every team owned by the context's
	// coach or organization. It is the one query keyed on the owner columns
	// rather than the team-id set, because it is what produces that set.
	ListIDsOwned(ctx context.Context, tc tenant.Context) ([]string, error)
}
