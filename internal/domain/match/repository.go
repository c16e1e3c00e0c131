package match

import (
	"context"

	"github.com/coachstack/coachstack/internal/domain/tenant"
)

// Repository describes match persistence. Stat rows are reached through the
// match and authorized by walking match → team.
type Repository interface {
	List(ctx context.Context, tc tenant.Context) ([]Match, error)
	GetByID(ctx context.Context, tc tenant.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, item Match) error
	Update(ctx context.Context, tc tenant.Context, matchID string, patch Patch) (Match, bool, error)
	Delete(ctx context.Context, tc tenant.Context, matchID string) (bool, error)

	GetTeamStats(ctx context.Context, tc tenant.Context, matchID string) (TeamStats, bool, error)
	// Upserts report false when the parent match is absent or outside the
	// tenant boundary.
	UpsertTeamStats(ctx context.Context, tc tenant.Context, item TeamStats) (bool, error)
	ListPlayerStats(ctx context.Context, tc tenant.Context, matchID string) ([]PlayerStats, error)
	UpsertPlayerStats(ctx context.Context, tc tenant.Context, item PlayerStats) (bool, error)
}
