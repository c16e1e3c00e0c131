package player

import (
	"context"
	"time"

	"github.com/coachstack/coachstack/internal/domain/tenant"
)

// Repository describes player persistence. Visibility follows the open
// membership: a player is in scope iff a membership with a nil end date
// points at one of the context's teams.
type Repository interface {
	List(ctx context.Context, tc tenant.Context) ([]Player, error)
	GetByID(ctx context.Context, tc tenant.Context, playerID string) (Player, bool, error)

	// Create persists the player and its initial open membership in one
	// scoped transaction step.
	Create(ctx context.Context, item Player, initial Membership) error
	Update(ctx context.Context, tc tenant.Context, playerID string, patch Patch) (Player, bool, error)
	Delete(ctx context.Context, tc tenant.Context, playerID string) (bool, error)

	// ListMemberships returns the player's membership rows on the context's
	// teams only. Memberships held on foreign teams stay hidden even when the
	// player itself is visible through an open membership.
	ListMemberships(ctx context.Context, tc tenant.Context, playerID string) ([]Membership, error)
	// CloseMembership stamps the open membership of the player on the given
	// team with endDate.
	CloseMembership(ctx context.Context, tc tenant.Context, playerID, teamID string, endDate time.Time) (bool, error)
	// AddMembership reports false when the target team is outside the
	// tenant boundary.
	AddMembership(ctx context.Context, tc tenant.Context, item Membership) (bool, error)
}
