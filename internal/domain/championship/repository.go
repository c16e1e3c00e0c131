package championship

import (
	"context"

	"github.com/coachstack/coachstack/internal/domain/tenant"
)

// Repository describes championship and fixture persistence. Fixture
// operations authorize by walking fixture → championship → team.
type Repository interface {
	List(ctx context.Context, tc tenant.Context) ([]Championship, error)
	GetByID(ctx context.Context, tc tenant.Context, id string) (Championship, bool, error)
	// Create persists the championship and any initial fixtures atomically.
	Create(ctx context.Context, item Championship, fixtures []Fixture) error
	Update(ctx context.Context, tc tenant.Context, id string, patch Patch) (Championship, bool, error)
	Delete(ctx context.Context, tc tenant.Context, id string) (bool, error)

	ListFixtures(ctx context.Context, tc tenant.Context, championshipID string) ([]Fixture, error)
	GetFixture(ctx context.Context, tc tenant.Context, fixtureID string) (Fixture, bool, error)
	// CreateFixture reports false when the parent championship is absent or
	// outside the tenant boundary.
	CreateFixture(ctx context.Context, tc tenant.Context, item Fixture) (bool, error)
	UpdateFixture(ctx context.Context, tc tenant.Context, fixtureID string, patch FixturePatch) (Fixture, bool, error)
	DeleteFixture(ctx context.Context, tc tenant.Context, fixtureID string) (bool, error)
}
