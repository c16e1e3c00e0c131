package targets

import (
	"context"

	"github.com/coachstack/coachstack/internal/domain/tenant"
)

// Repository describes statistical target persistence.
type Repository interface {
	List(ctx context.Context, tc tenant.Context) ([]StatisticalTargets, error)
	GetByID(ctx context.Context, tc tenant.Context, id string) (StatisticalTargets, bool, error)
	Create(ctx context.Context, item StatisticalTargets) error
	Update(ctx context.Context, tc tenant.Context, id string, patch Patch) (StatisticalTargets, bool, error)
	Delete(ctx context.Context, tc tenant.Context, id string) (bool, error)
}
