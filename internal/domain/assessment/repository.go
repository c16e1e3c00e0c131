package assessment

import (
	"context"

	"github.com/coachstack/coachstack/internal/domain/tenant"
)

// Repository describes physical assessment persistence.
type Repository interface {
	List(ctx context.Context, tc tenant.Context) ([]PhysicalAssessment, error)
	ListByPlayer(ctx context.Context, tc tenant.Context, playerID string) ([]PhysicalAssessment, error)
	GetByID(ctx context.Context, tc tenant.Context, id string) (PhysicalAssessment, bool, error)
	Create(ctx context.Context, item PhysicalAssessment) error
	Update(ctx context.Context, tc tenant.Context, id string, patch Patch) (PhysicalAssessment, bool, error)
	Delete(ctx context.Context, tc tenant.Context, id string) (bool, error)
}
