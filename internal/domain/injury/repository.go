package injury

import (
	"context"

	"github.com/coachstack/coachstack/internal/domain/tenant"
)

// Repository describes injury record persistence.
type Repository interface {
	List(ctx context.Context, tc tenant.Context) ([]Record, error)
	ListByPlayer(ctx context.Context, tc tenant.Context, playerID string) ([]Record, error)
	GetByID(ctx context.Context, tc tenant.Context, id string) (Record, bool, error)
	Create(ctx context.Context, item Record) error
	Update(ctx context.Context, tc tenant.Context, id string, patch Patch) (Record, bool, error)
	Delete(ctx context.Context, tc tenant.Context, id string) (bool, error)
}
