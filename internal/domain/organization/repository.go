package organization

import "context"

// Repository describes organization lookups needed by tenant resolution.
type Repository interface {
	GetByAccountID(ctx context.Context, accountID string) (Organization, bool, error)
}
