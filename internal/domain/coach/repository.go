package coach

import "context"

// Repository describes coach lookups needed by tenant resolution.
type Repository interface {
	GetByAccountID(ctx context.Context, accountID string) (Coach, bool, error)
}
