package memory

import (
	"context"

	"github.com/coachstack/coachstack/internal/domain/coach"
	"github.com/coachstack/coachstack/internal/domain/organization"
)

// CoachRepository and OrganizationRepository back tenant resolution only;
// owner rows are identity lookups, not tenant-scoped data.
type CoachRepository struct {
	store *Store
}

func (r *CoachRepository) GetByAccountID(_ context.Context, accountID string) (coach.Coach, bool, error) {
	for _, c := range r.store.coaches {
		if c.AccountID == accountID {
			return c, true, nil
		}
	}
	return coach.Coach{}, false, nil
}

type OrganizationRepository struct {
	store *Store
}

func (r *OrganizationRepository) GetByAccountID(_ context.Context, accountID string) (organization.Organization, bool, error) {
	for _, o := range r.store.organizations {
		if o.AccountID == accountID {
			return o, true, nil
		}
	}
	return organization.Organization{}, false, nil
}
