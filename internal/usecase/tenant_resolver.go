package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/coachstack/coachstack/internal/domain/tenant"
	"github.com/coachstack/coachstack/internal/platform/logging"
)

// TenantResolver turns an authenticated principal into the request's
// tenant context: the owner branch that matched plus the closed team-id set
// it holds. An unlinked principal resolves to an empty context that
// authorizes nothing; only store faults are errors.
type TenantResolver struct {
	uow    UnitOfWork
	logger *logging.Logger
}

func NewTenantResolver(uow UnitOfWork, logger *logging.Logger) *TenantResolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &TenantResolver{uow: uow, logger: logger}
}

func (r *TenantResolver) Resolve(ctx context.Context, principal tenant.Principal) (tenant.Context, error) {
	accountID := strings.TrimSpace(principal.AccountID)
	if accountID == "" {
		return tenant.Context{}, nil
	}

	owner, err := r.lookupOwner(ctx, accountID)
	if err != nil {
		return tenant.Context{}, err
	}
	if owner.Unresolved() {
		r.logger.DebugContext(ctx, "principal matched no tenant owner", "account_id", accountID)
		return tenant.Context{}, nil
	}

	// Second scoped pass: the owner identity is now pinned into the
	// transaction state, so the owner-keyed team query passes both
	// enforcement layers.
	var teamIDs []string
	err = r.uow.RunScoped(ctx, owner, func(ctx context.Context, repos *Repositories) error {
		ids, err := repos.Teams.ListIDsOwned(ctx, owner)
		if err != nil {
			return fmt.Errorf("list owned team ids: %w", err)
		}
		teamIDs = ids
		return nil
	})
	if err != nil {
		return tenant.Context{}, err
	}

	if owner.CoachID != "" {
		return tenant.ForCoach(owner.CoachID, teamIDs), nil
	}
	return tenant.ForOrganization(owner.OrganizationID, teamIDs), nil
}

// lookupOwner checks the coach branch first, then the organization branch.
// It runs under an empty context: owner tables are identity lookups, not
// tenant data.
func (r *TenantResolver) lookupOwner(ctx context.Context, accountID string) (tenant.Context, error) {
	var owner tenant.Context
	err := r.uow.RunScoped(ctx, tenant.Context{}, func(ctx context.Context, repos *Repositories) error {
		c, ok, err := repos.Coaches.GetByAccountID(ctx, accountID)
		if err != nil {
			return fmt.Errorf("get coach by account: %w", err)
		}
		if ok {
			owner = tenant.Context{CoachID: c.ID}
			return nil
		}

		org, ok, err := repos.Organizations.GetByAccountID(ctx, accountID)
		if err != nil {
			return fmt.Errorf("get organization by account: %w", err)
		}
		if ok {
			owner = tenant.Context{OrganizationID: org.ID}
		}
		return nil
	})
	if err != nil {
		return tenant.Context{}, err
	}
	return owner, nil
}
