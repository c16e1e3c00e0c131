package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coachstack/coachstack/internal/domain/coach"
	"github.com/coachstack/coachstack/internal/domain/organization"
	qb "github.com/coachstack/coachstack/internal/platform/querybuilder"
)

// Owner rows are identity lookups used by tenant resolution. They carry no
// team scope of their own and no row security policy.

type ownerTableModel struct {
	ID        string `db:"id"`
	AccountID string `db:"account_id"`
	Name      string `db:"name"`
}

type CoachRepository struct {
	s *session
}

func (r *CoachRepository) GetByAccountID(ctx context.Context, accountID string) (coach.Coach, bool, error) {
	query, args, err := qb.Select("id", "account_id", "name").From("coaches").
		Where(qb.Eq("account_id", accountID)).
		ToSQL()
	if err != nil {
		return coach.Coach{}, false, fmt.Errorf("build get coach by account query: %w", err)
	}

	var row ownerTableModel
	if err := sqlx.GetContext(ctx, r.s.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return coach.Coach{}, false, nil
		}
		return coach.Coach{}, false, fmt.Errorf("get coach by account: %w", err)
	}

	return coach.Coach{ID: row.ID, AccountID: row.AccountID, Name: row.Name}, true, nil
}

type OrganizationRepository struct {
	s *session
}

func (r *OrganizationRepository) GetByAccountID(ctx context.Context, accountID string) (organization.Organization, bool, error) {
	query, args, err := qb.Select("id", "account_id", "name").From("organizations").
		Where(qb.Eq("account_id", accountID)).
		ToSQL()
	if err != nil {
		return organization.Organization{}, false, fmt.Errorf("build get organization by account query: %w", err)
	}

	var row ownerTableModel
	if err := sqlx.GetContext(ctx, r.s.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return organization.Organization{}, false, nil
		}
		return organization.Organization{}, false, fmt.Errorf("get organization by account: %w", err)
	}

	return organization.Organization{ID: row.ID, AccountID: row.AccountID, Name: row.Name}, true, nil
}
