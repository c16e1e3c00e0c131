package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coachstack/coachstack/internal/domain/team"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	qb "github.com/coachstack/coachstack/internal/platform/querybuilder"
)

type TeamRepository struct {
	s *session
}

func (r *TeamRepository) List(ctx context.Context, tc tenant.Context) ([]team.Team, error) {
	if tc.Empty() {
		r.s.denyEmptyScope(ctx, tc, "team")
		return nil, nil
	}

	query, args, err := qb.Select("*").From("teams").
		Where(teamScope("id", tc)).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := sqlx.SelectContext(ctx, r.s.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, tc tenant.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("id", teamID),
			teamScope("id", tc),
		).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := sqlx.GetContext(ctx, r.s.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}
	return teamFromRow(row), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	if err := item.Validate(); err != nil {
		return err
	}

	model := teamInsertModel{
		ID:             item.ID,
		Name:           item.Name,
		Category:       item.Category,
		Season:         item.Season,
		CoachID:        nullString(item.CoachID),
		OrganizationID: nullString(item.OrganizationID),
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
	query, args, err := qb.InsertModel("teams", model, "")
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}
	if _, err := r.s.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, tc tenant.Context, teamID string, patch team.Patch) (team.Team, bool, error) {
	query, args, err := qb.Update("teams").
		Set("name", patch.Name).
		Set("category", patch.Category).
		Set("season", patch.Season).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("id", teamID),
			teamScope("id", tc),
		).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build update team query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return team.Team{}, false, fmt.Errorf("update team: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("rows affected update team: %w", err)
	}
	if affected == 0 {
		return team.Team{}, false, nil
	}

	return r.GetByID(ctx, tc, teamID)
}

func (r *TeamRepository) Delete(ctx context.Context, tc tenant.Context, teamID string) (bool, error) {
	query, args, err := qb.DeleteFrom("teams").
		Where(
			qb.Eq("id", teamID),
			teamScope("id", tc),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete team query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete team: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete team: %w", err)
	}
	return affected > 0, nil
}

// ListIDsOwned queries by the owner columns instead of the team-id set; it
// is what produces that set during tenant resolution.
func (r *TeamRepository) ListIDsOwned(ctx context.Context, tc tenant.Context) ([]string, error) {
	builder := qb.Select("id").From("teams")
	switch {
	case tc.CoachID != "":
		builder = builder.Where(qb.Eq("coach_id", tc.CoachID))
	case tc.OrganizationID != "":
		builder = builder.Where(qb.Eq("organization_id", tc.OrganizationID))
	default:
		return nil, nil
	}

	query, args, err := builder.OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list owned team ids query: %w", err)
	}

	var ids []string
	if err := sqlx.SelectContext(ctx, r.s.q, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list owned team ids: %w", err)
	}
	return ids, nil
}
