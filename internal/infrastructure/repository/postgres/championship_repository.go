package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coachstack/coachstack/internal/domain/championship"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	qb "github.com/coachstack/coachstack/internal/platform/querybuilder"
)

type ChampionshipRepository struct {
	s *session
}

func (r *ChampionshipRepository) List(ctx context.Context, tc tenant.Context) ([]championship.Championship, error) {
	if tc.Empty() {
		r.s.denyEmptyScope(ctx, tc, "championship")
		return nil, nil
	}

	query, args, err := qb.Select("*").From("championships").
		Where(teamScope("team_id", tc)).
		OrderBy("season", "name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list championships query: %w", err)
	}

	var rows []championshipTableModel
	if err := sqlx.SelectContext(ctx, r.s.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list championships: %w", err)
	}

	out := make([]championship.Championship, 0, len(rows))
	for _, row := range rows {
		out = append(out, championshipFromRow(row))
	}
	return out, nil
}

func (r *ChampionshipRepository) GetByID(ctx context.Context, tc tenant.Context, id string) (championship.Championship, bool, error) {
	query, args, err := qb.Select("*").From("championships").
		Where(
			qb.Eq("id", id),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return championship.Championship{}, false, fmt.Errorf("build get championship by id query: %w", err)
	}

	var row championshipTableModel
	if err := sqlx.GetContext(ctx, r.s.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return championship.Championship{}, false, nil
		}
		return championship.Championship{}, false, fmt.Errorf("get championship by id: %w", err)
	}
	return championshipFromRow(row), true, nil
}

func (r *ChampionshipRepository) Create(ctx context.Context, item championship.Championship, fixtures []championship.Fixture) error {
	if err := item.Validate(); err != nil {
		return err
	}

	model := championshipTableModel{
		ID:        item.ID,
		TeamID:    item.TeamID,
		Name:      item.Name,
		Season:    item.Season,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	query, args, err := qb.InsertModel("championships", model, "")
	if err != nil {
		return fmt.Errorf("build insert championship query: %w", err)
	}
	if _, err := r.s.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert championship: %w", err)
	}

	for _, f := range fixtures {
		if err := f.Validate(); err != nil {
			return err
		}
		fxQuery, fxArgs, err := qb.InsertModel("fixtures", fixtureToInsert(f), "")
		if err != nil {
			return fmt.Errorf("build insert fixture query: %w", err)
		}
		if _, err := r.s.q.ExecContext(ctx, fxQuery, fxArgs...); err != nil {
			return fmt.Errorf("insert fixture: %w", err)
		}
	}
	return nil
}

func (r *ChampionshipRepository) Update(ctx context.Context, tc tenant.Context, id string, patch championship.Patch) (championship.Championship, bool, error) {
	query, args, err := qb.Update("championships").
		Set("name", patch.Name).
		Set("season", patch.Season).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("id", id),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return championship.Championship{}, false, fmt.Errorf("build update championship query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return championship.Championship{}, false, fmt.Errorf("update championship: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return championship.Championship{}, false, fmt.Errorf("rows affected update championship: %w", err)
	}
	if affected == 0 {
		return championship.Championship{}, false, nil
	}

	return r.GetByID(ctx, tc, id)
}

func (r *ChampionshipRepository) Delete(ctx context.Context, tc tenant.Context, id string) (bool, error) {
	query, args, err := qb.DeleteFrom("championships").
		Where(
			qb.Eq("id", id),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete championship query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete championship: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete championship: %w", err)
	}
	return affected > 0, nil
}

func (r *ChampionshipRepository) ListFixtures(ctx context.Context, tc tenant.Context, championshipID string) ([]championship.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(
			qb.Eq("fixtures.championship_id", championshipID),
			parentScope("championships", "id", "fixtures.championship_id", tc),
		).
		OrderBy("round", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fixtures query: %w", err)
	}

	var rows []fixtureTableModel
	if err := sqlx.SelectContext(ctx, r.s.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	out := make([]championship.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixtureFromRow(row))
	}
	return out, nil
}

func (r *ChampionshipRepository) GetFixture(ctx context.Context, tc tenant.Context, fixtureID string) (championship.Fixture, bool, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(
			qb.Eq("fixtures.id", fixtureID),
			parentScope("championships", "id", "fixtures.championship_id", tc),
		).
		ToSQL()
	if err != nil {
		return championship.Fixture{}, false, fmt.Errorf("build get fixture by id query: %w", err)
	}

	var row fixtureTableModel
	if err := sqlx.GetContext(ctx, r.s.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return championship.Fixture{}, false, nil
		}
		return championship.Fixture{}, false, fmt.Errorf("get fixture by id: %w", err)
	}
	return fixtureFromRow(row), true, nil
}

func (r *ChampionshipRepository) CreateFixture(ctx context.Context, tc tenant.Context, item championship.Fixture) (bool, error) {
	if err := item.Validate(); err != nil {
		return false, err
	}

	// The parent championship must be visible under the current scope
	// before the child row is written.
	if _, ok, err := r.GetByID(ctx, tc, item.ChampionshipID); err != nil || !ok {
		return false, err
	}

	query, args, err := qb.InsertModel("fixtures", fixtureToInsert(item), "")
	if err != nil {
		return false, fmt.Errorf("build insert fixture query: %w", err)
	}
	if _, err := r.s.q.ExecContext(ctx, query, args...); err != nil {
		return false, fmt.Errorf("insert fixture: %w", err)
	}
	return true, nil
}

func (r *ChampionshipRepository) UpdateFixture(ctx context.Context, tc tenant.Context, fixtureID string, patch championship.FixturePatch) (championship.Fixture, bool, error) {
	query, args, err := qb.Update("fixtures").
		Set("round", patch.Round).
		Set("opponent", patch.Opponent).
		Set("played_at", patch.PlayedAt).
		Set("home_score", nullInt(patch.HomeScore)).
		Set("away_score", nullInt(patch.AwayScore)).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("fixtures.id", fixtureID),
			parentScope("championships", "id", "fixtures.championship_id", tc),
		).
		ToSQL()
	if err != nil {
		return championship.Fixture{}, false, fmt.Errorf("build update fixture query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return championship.Fixture{}, false, fmt.Errorf("update fixture: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return championship.Fixture{}, false, fmt.Errorf("rows affected update fixture: %w", err)
	}
	if affected == 0 {
		return championship.Fixture{}, false, nil
	}

	return r.GetFixture(ctx, tc, fixtureID)
}

func (r *ChampionshipRepository) DeleteFixture(ctx context.Context, tc tenant.Context, fixtureID string) (bool, error) {
	query, args, err := qb.DeleteFrom("fixtures").
		Where(
			qb.Eq("fixtures.id", fixtureID),
			parentScope("championships", "id", "fixtures.championship_id", tc),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete fixture query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete fixture: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete fixture: %w", err)
	}
	return affected > 0, nil
}
