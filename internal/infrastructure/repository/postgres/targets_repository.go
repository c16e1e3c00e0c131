package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coachstack/coachstack/internal/domain/targets"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	qb "github.com/coachstack/coachstack/internal/platform/querybuilder"
)

type targetsTableModel struct {
	ID        string    `db:"id"`
	TeamID    string    `db:"team_id"`
	Position  string    `db:"position"`
	Season    string    `db:"season"`
	Values    []byte    `db:"target_values"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func targetsFromRow(row targetsTableModel) (targets.StatisticalTargets, error) {
	values, err := metricsFromJSON(row.Values)
	if err != nil {
		return targets.StatisticalTargets{}, fmt.Errorf("decode target values: %w", err)
	}
	return targets.StatisticalTargets{
		ID:        row.ID,
		TeamID:    row.TeamID,
		Position:  row.Position,
		Season:    row.Season,
		Values:    values,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

type TargetsRepository struct {
	s *session
}

func (r *TargetsRepository) List(ctx context.Context, tc tenant.Context) ([]targets.StatisticalTargets, error) {
	if tc.Empty() {
		r.s.denyEmptyScope(ctx, tc, "targets")
		return nil, nil
	}

	query, args, err := qb.Select("*").From("statistical_targets").
		Where(teamScope("team_id", tc)).
		OrderBy("season", "position", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list targets query: %w", err)
	}

	var rows []targetsTableModel
	if err := sqlx.SelectContext(ctx, r.s.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}

	out := make([]targets.StatisticalTargets, 0, len(rows))
	for _, row := range rows {
		item, err := targetsFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *TargetsRepository) GetByID(ctx context.Context, tc tenant.Context, id string) (targets.StatisticalTargets, bool, error) {
	query, args, err := qb.Select("*").From("statistical_targets").
		Where(
			qb.Eq("id", id),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return targets.StatisticalTargets{}, false, fmt.Errorf("build get targets by id query: %w", err)
	}

	var row targetsTableModel
	if err := sqlx.GetContext(ctx, r.s.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return targets.StatisticalTargets{}, false, nil
		}
		return targets.StatisticalTargets{}, false, fmt.Errorf("get targets by id: %w", err)
	}

	item, err := targetsFromRow(row)
	if err != nil {
		return targets.StatisticalTargets{}, false, err
	}
	return item, true, nil
}

func (r *TargetsRepository) Create(ctx context.Context, item targets.StatisticalTargets) error {
	if err := item.Validate(); err != nil {
		return err
	}

	values, err := metricsToJSON(item.Values)
	if err != nil {
		return fmt.Errorf("encode target values: %w", err)
	}
	model := targetsTableModel{
		ID:        item.ID,
		TeamID:    item.TeamID,
		Position:  item.Position,
		Season:    item.Season,
		Values:    values,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	query, args, err := qb.InsertModel("statistical_targets", model, "")
	if err != nil {
		return fmt.Errorf("build insert targets query: %w", err)
	}
	if _, err := r.s.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert targets: %w", err)
	}
	return nil
}

func (r *TargetsRepository) Update(ctx context.Context, tc tenant.Context, id string, patch targets.Patch) (targets.StatisticalTargets, bool, error) {
	values, err := metricsToJSON(patch.Values)
	if err != nil {
		return targets.StatisticalTargets{}, false, fmt.Errorf("encode target values: %w", err)
	}

	query, args, err := qb.Update("statistical_targets").
		Set("position", patch.Position).
		Set("season", patch.Season).
		Set("target_values", values).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("id", id),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return targets.StatisticalTargets{}, false, fmt.Errorf("build update targets query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return targets.StatisticalTargets{}, false, fmt.Errorf("update targets: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return targets.StatisticalTargets{}, false, fmt.Errorf("rows affected update targets: %w", err)
	}
	if affected == 0 {
		return targets.StatisticalTargets{}, false, nil
	}

	return r.GetByID(ctx, tc, id)
}

func (r *TargetsRepository) Delete(ctx context.Context, tc tenant.Context, id string) (bool, error) {
	query, args, err := qb.DeleteFrom("statistical_targets").
		Where(
			qb.Eq("id", id),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete targets query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete targets: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete targets: %w", err)
	}
	return affected > 0, nil
}
