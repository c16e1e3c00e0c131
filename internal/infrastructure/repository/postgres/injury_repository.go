package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coachstack/coachstack/internal/domain/injury"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	qb "github.com/coachstack/coachstack/internal/platform/querybuilder"
)

type injuryTableModel struct {
	ID          string       `db:"id"`
	TeamID      string       `db:"team_id"`
	PlayerID    string       `db:"player_id"`
	Description string       `db:"description"`
	OccurredAt  time.Time    `db:"occurred_at"`
	RecoveredAt sql.NullTime `db:"recovered_at"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

func injuryFromRow(row injuryTableModel) injury.Record {
	return injury.Record{
		ID:          row.ID,
		TeamID:      row.TeamID,
		PlayerID:    row.PlayerID,
		Description: row.Description,
		OccurredAt:  row.OccurredAt,
		RecoveredAt: timePtr(row.RecoveredAt),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

type InjuryRepository struct {
	s *session
}

func (r *InjuryRepository) List(ctx context.Context, tc tenant.Context) ([]injury.Record, error) {
	if tc.Empty() {
		r.s.denyEmptyScope(ctx, tc, "injury")
		return nil, nil
	}
	return r.selectWhere(ctx, teamScope("team_id", tc))
}

func (r *InjuryRepository) ListByPlayer(ctx context.Context, tc tenant.Context, playerID string) ([]injury.Record, error) {
	if tc.Empty() {
		r.s.denyEmptyScope(ctx, tc, "injury")
		return nil, nil
	}
	return r.selectWhere(ctx, qb.Eq("player_id", playerID), teamScope("team_id", tc))
}

func (r *InjuryRepository) GetByID(ctx context.Context, tc tenant.Context, id string) (injury.Record, bool, error) {
	query, args, err := qb.Select("*").From("injuries").
		Where(
			qb.Eq("id", id),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return injury.Record{}, false, fmt.Errorf("build get injury by id query: %w", err)
	}

	var row injuryTableModel
	if err := sqlx.GetContext(ctx, r.s.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return injury.Record{}, false, nil
		}
		return injury.Record{}, false, fmt.Errorf("get injury by id: %w", err)
	}
	return injuryFromRow(row), true, nil
}

func (r *InjuryRepository) Create(ctx context.Context, item injury.Record) error {
	if err := item.Validate(); err != nil {
		return err
	}

	model := injuryTableModel{
		ID:          item.ID,
		TeamID:      item.TeamID,
		PlayerID:    item.PlayerID,
		Description: item.Description,
		OccurredAt:  item.OccurredAt,
		RecoveredAt: nullTime(item.RecoveredAt),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	query, args, err := qb.InsertModel("injuries", model, "")
	if err != nil {
		return fmt.Errorf("build insert injury query: %w", err)
	}
	if _, err := r.s.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert injury: %w", err)
	}
	return nil
}

func (r *InjuryRepository) Update(ctx context.Context, tc tenant.Context, id string, patch injury.Patch) (injury.Record, bool, error) {
	query, args, err := qb.Update("injuries").
		Set("description", patch.Description).
		Set("occurred_at", patch.OccurredAt).
		Set("recovered_at", nullTime(patch.RecoveredAt)).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("id", id),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return injury.Record{}, false, fmt.Errorf("build update injury query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return injury.Record{}, false, fmt.Errorf("update injury: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return injury.Record{}, false, fmt.Errorf("rows affected update injury: %w", err)
	}
	if affected == 0 {
		return injury.Record{}, false, nil
	}

	return r.GetByID(ctx, tc, id)
}

func (r *InjuryRepository) Delete(ctx context.Context, tc tenant.Context, id string) (bool, error) {
	query, args, err := qb.DeleteFrom("injuries").
		Where(
			qb.Eq("id", id),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete injury query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete injury: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete injury: %w", err)
	}
	return affected > 0, nil
}

func (r *InjuryRepository) selectWhere(ctx context.Context, where ...qb.Condition) ([]injury.Record, error) {
	query, args, err := qb.Select("*").From("injuries").
		Where(where...).
		OrderBy("occurred_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list injuries query: %w", err)
	}

	var rows []injuryTableModel
	if err := sqlx.SelectContext(ctx, r.s.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list injuries: %w", err)
	}

	out := make([]injury.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, injuryFromRow(row))
	}
	return out, nil
}
