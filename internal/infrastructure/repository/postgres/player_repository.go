package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coachstack/coachstack/internal/domain/player"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	qb "github.com/coachstack/coachstack/internal/platform/querybuilder"
)

type PlayerRepository struct {
	s *session
}

func (r *PlayerRepository) List(ctx context.Context, tc tenant.Context) ([]player.Player, error) {
	if tc.Empty() {
		r.s.denyEmptyScope(ctx, tc, "player")
		return nil, nil
	}

	query, args, err := qb.Select("*").From("players").
		Where(membershipScope("players.id", tc)).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := sqlx.SelectContext(ctx, r.s.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, tc tenant.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("players.id", playerID),
			membershipScope("players.id", tc),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player by id query: %w", err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, r.s.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player, initial player.Membership) error {
	if err := item.Validate(); err != nil {
		return err
	}

	model := playerTableModel{
		ID:        item.ID,
		Name:      item.Name,
		Position:  item.Position,
		BirthDate: nullTime(item.BirthDate),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	query, args, err := qb.InsertModel("players", model, "")
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}
	if _, err := r.s.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}

	memQuery, memArgs, err := qb.InsertModel("player_memberships", membershipToInsert(initial), "")
	if err != nil {
		return fmt.Errorf("build insert membership query: %w", err)
	}
	if _, err := r.s.q.ExecContext(ctx, memQuery, memArgs...); err != nil {
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, tc tenant.Context, playerID string, patch player.Patch) (player.Player, bool, error) {
	query, args, err := qb.Update("players").
		Set("name", patch.Name).
		Set("position", patch.Position).
		Set("birth_date", nullTime(patch.BirthDate)).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("players.id", playerID),
			membershipScope("players.id", tc),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build update player query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return player.Player{}, false, fmt.Errorf("update player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("rows affected update player: %w", err)
	}
	if affected == 0 {
		return player.Player{}, false, nil
	}

	return r.GetByID(ctx, tc, playerID)
}

func (r *PlayerRepository) Delete(ctx context.Context, tc tenant.Context, playerID string) (bool, error) {
	query, args, err := qb.DeleteFrom("players").
		Where(
			qb.Eq("players.id", playerID),
			membershipScope("players.id", tc),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete player: %w", err)
	}
	return affected > 0, nil
}

func (r *PlayerRepository) ListMemberships(ctx context.Context, tc tenant.Context, playerID string) ([]player.Membership, error) {
	query, args, err := qb.Select("*").From("player_memberships").
		Where(
			qb.Eq("player_memberships.player_id", playerID),
			teamScope("player_memberships.team_id", tc),
		).
		OrderBy("start_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list memberships query: %w", err)
	}

	var rows []membershipTableModel
	if err := sqlx.SelectContext(ctx, r.s.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}

	out := make([]player.Membership, 0, len(rows))
	for _, row := range rows {
		out = append(out, membershipFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) CloseMembership(ctx context.Context, tc tenant.Context, playerID, teamID string, endDate time.Time) (bool, error) {
	query, args, err := qb.Update("player_memberships").
		Set("end_date", sql.NullTime{Time: endDate, Valid: true}).
		Where(
			qb.Eq("player_id", playerID),
			qb.Eq("team_id", teamID),
			qb.IsNull("end_date"),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build close membership query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("close membership: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected close membership: %w", err)
	}
	return affected > 0, nil
}

func (r *PlayerRepository) AddMembership(ctx context.Context, tc tenant.Context, item player.Membership) (bool, error) {
	if !tc.Allows(item.TeamID) {
		r.s.denyOutOfScope(ctx, tc, "membership", item.ID)
		return false, nil
	}

	// The target team must still be visible; a deleted team is conflated
	// with an out-of-scope one.
	teamQuery, teamArgs, err := qb.Select("id").From("teams").
		Where(
			qb.Eq("id", item.TeamID),
			teamScope("id", tc),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build check team query: %w", err)
	}
	var teamID string
	if err := sqlx.GetContext(ctx, r.s.q, &teamID, teamQuery, teamArgs...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check team: %w", err)
	}

	query, args, err := qb.InsertModel("player_memberships", membershipToInsert(item), "")
	if err != nil {
		return false, fmt.Errorf("build insert membership query: %w", err)
	}
	if _, err := r.s.q.ExecContext(ctx, query, args...); err != nil {
		return false, fmt.Errorf("insert membership: %w", err)
	}
	return true, nil
}
