package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coachstack/coachstack/internal/domain/match"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	qb "github.com/coachstack/coachstack/internal/platform/querybuilder"
)

type MatchRepository struct {
	s *session
}

func (r *MatchRepository) List(ctx context.Context, tc tenant.Context) ([]match.Match, error) {
	if tc.Empty() {
		r.s.denyEmptyScope(ctx, tc, "match")
		return nil, nil
	}

	query, args, err := qb.Select("*").From("matches").
		Where(teamScope("team_id", tc)).
		OrderBy("played_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := sqlx.SelectContext(ctx, r.s.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, tc tenant.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("id", matchID),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, r.s.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	if err := item.Validate(); err != nil {
		return err
	}

	model := matchTableModel{
		ID:        item.ID,
		TeamID:    item.TeamID,
		Opponent:  item.Opponent,
		Location:  item.Location,
		PlayedAt:  item.PlayedAt,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	query, args, err := qb.InsertModel("matches", model, "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.s.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, tc tenant.Context, matchID string, patch match.Patch) (match.Match, bool, error) {
	query, args, err := qb.Update("matches").
		Set("opponent", patch.Opponent).
		Set("location", patch.Location).
		Set("played_at", patch.PlayedAt).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("id", matchID),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build update match query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return match.Match{}, false, fmt.Errorf("update match: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("rows affected update match: %w", err)
	}
	if affected == 0 {
		return match.Match{}, false, nil
	}

	return r.GetByID(ctx, tc, matchID)
}

func (r *MatchRepository) Delete(ctx context.Context, tc tenant.Context, matchID string) (bool, error) {
	query, args, err := qb.DeleteFrom("matches").
		Where(
			qb.Eq("id", matchID),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete match query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete match: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete match: %w", err)
	}
	return affected > 0, nil
}

func (r *MatchRepository) GetTeamStats(ctx context.Context, tc tenant.Context, matchID string) (match.TeamStats, bool, error) {
	query, args, err := qb.Select("*").From("match_team_stats").
		Where(
			qb.Eq("match_id", matchID),
			parentScope("matches", "id", "match_team_stats.match_id", tc),
		).
		ToSQL()
	if err != nil {
		return match.TeamStats{}, false, fmt.Errorf("build get team stats query: %w", err)
	}

	var row teamStatsTableModel
	if err := sqlx.GetContext(ctx, r.s.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.TeamStats{}, false, nil
		}
		return match.TeamStats{}, false, fmt.Errorf("get team stats: %w", err)
	}

	out, err := teamStatsFromRow(row)
	if err != nil {
		return match.TeamStats{}, false, fmt.Errorf("decode team stats metrics: %w", err)
	}
	return out, true, nil
}

func (r *MatchRepository) UpsertTeamStats(ctx context.Context, tc tenant.Context, item match.TeamStats) (bool, error) {
	ok, err := r.matchInScope(ctx, tc, item.MatchID)
	if err != nil || !ok {
		return false, err
	}

	metrics, err := metricsToJSON(item.Metrics)
	if err != nil {
		return false, fmt.Errorf("encode team stats metrics: %w", err)
	}

	model := teamStatsTableModel{
		ID:           item.ID,
		MatchID:      item.MatchID,
		GoalsFor:     item.GoalsFor,
		GoalsAgainst: item.GoalsAgainst,
		Possession:   item.Possession,
		Metrics:      metrics,
	}
	query, args, err := qb.InsertModel("match_team_stats", model, `ON CONFLICT (match_id) DO UPDATE SET
		goals_for = EXCLUDED.goals_for,
		goals_against = EXCLUDED.goals_against,
		possession = EXCLUDED.possession,
		metrics = EXCLUDED.metrics`)
	if err != nil {
		return false, fmt.Errorf("build upsert team stats query: %w", err)
	}
	if _, err := r.s.q.ExecContext(ctx, query, args...); err != nil {
		return false, fmt.Errorf("upsert team stats: %w", err)
	}
	return true, nil
}

func (r *MatchRepository) ListPlayerStats(ctx context.Context, tc tenant.Context, matchID string) ([]match.PlayerStats, error) {
	query, args, err := qb.Select("*").From("match_player_stats").
		Where(
			qb.Eq("match_id", matchID),
			parentScope("matches", "id", "match_player_stats.match_id", tc),
		).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player stats query: %w", err)
	}

	var rows []playerStatsTableModel
	if err := sqlx.SelectContext(ctx, r.s.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list player stats: %w", err)
	}

	out := make([]match.PlayerStats, 0, len(rows))
	for _, row := range rows {
		stats, err := playerStatsFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("decode player stats metrics: %w", err)
		}
		out = append(out, stats)
	}
	return out, nil
}

func (r *MatchRepository) UpsertPlayerStats(ctx context.Context, tc tenant.Context, item match.PlayerStats) (bool, error) {
	ok, err := r.matchInScope(ctx, tc, item.MatchID)
	if err != nil || !ok {
		return false, err
	}

	metrics, err := metricsToJSON(item.Metrics)
	if err != nil {
		return false, fmt.Errorf("encode player stats metrics: %w", err)
	}

	model := playerStatsTableModel{
		ID:       item.ID,
		MatchID:  item.MatchID,
		PlayerID: item.PlayerID,
		Minutes:  item.Minutes,
		Metrics:  metrics,
	}
	query, args, err := qb.InsertModel("match_player_stats", model, `ON CONFLICT (match_id, player_id) DO UPDATE SET
		minutes = EXCLUDED.minutes,
		metrics = EXCLUDED.metrics`)
	if err != nil {
		return false, fmt.Errorf("build upsert player stats query: %w", err)
	}
	if _, err := r.s.q.ExecContext(ctx, query, args...); err != nil {
		return false, fmt.Errorf("upsert player stats: %w", err)
	}
	return true, nil
}

// matchInScope is the pre-write parent check for stat rows: the owning
// match must be visible under the current scope.
func (r *MatchRepository) matchInScope(ctx context.Context, tc tenant.Context, matchID string) (bool, error) {
	query, args, err := qb.Select("id").From("matches").
		Where(
			qb.Eq("id", matchID),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build check match query: %w", err)
	}

	var id string
	if err := sqlx.GetContext(ctx, r.s.q, &id, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check match: %w", err)
	}
	return true, nil
}
