package memory

import (
	"context"

	"github.com/coachstack/coachstack/internal/domain/match"
	"github.com/coachstack/coachstack/internal/domain/tenant"
)

type MatchRepository struct {
	store *Store
}

func (r *MatchRepository) List(ctx context.Context, tc tenant.Context) ([]match.Match, error) {
	if tc.Empty() {
		r.store.denyEmptyScope(ctx, tc, "match")
		return nil, nil
	}

	var out []match.Match
	for _, id := range r.store.matchOrder {
		item := r.store.matches[id]
		if tc.Allows(item.TeamID) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, tc tenant.Context, matchID string) (match.Match, bool, error) {
	item, ok := r.store.matches[matchID]
	if !ok {
		return match.Match{}, false, nil
	}
	if !tc.Allows(item.TeamID) {
		r.store.denyOutOfScope(ctx, tc, "match", matchID, item.TeamID)
		return match.Match{}, false, nil
	}
	return item, true, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.store.matches[item.ID] = item
	r.store.matchOrder = append(r.store.matchOrder, item.ID)
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, tc tenant.Context, matchID string, patch match.Patch) (match.Match, bool, error) {
	item, ok, err := r.GetByID(ctx, tc, matchID)
	if err != nil || !ok {
		return match.Match{}, false, err
	}

	item.Opponent = patch.Opponent
	item.Location = patch.Location
	item.PlayedAt = patch.PlayedAt
	r.store.matches[matchID] = item
	return item, true, nil
}

func (r *MatchRepository) Delete(ctx context.Context, tc tenant.Context, matchID string) (bool, error) {
	_, ok, err := r.GetByID(ctx, tc, matchID)
	if err != nil || !ok {
		return false, err
	}

	delete(r.store.matches, matchID)
	r.store.matchOrder = removeID(r.store.matchOrder, matchID)
	delete(r.store.teamStats, matchID)
	for _, id := range copySlice(r.store.playerStatOrder) {
		if r.store.playerStats[id].MatchID == matchID {
			delete(r.store.playerStats, id)
			r.store.playerStatOrder = removeID(r.store.playerStatOrder, id)
		}
	}
	return true, nil
}

func (r *MatchRepository) GetTeamStats(ctx context.Context, tc tenant.Context, matchID string) (match.TeamStats, bool, error) {
	if _, ok, err := r.GetByID(ctx, tc, matchID); err != nil || !ok {
		return match.TeamStats{}, false, err
	}

	item, ok := r.store.teamStats[matchID]
	if !ok {
		return match.TeamStats{}, false, nil
	}
	return cloneTeamStats(item), true, nil
}

func (r *MatchRepository) UpsertTeamStats(ctx context.Context, tc tenant.Context, item match.TeamStats) (bool, error) {
	teamID, ok := r.store.matchTeam(item.MatchID)
	if !ok || !tc.Allows(teamID) {
		return false, nil
	}

	if existing, ok := r.store.teamStats[item.MatchID]; ok {
		item.ID = existing.ID
	}
	r.store.teamStats[item.MatchID] = cloneTeamStats(item)
	return true, nil
}

func (r *MatchRepository) ListPlayerStats(ctx context.Context, tc tenant.Context, matchID string) ([]match.PlayerStats, error) {
	if _, ok, err := r.GetByID(ctx, tc, matchID); err != nil || !ok {
		return nil, err
	}

	var out []match.PlayerStats
	for _, id := range r.store.playerStatOrder {
		item := r.store.playerStats[id]
		if item.MatchID == matchID {
			out = append(out, clonePlayerStats(item))
		}
	}
	return out, nil
}

func (r *MatchRepository) UpsertPlayerStats(ctx context.Context, tc tenant.Context, item match.PlayerStats) (bool, error) {
	teamID, ok := r.store.matchTeam(item.MatchID)
	if !ok || !tc.Allows(teamID) {
		return false, nil
	}

	for _, id := range r.store.playerStatOrder {
		existing := r.store.playerStats[id]
		if existing.MatchID == item.MatchID && existing.PlayerID == item.PlayerID {
			item.ID = existing.ID
			r.store.playerStats[id] = clonePlayerStats(item)
			return true, nil
		}
	}

	r.store.playerStats[item.ID] = clonePlayerStats(item)
	r.store.playerStatOrder = append(r.store.playerStatOrder, item.ID)
	return true, nil
}

func cloneTeamStats(in match.TeamStats) match.TeamStats {
	in.Metrics = cloneMetrics(in.Metrics)
	return in
}

func clonePlayerStats(in match.PlayerStats) match.PlayerStats {
	in.Metrics = cloneMetrics(in.Metrics)
	return in
}
