package memory

import (
	"context"
	"time"

	"github.com/coachstack/coachstack/internal/domain/player"
	"github.com/coachstack/coachstack/internal/domain/tenant"
)

type PlayerRepository struct {
	store *Store
}

func (r *PlayerRepository) List(ctx context.Context, tc tenant.Context) ([]player.Player, error) {
	if tc.Empty() {
		r.store.denyEmptyScope(ctx, tc, "player")
		return nil, nil
	}

	var out []player.Player
	for _, id := range r.store.playerOrder {
		if r.store.playerVisible(tc, id) {
			out = append(out, clonePlayer(r.store.players[id]))
		}
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, tc tenant.Context, playerID string) (player.Player, bool, error) {
	item, ok := r.store.players[playerID]
	if !ok {
		return player.Player{}, false, nil
	}
	if !r.store.playerVisible(tc, playerID) {
		r.store.denyOutOfScope(ctx, tc, "player", playerID, "")
		return player.Player{}, false, nil
	}
	return clonePlayer(item), true, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player, initial player.Membership) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.store.players[item.ID] = clonePlayer(item)
	r.store.playerOrder = append(r.store.playerOrder, item.ID)
	r.store.memberships[initial.ID] = cloneMembership(initial)
	r.store.membershipOrder = append(r.store.membershipOrder, initial.ID)
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, tc tenant.Context, playerID string, patch player.Patch) (player.Player, bool, error) {
	item, ok, err := r.GetByID(ctx, tc, playerID)
	if err != nil || !ok {
		return player.Player{}, false, err
	}

	item.Name = patch.Name
	item.Position = patch.Position
	item.BirthDate = cloneTimePtr(patch.BirthDate)
	r.store.players[playerID] = clonePlayer(item)
	return item, true, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, tc tenant.Context, playerID string) (bool, error) {
	_, ok, err := r.GetByID(ctx, tc, playerID)
	if err != nil || !ok {
		return false, err
	}

	delete(r.store.players, playerID)
	r.store.playerOrder = removeID(r.store.playerOrder, playerID)
	for _, id := range copySlice(r.store.membershipOrder) {
		if r.store.memberships[id].PlayerID == playerID {
			delete(r.store.memberships, id)
			r.store.membershipOrder = removeID(r.store.membershipOrder, id)
		}
	}
	return true, nil
}

func (r *PlayerRepository) ListMemberships(ctx context.Context, tc tenant.Context, playerID string) ([]player.Membership, error) {
	if !r.store.playerVisible(tc, playerID) {
		return nil, nil
	}

	var out []player.Membership
	for _, id := range r.store.membershipOrder {
		m := r.store.memberships[id]
		if m.PlayerID != playerID || !tc.Allows(m.TeamID) {
			continue
		}
		out = append(out, cloneMembership(m))
	}
	return out, nil
}

func (r *PlayerRepository) CloseMembership(_ context.Context, tc tenant.Context, playerID, teamID string, endDate time.Time) (bool, error) {
	if !tc.Allows(teamID) {
		return false, nil
	}

	m, ok := r.store.openMembership(playerID, teamID)
	if !ok {
		return false, nil
	}

	m.EndDate = &endDate
	r.store.memberships[m.ID] = m
	return true, nil
}

func (r *PlayerRepository) AddMembership(ctx context.Context, tc tenant.Context, item player.Membership) (bool, error) {
	if !tc.Allows(item.TeamID) {
		r.store.denyOutOfScope(ctx, tc, "membership", item.ID, item.TeamID)
		return false, nil
	}
	if _, ok := r.store.teams[item.TeamID]; !ok {
		return false, nil
	}

	r.store.memberships[item.ID] = cloneMembership(item)
	r.store.membershipOrder = append(r.store.membershipOrder, item.ID)
	return true, nil
}

func clonePlayer(in player.Player) player.Player {
	in.BirthDate = cloneTimePtr(in.BirthDate)
	return in
}

func cloneMembership(in player.Membership) player.Membership {
	in.EndDate = cloneTimePtr(in.EndDate)
	return in
}
