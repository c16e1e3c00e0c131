package memory

import (
	"context"

	"github.com/coachstack/coachstack/internal/domain/championship"
	"github.com/coachstack/coachstack/internal/domain/tenant"
)

type ChampionshipRepository struct {
	store *Store
}

func (r *ChampionshipRepository) List(ctx context.Context, tc tenant.Context) ([]championship.Championship, error) {
	if tc.Empty() {
		r.store.denyEmptyScope(ctx, tc, "championship")
		return nil, nil
	}

	var out []championship.Championship
	for _, id := range r.store.championshipOrder {
		item := r.store.championships[id]
		if tc.Allows(item.TeamID) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *ChampionshipRepository) GetByID(ctx context.Context, tc tenant.Context, id string) (championship.Championship, bool, error) {
	item, ok := r.store.championships[id]
	if !ok {
		return championship.Championship{}, false, nil
	}
	if !tc.Allows(item.TeamID) {
		r.store.denyOutOfScope(ctx, tc, "championship", id, item.TeamID)
		return championship.Championship{}, false, nil
	}
	return item, true, nil
}

func (r *ChampionshipRepository) Create(_ context.Context, item championship.Championship, fixtures []championship.Fixture) error {
	if err := item.Validate(); err != nil {
		return err
	}
	for _, f := range fixtures {
		if err := f.Validate(); err != nil {
			return err
		}
	}

	r.store.championships[item.ID] = item
	r.store.championshipOrder = append(r.store.championshipOrder, item.ID)
	for _, f := range fixtures {
		r.store.fixtures[f.ID] = cloneFixture(f)
		r.store.fixtureOrder = append(r.store.fixtureOrder, f.ID)
	}
	return nil
}

func (r *ChampionshipRepository) Update(ctx context.Context, tc tenant.Context, id string, patch championship.Patch) (championship.Championship, bool, error) {
	item, ok, err := r.GetByID(ctx, tc, id)
	if err != nil || !ok {
		return championship.Championship{}, false, err
	}

	item.Name = patch.Name
	item.Season = patch.Season
	r.store.championships[id] = item
	return item, true, nil
}

func (r *ChampionshipRepository) Delete(ctx context.Context, tc tenant.Context, id string) (bool, error) {
	_, ok, err := r.GetByID(ctx, tc, id)
	if err != nil || !ok {
		return false, err
	}

	delete(r.store.championships, id)
	r.store.championshipOrder = removeID(r.store.championshipOrder, id)
	for _, fixtureID := range copySlice(r.store.fixtureOrder) {
		if r.store.fixtures[fixtureID].ChampionshipID == id {
			delete(r.store.fixtures, fixtureID)
			r.store.fixtureOrder = removeID(r.store.fixtureOrder, fixtureID)
		}
	}
	return true, nil
}

func (r *ChampionshipRepository) ListFixtures(ctx context.Context, tc tenant.Context, championshipID string) ([]championship.Fixture, error) {
	if _, ok, err := r.GetByID(ctx, tc, championshipID); err != nil || !ok {
		return nil, err
	}

	var out []championship.Fixture
	for _, id := range r.store.fixtureOrder {
		item := r.store.fixtures[id]
		if item.ChampionshipID == championshipID {
			out = append(out, cloneFixture(item))
		}
	}
	return out, nil
}

func (r *ChampionshipRepository) GetFixture(ctx context.Context, tc tenant.Context, fixtureID string) (championship.Fixture, bool, error) {
	item, ok := r.store.fixtures[fixtureID]
	if !ok {
		return championship.Fixture{}, false, nil
	}

	teamID, ok := r.store.championshipTeam(item.ChampionshipID)
	if !ok || !tc.Allows(teamID) {
		r.store.denyOutOfScope(ctx, tc, "fixture", fixtureID, teamID)
		return championship.Fixture{}, false, nil
	}
	return cloneFixture(item), true, nil
}

func (r *ChampionshipRepository) CreateFixture(ctx context.Context, tc tenant.Context, item championship.Fixture) (bool, error) {
	if err := item.Validate(); err != nil {
		return false, err
	}

	teamID, ok := r.store.championshipTeam(item.ChampionshipID)
	if !ok || !tc.Allows(teamID) {
		return false, nil
	}

	r.store.fixtures[item.ID] = cloneFixture(item)
	r.store.fixtureOrder = append(r.store.fixtureOrder, item.ID)
	return true, nil
}

func (r *ChampionshipRepository) UpdateFixture(ctx context.Context, tc tenant.Context, fixtureID string, patch championship.FixturePatch) (championship.Fixture, bool, error) {
	item, ok, err := r.GetFixture(ctx, tc, fixtureID)
	if err != nil || !ok {
		return championship.Fixture{}, false, err
	}

	item.Round = patch.Round
	item.Opponent = patch.Opponent
	item.PlayedAt = patch.PlayedAt
	item.HomeScore = cloneIntPtr(patch.HomeScore)
	item.AwayScore = cloneIntPtr(patch.AwayScore)
	r.store.fixtures[fixtureID] = cloneFixture(item)
	return item, true, nil
}

func (r *ChampionshipRepository) DeleteFixture(ctx context.Context, tc tenant.Context, fixtureID string) (bool, error) {
	_, ok, err := r.GetFixture(ctx, tc, fixtureID)
	if err != nil || !ok {
		return false, err
	}

	delete(r.store.fixtures, fixtureID)
	r.store.fixtureOrder = removeID(r.store.fixtureOrder, fixtureID)
	return true, nil
}

func cloneFixture(in championship.Fixture) championship.Fixture {
	in.HomeScore = cloneIntPtr(in.HomeScore)
	in.AwayScore = cloneIntPtr(in.AwayScore)
	return in
}
