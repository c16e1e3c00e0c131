package memory

import (
	"context"

	"github.com/coachstack/coachstack/internal/domain/team"
	"github.com/coachstack/coachstack/internal/domain/tenant"
)

type TeamRepository struct {
	store *Store
}

func (r *TeamRepository) List(ctx context.Context, tc tenant.Context) ([]team.Team, error) {
	if tc.Empty() {
		r.store.denyEmptyScope(ctx, tc, "team")
		return nil, nil
	}

	out := make([]team.Team, 0, len(tc.TeamIDs))
	for _, id := range r.store.teamOrder {
		item := r.store.teams[id]
		if tc.Allows(item.ID) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, tc tenant.Context, teamID string) (team.Team, bool, error) {
	item, ok := r.store.teams[teamID]
	if !ok {
		return team.Team{}, false, nil
	}
	if !tc.Allows(item.ID) {
		r.store.denyOutOfScope(ctx, tc, "team", teamID, item.ID)
		return team.Team{}, false, nil
	}
	return item, true, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.store.teams[item.ID] = item
	r.store.teamOrder = append(r.store.teamOrder, item.ID)
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, tc tenant.Context, teamID string, patch team.Patch) (team.Team, bool, error) {
	item, ok, err := r.GetByID(ctx, tc, teamID)
	if err != nil || !ok {
		return team.Team{}, false, err
	}

	item.Name = patch.Name
	item.Category = patch.Category
	item.Season = patch.Season
	r.store.teams[teamID] = item
	return item, true, nil
}

func (r *TeamRepository) Delete(ctx context.Context, tc tenant.Context, teamID string) (bool, error) {
	_, ok, err := r.GetByID(ctx, tc, teamID)
	if err != nil || !ok {
		return false, err
	}

	delete(r.store.teams, teamID)
	r.store.teamOrder = removeID(r.store.teamOrder, teamID)
	return true, nil
}

func (r *TeamRepository) ListIDsOwned(_ context.Context, tc tenant.Context) ([]string, error) {
	var out []string
	for _, id := range r.store.teamOrder {
		item := r.store.teams[id]
		switch {
		case tc.CoachID != "" && item.CoachID == tc.CoachID:
			out = append(out, item.ID)
		case tc.OrganizationID != "" && item.OrganizationID == tc.OrganizationID:
			out = append(out, item.ID)
		}
	}
	return out, nil
}
