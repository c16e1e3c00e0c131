package memory

import (
	"context"

	"github.com/coachstack/coachstack/internal/domain/targets"
	"github.com/coachstack/coachstack/internal/domain/tenant"
)

type TargetsRepository struct {
	store *Store
}

func (r *TargetsRepository) List(ctx context.Context, tc tenant.Context) ([]targets.StatisticalTargets, error) {
	if tc.Empty() {
		r.store.denyEmptyScope(ctx, tc, "targets")
		return nil, nil
	}

	var out []targets.StatisticalTargets
	for _, id := range r.store.targetsOrder {
		item := r.store.targets[id]
		if tc.Allows(item.TeamID) {
			out = append(out, cloneTargets(item))
		}
	}
	return out, nil
}

func (r *TargetsRepository) GetByID(ctx context.Context, tc tenant.Context, id string) (targets.StatisticalTargets, bool, error) {
	item, ok := r.store.targets[id]
	if !ok {
		return targets.StatisticalTargets{}, false, nil
	}
	if !tc.Allows(item.TeamID) {
		r.store.denyOutOfScope(ctx, tc, "targets", id, item.TeamID)
		return targets.StatisticalTargets{}, false, nil
	}
	return cloneTargets(item), true, nil
}

func (r *TargetsRepository) Create(_ context.Context, item targets.StatisticalTargets) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.store.targets[item.ID] = cloneTargets(item)
	r.store.targetsOrder = append(r.store.targetsOrder, item.ID)
	return nil
}

func (r *TargetsRepository) Update(ctx context.Context, tc tenant.Context, id string, patch targets.Patch) (targets.StatisticalTargets, bool, error) {
	item, ok, err := r.GetByID(ctx, tc, id)
	if err != nil || !ok {
		return targets.StatisticalTargets{}, false, err
	}

	item.Position = patch.Position
	item.Season = patch.Season
	item.Values = cloneMetrics(patch.Values)
	r.store.targets[id] = cloneTargets(item)
	return item, true, nil
}

func (r *TargetsRepository) Delete(ctx context.Context, tc tenant.Context, id string) (bool, error) {
	_, ok, err := r.GetByID(ctx, tc, id)
	if err != nil || !ok {
		return false, err
	}

	delete(r.store.targets, id)
	r.store.targetsOrder = removeID(r.store.targetsOrder, id)
	return true, nil
}

func cloneTargets(in targets.StatisticalTargets) targets.StatisticalTargets {
	in.Values = cloneMetrics(in.Values)
	return in
}
