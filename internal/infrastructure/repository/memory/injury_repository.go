package memory

import (
	"context"

	"github.com/coachstack/coachstack/internal/domain/injury"
	"github.com/coachstack/coachstack/internal/domain/tenant"
)

type InjuryRepository struct {
	store *Store
}

func (r *InjuryRepository) List(ctx context.Context, tc tenant.Context) ([]injury.Record, error) {
	if tc.Empty() {
		r.store.denyEmptyScope(ctx, tc, "injury")
		return nil, nil
	}

	var out []injury.Record
	for _, id := range r.store.injuryOrder {
		item := r.store.injuries[id]
		if tc.Allows(item.TeamID) {
			out = append(out, cloneInjury(item))
		}
	}
	return out, nil
}

func (r *InjuryRepository) ListByPlayer(ctx context.Context, tc tenant.Context, playerID string) ([]injury.Record, error) {
	if tc.Empty() {
		r.store.denyEmptyScope(ctx, tc, "injury")
		return nil, nil
	}

	var out []injury.Record
	for _, id := range r.store.injuryOrder {
		item := r.store.injuries[id]
		if item.PlayerID == playerID && tc.Allows(item.TeamID) {
			out = append(out, cloneInjury(item))
		}
	}
	return out, nil
}

func (r *InjuryRepository) GetByID(ctx context.Context, tc tenant.Context, id string) (injury.Record, bool, error) {
	item, ok := r.store.injuries[id]
	if !ok {
		return injury.Record{}, false, nil
	}
	if !tc.Allows(item.TeamID) {
		r.store.denyOutOfScope(ctx, tc, "injury", id, item.TeamID)
		return injury.Record{}, false, nil
	}
	return cloneInjury(item), true, nil
}

func (r *InjuryRepository) Create(_ context.Context, item injury.Record) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.store.injuries[item.ID] = cloneInjury(item)
	r.store.injuryOrder = append(r.store.injuryOrder, item.ID)
	return nil
}

func (r *InjuryRepository) Update(ctx context.Context, tc tenant.Context, id string, patch injury.Patch) (injury.Record, bool, error) {
	item, ok, err := r.GetByID(ctx, tc, id)
	if err != nil || !ok {
		return injury.Record{}, false, err
	}

	item.Description = patch.Description
	item.OccurredAt = patch.OccurredAt
	item.RecoveredAt = cloneTimePtr(patch.RecoveredAt)
	r.store.injuries[id] = cloneInjury(item)
	return item, true, nil
}

func (r *InjuryRepository) Delete(ctx context.Context, tc tenant.Context, id string) (bool, error) {
	_, ok, err := r.GetByID(ctx, tc, id)
	if err != nil || !ok {
		return false, err
	}

	delete(r.store.injuries, id)
	r.store.injuryOrder = removeID(r.store.injuryOrder, id)
	return true, nil
}

func cloneInjury(in injury.Record) injury.Record {
	in.RecoveredAt = cloneTimePtr(in.RecoveredAt)
	return in
}
