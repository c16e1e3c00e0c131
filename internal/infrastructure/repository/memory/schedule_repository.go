package memory

import (
	"context"

	"github.com/coachstack/coachstack/internal/domain/schedule"
	"github.com/coachstack/coachstack/internal/domain/tenant"
)

type ScheduleRepository struct {
	store *Store
}

func (r *ScheduleRepository) List(ctx context.Context, tc tenant.Context) ([]schedule.Schedule, error) {
	if tc.Empty() {
		r.store.denyEmptyScope(ctx, tc, "schedule")
		return nil, nil
	}

	var out []schedule.Schedule
	for _, id := range r.store.scheduleOrder {
		item := r.store.schedules[id]
		if tc.Allows(item.TeamID) {
			out = append(out, cloneSchedule(item))
		}
	}
	return out, nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, tc tenant.Context, scheduleID string) (schedule.Schedule, bool, error) {
	item, ok := r.store.schedules[scheduleID]
	if !ok {
		return schedule.Schedule{}, false, nil
	}
	if !tc.Allows(item.TeamID) {
		r.store.denyOutOfScope(ctx, tc, "schedule", scheduleID, item.TeamID)
		return schedule.Schedule{}, false, nil
	}
	return cloneSchedule(item), true, nil
}

func (r *ScheduleRepository) Create(_ context.Context, item schedule.Schedule) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.store.schedules[item.ID] = cloneSchedule(item)
	r.store.scheduleOrder = append(r.store.scheduleOrder, item.ID)
	return nil
}

func (r *ScheduleRepository) Update(ctx context.Context, tc tenant.Context, scheduleID string, patch schedule.Patch) (schedule.Schedule, bool, error) {
	item, ok, err := r.GetByID(ctx, tc, scheduleID)
	if err != nil || !ok {
		return schedule.Schedule{}, false, err
	}

	item.Title = patch.Title
	item.StartsOn = patch.StartsOn
	r.store.schedules[scheduleID] = cloneSchedule(item)
	return item, true, nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, tc tenant.Context, scheduleID string) (bool, error) {
	_, ok, err := r.GetByID(ctx, tc, scheduleID)
	if err != nil || !ok {
		return false, err
	}

	delete(r.store.schedules, scheduleID)
	r.store.scheduleOrder = removeID(r.store.scheduleOrder, scheduleID)
	return true, nil
}

func (r *ScheduleRepository) AddDay(ctx context.Context, tc tenant.Context, item schedule.Day) (bool, error) {
	teamID, ok := r.store.scheduleTeam(item.ScheduleID)
	if !ok || !tc.Allows(teamID) {
		return false, nil
	}

	parent := r.store.schedules[item.ScheduleID]
	parent.Days = append(cloneDays(parent.Days), item)
	r.store.schedules[parent.ID] = parent
	return true, nil
}

func (r *ScheduleRepository) DeleteDay(ctx context.Context, tc tenant.Context, dayID string) (bool, error) {
	for _, scheduleID := range r.store.scheduleOrder {
		parent := r.store.schedules[scheduleID]
		for i, d := range parent.Days {
			if d.ID != dayID {
				continue
			}
			if !tc.Allows(parent.TeamID) {
				return false, nil
			}
			days := cloneDays(parent.Days)
			parent.Days = append(days[:i], days[i+1:]...)
			r.store.schedules[scheduleID] = parent
			return true, nil
		}
	}
	return false, nil
}

func cloneSchedule(in schedule.Schedule) schedule.Schedule {
	in.Days = cloneDays(in.Days)
	return in
}
