package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coachstack/coachstack/internal/domain/schedule"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	qb "github.com/coachstack/coachstack/internal/platform/querybuilder"
)

type ScheduleRepository struct {
	s *session
}

func (r *ScheduleRepository) List(ctx context.Context, tc tenant.Context) ([]schedule.Schedule, error) {
	if tc.Empty() {
		r.s.denyEmptyScope(ctx, tc, "schedule")
		return nil, nil
	}

	query, args, err := qb.Select("*").From("schedules").
		Where(teamScope("team_id", tc)).
		OrderBy("starts_on", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list schedules query: %w", err)
	}

	var rows []scheduleTableModel
	if err := sqlx.SelectContext(ctx, r.s.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]any, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	daysBySchedule, err := r.listDays(ctx, qb.In("schedule_id", ids))
	if err != nil {
		return nil, err
	}

	out := make([]schedule.Schedule, 0, len(rows))
	for _, row := range rows {
		out = append(out, scheduleFromRow(row, daysBySchedule[row.ID]))
	}
	return out, nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, tc tenant.Context, scheduleID string) (schedule.Schedule, bool, error) {
	query, args, err := qb.Select("*").From("schedules").
		Where(
			qb.Eq("id", scheduleID),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return schedule.Schedule{}, false, fmt.Errorf("build get schedule by id query: %w", err)
	}

	var row scheduleTableModel
	if err := sqlx.GetContext(ctx, r.s.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return schedule.Schedule{}, false, nil
		}
		return schedule.Schedule{}, false, fmt.Errorf("get schedule by id: %w", err)
	}

	daysBySchedule, err := r.listDays(ctx, qb.Eq("schedule_id", scheduleID))
	if err != nil {
		return schedule.Schedule{}, false, err
	}
	return scheduleFromRow(row, daysBySchedule[scheduleID]), true, nil
}

func (r *ScheduleRepository) Create(ctx context.Context, item schedule.Schedule) error {
	if err := item.Validate(); err != nil {
		return err
	}

	model := scheduleTableModel{
		ID:        item.ID,
		TeamID:    item.TeamID,
		Title:     item.Title,
		StartsOn:  item.StartsOn,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	query, args, err := qb.InsertModel("schedules", model, "")
	if err != nil {
		return fmt.Errorf("build insert schedule query: %w", err)
	}
	if _, err := r.s.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert schedule: %w", err)
	}

	for _, d := range item.Days {
		dayQuery, dayArgs, err := qb.InsertModel("schedule_days", dayToInsert(d), "")
		if err != nil {
			return fmt.Errorf("build insert schedule day query: %w", err)
		}
		if _, err := r.s.q.ExecContext(ctx, dayQuery, dayArgs...); err != nil {
			return fmt.Errorf("insert schedule day: %w", err)
		}
	}
	return nil
}

func (r *ScheduleRepository) Update(ctx context.Context, tc tenant.Context, scheduleID string, patch schedule.Patch) (schedule.Schedule, bool, error) {
	query, args, err := qb.Update("schedules").
		Set("title", patch.Title).
		Set("starts_on", patch.StartsOn).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("id", scheduleID),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return schedule.Schedule{}, false, fmt.Errorf("build update schedule query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return schedule.Schedule{}, false, fmt.Errorf("update schedule: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return schedule.Schedule{}, false, fmt.Errorf("rows affected update schedule: %w", err)
	}
	if affected == 0 {
		return schedule.Schedule{}, false, nil
	}

	return r.GetByID(ctx, tc, scheduleID)
}

func (r *ScheduleRepository) Delete(ctx context.Context, tc tenant.Context, scheduleID string) (bool, error) {
	query, args, err := qb.DeleteFrom("schedules").
		Where(
			qb.Eq("id", scheduleID),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete schedule query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete schedule: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete schedule: %w", err)
	}
	return affected > 0, nil
}

func (r *ScheduleRepository) AddDay(ctx context.Context, tc tenant.Context, item schedule.Day) (bool, error) {
	parentQuery, parentArgs, err := qb.Select("id").From("schedules").
		Where(
			qb.Eq("id", item.ScheduleID),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build check schedule query: %w", err)
	}
	var parentID string
	if err := sqlx.GetContext(ctx, r.s.q, &parentID, parentQuery, parentArgs...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check schedule: %w", err)
	}

	query, args, err := qb.InsertModel("schedule_days", dayToInsert(item), "")
	if err != nil {
		return false, fmt.Errorf("build insert schedule day query: %w", err)
	}
	if _, err := r.s.q.ExecContext(ctx, query, args...); err != nil {
		return false, fmt.Errorf("insert schedule day: %w", err)
	}
	return true, nil
}

func (r *ScheduleRepository) DeleteDay(ctx context.Context, tc tenant.Context, dayID string) (bool, error) {
	query, args, err := qb.DeleteFrom("schedule_days").
		Where(
			qb.Eq("schedule_days.id", dayID),
			parentScope("schedules", "id", "schedule_days.schedule_id", tc),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete schedule day query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete schedule day: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete schedule day: %w", err)
	}
	return affected > 0, nil
}

func (r *ScheduleRepository) listDays(ctx context.Context, where qb.Condition) (map[string][]schedule.Day, error) {
	query, args, err := qb.Select("*").From("schedule_days").
		Where(where).
		OrderBy("date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list schedule days query: %w", err)
	}

	var rows []scheduleDayTableModel
	if err := sqlx.SelectContext(ctx, r.s.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list schedule days: %w", err)
	}

	out := make(map[string][]schedule.Day, len(rows))
	for _, row := range rows {
		out[row.ScheduleID] = append(out[row.ScheduleID], dayFromRow(row))
	}
	return out, nil
}
