package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/coachstack/coachstack/internal/audit"
	"github.com/coachstack/coachstack/internal/domain/schedule"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	"github.com/coachstack/coachstack/internal/platform/id"
)

type ScheduleDayInput struct {
	Date     time.Time
	Activity string `validate:"required,max=120"`
	Notes    string `validate:"max=500"`
}

type CreateScheduleInput struct {
	TeamID   string
	Title    string `validate:"required,max=120"`
	StartsOn time.Time
	Days     []ScheduleDayInput `validate:"dive"`
}

type UpdateScheduleInput struct {
	Title    string `validate:"required,max=120"`
	StartsOn time.Time
}

type ScheduleService struct {
	uow      UnitOfWork
	ids      id.Generator
	recorder audit.Recorder

	now func() time.Time
}

func NewScheduleService(uow UnitOfWork, ids id.Generator, recorder audit.Recorder) *ScheduleService {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &ScheduleService{uow: uow, ids: ids, recorder: recorder, now: time.Now}
}

func (s *ScheduleService) List(ctx context.Context, tc tenant.Context) ([]schedule.Schedule, error) {
	var out []schedule.Schedule
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		items, err := repos.Schedules.List(ctx, tc)
		if err != nil {
			return fmt.Errorf("list schedules: %w", err)
		}
		out = items
		return nil
	})
	return out, err
}

func (s *ScheduleService) Get(ctx context.Context, tc tenant.Context, scheduleID string) (schedule.Schedule, error) {
	var out schedule.Schedule
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Schedules.GetByID(ctx, tc, scheduleID)
		if err != nil {
			return fmt.Errorf("get schedule by id: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: schedule=%s", ErrNotFound, scheduleID)
		}
		out = item
		return nil
	})
	return out, err
}

// Create persists the schedule and every day entry in one scoped
// transaction; a failure on any day row leaves nothing behind.
func (s *ScheduleService) Create(ctx context.Context, tc tenant.Context, in CreateScheduleInput) (schedule.Schedule, error) {
	if err := validateInput(in); err != nil {
		return schedule.Schedule{}, err
	}

	teamID, err := authorizeTeamRef(ctx, s.recorder, tc, "schedule", in.TeamID)
	if err != nil {
		return schedule.Schedule{}, err
	}

	scheduleID, err := s.ids.NewID()
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("generate schedule id: %w", err)
	}

	now := s.now()
	item := schedule.Schedule{
		ID:        scheduleID,
		TeamID:    teamID,
		Title:     in.Title,
		StartsOn:  in.StartsOn,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, day := range in.Days {
		dayID, err := s.ids.NewID()
		if err != nil {
			return schedule.Schedule{}, fmt.Errorf("generate schedule day id: %w", err)
		}
		item.Days = append(item.Days, schedule.Day{
			ID:         dayID,
			ScheduleID: scheduleID,
			Date:       day.Date,
			Activity:   day.Activity,
			Notes:      day.Notes,
		})
	}

	err = s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		if err := repos.Schedules.Create(ctx, item); err != nil {
			return fmt.Errorf("create schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return schedule.Schedule{}, err
	}
	return item, nil
}

func (s *ScheduleService) Update(ctx context.Context, tc tenant.Context, scheduleID string, in UpdateScheduleInput) (schedule.Schedule, error) {
	if err := validateInput(in); err != nil {
		return schedule.Schedule{}, err
	}

	patch := schedule.Patch{Title: in.Title, StartsOn: in.StartsOn}

	var out schedule.Schedule
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Schedules.Update(ctx, tc, scheduleID, patch)
		if err != nil {
			return fmt.Errorf("update schedule: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: schedule=%s", ErrNotFound, scheduleID)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *ScheduleService) Delete(ctx context.Context, tc tenant.Context, scheduleID string) error {
	return s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		ok, err := repos.Schedules.Delete(ctx, tc, scheduleID)
		if err != nil {
			return fmt.Errorf("delete schedule: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: schedule=%s", ErrNotFound, scheduleID)
		}
		return nil
	})
}

func (s *ScheduleService) AddDay(ctx context.Context, tc tenant.Context, scheduleID string, in ScheduleDayInput) (schedule.Day, error) {
	if err := validateInput(in); err != nil {
		return schedule.Day{}, err
	}

	dayID, err := s.ids.NewID()
	if err != nil {
		return schedule.Day{}, fmt.Errorf("generate schedule day id: %w", err)
	}

	item := schedule.Day{
		ID:         dayID,
		ScheduleID: scheduleID,
		Date:       in.Date,
		Activity:   in.Activity,
		Notes:      in.Notes,
	}

	err = s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		ok, err := repos.Schedules.AddDay(ctx, tc, item)
		if err != nil {
			return fmt.Errorf("add schedule day: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: schedule=%s", ErrNotFound, scheduleID)
		}
		return nil
	})
	if err != nil {
		return schedule.Day{}, err
	}
	return item, nil
}

func (s *ScheduleService) DeleteDay(ctx context.Context, tc tenant.Context, dayID string) error {
	return s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		ok, err := repos.Schedules.DeleteDay(ctx, tc, dayID)
		if err != nil {
			return fmt.Errorf("delete schedule day: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: schedule day=%s", ErrNotFound, dayID)
		}
		return nil
	})
}
