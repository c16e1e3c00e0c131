package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coachstack/coachstack/internal/domain/schedule"
	"github.com/coachstack/coachstack/internal/usecase"
)

func TestScheduleService_DayScopedThroughParent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	e.store.SeedSchedule(schedule.Schedule{
		ID:       "sched-hawks",
		TeamID:   teamHawksID,
		Title:    "Preseason",
		StartsOn: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		Days: []schedule.Day{
			{ID: "day-hawks-1", ScheduleID: "sched-hawks", Date: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), Activity: "Conditioning"},
		},
	})
	svc := usecase.NewScheduleService(e.store, e.ids, e.capture)

	t.Run("schedule conflated to not found for another tenant", func(t *testing.T) {
		if _, err := svc.Get(ctx, lionsContext(), "sched-hawks"); !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected not found across tenants, got %v", err)
		}
	})

	t.Run("day add under a foreign schedule is rejected", func(t *testing.T) {
		_, err := svc.AddDay(ctx, lionsContext(), "sched-hawks", usecase.ScheduleDayInput{
			Date:     time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC),
			Activity: "Sprints",
		})
		if !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected not found for foreign parent, got %v", err)
		}

		got, err := svc.Get(ctx, hawksContext(), "sched-hawks")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if len(got.Days) != 1 {
			t.Fatalf("rejected day add leaked a row: %+v", got.Days)
		}
	})

	t.Run("day delete stays tenant-bound", func(t *testing.T) {
		if err := svc.DeleteDay(ctx, lionsContext(), "day-hawks-1"); !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected not found on cross-tenant delete, got %v", err)
		}
		if err := svc.DeleteDay(ctx, hawksContext(), "day-hawks-1"); err != nil {
			t.Fatalf("delete day: %v", err)
		}
	})
}

func TestScheduleService_CreateWithDays(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	svc := usecase.NewScheduleService(e.store, e.ids, e.capture)

	created, err := svc.Create(ctx, lionsContext(), usecase.CreateScheduleInput{
		Title:    "Spring Block",
		StartsOn: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Days: []usecase.ScheduleDayInput{
			{Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Activity: "Gym"},
			{Date: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), Activity: "Tactics"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.TeamID != teamLionsID {
		t.Fatalf("expected default team ownership, got %+v", created)
	}

	got, err := svc.Get(ctx, lionsContext(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Days) != 2 {
		t.Fatalf("expected both days persisted, got %+v", got.Days)
	}
}
