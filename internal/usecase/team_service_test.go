package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/coachstack/coachstack/internal/domain/tenant"
	"github.com/coachstack/coachstack/internal/usecase"
)

func TestTeamService_ListIsolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	svc := usecase.NewTeamService(e.store, e.ids, e.capture)

	lions, err := svc.List(ctx, lionsContext())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lions) != 1 || lions[0].ID != teamLionsID {
		t.Fatalf("unexpected teams for lions coach: %+v", lions)
	}

	hawks, err := svc.List(ctx, hawksContext())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(hawks) != 1 || hawks[0].ID != teamHawksID {
		t.Fatalf("unexpected teams for hawks coach: %+v", hawks)
	}
}

func TestTeamService_GetConflatesOutOfScope(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	svc := usecase.NewTeamService(e.store, e.ids, e.capture)

	if _, err := svc.Get(ctx, lionsContext(), teamHawksID); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected not found for foreign team, got %v", err)
	}
	if _, err := svc.Get(ctx, lionsContext(), "team-missing"); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected not found for missing team, got %v", err)
	}

	denials := e.capture.Denials()
	if len(denials) != 1 || denials[0].Entity != "team" || denials[0].EntityID != teamHawksID {
		t.Fatalf("expected one deny decision for the foreign row, got %+v", denials)
	}
}

func TestTeamService_CreateOwnerFromContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("owner comes from resolved context", func(t *testing.T) {
		e := newEnv()
		svc := usecase.NewTeamService(e.store, e.ids, e.capture)

		created, err := svc.Create(ctx, lionsContext(), usecase.CreateTeamInput{Name: "Lions U15"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.CoachID != coachLionsID || created.OrganizationID != "" {
			t.Fatalf("unexpected owner on created team: %+v", created)
		}
	})

	t.Run("caller-supplied foreign owner is rejected", func(t *testing.T) {
		e := newEnv()
		svc := usecase.NewTeamService(e.store, e.ids, e.capture)

		_, err := svc.Create(ctx, lionsContext(), usecase.CreateTeamInput{
			Name:         "Hijacked",
			OwnerCoachID: coachHawksID,
		})
		if !errors.Is(err, usecase.ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
		if len(e.capture.Denials()) != 1 {
			t.Fatalf("expected one deny decision, got %+v", e.capture.Denials())
		}

		teams, err := svc.List(ctx, lionsContext())
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(teams) != 1 {
			t.Fatalf("rejected create must persist nothing, got %+v", teams)
		}
	})

	t.Run("unresolved principal cannot create", func(t *testing.T) {
		e := newEnv()
		svc := usecase.NewTeamService(e.store, e.ids, e.capture)

		_, err := svc.Create(ctx, tenant.Context{}, usecase.CreateTeamInput{Name: "Orphan"})
		if !errors.Is(err, usecase.ErrTenantMisconfigured) {
			t.Fatalf("expected tenant misconfigured, got %v", err)
		}
	})
}

func TestTeamService_UpdateNeverTouchesOwner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	svc := usecase.NewTeamService(e.store, e.ids, e.capture)

	updated, err := svc.Update(ctx, lionsContext(), teamLionsID, usecase.UpdateTeamInput{Name: "Lions Renamed", Season: "2026"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Lions Renamed" || updated.Season != "2026" {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.CoachID != coachLionsID {
		t.Fatalf("owner changed on update: %+v", updated)
	}

	if _, err := svc.Update(ctx, hawksContext(), teamLionsID, usecase.UpdateTeamInput{Name: "Stolen"}); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected not found for cross-tenant update, got %v", err)
	}
}

func TestTeamService_EmptyScopeFailsClosed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	svc := usecase.NewTeamService(e.store, e.ids, e.capture)

	// Owner branch resolved, zero teams.
	tc := tenant.ForCoach("coach-new", nil)

	teams, err := svc.List(ctx, tc)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("empty scope must list nothing, got %+v", teams)
	}
	if len(e.capture.Denials()) != 1 {
		t.Fatalf("expected deny decision for empty scope, got %+v", e.capture.Denials())
	}
}
