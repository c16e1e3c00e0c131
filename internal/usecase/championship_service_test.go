package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coachstack/coachstack/internal/domain/championship"
	"github.com/coachstack/coachstack/internal/usecase"
)

func seedHawksChampionship(e *env) {
	e.store.SeedChampionship(
		championship.Championship{ID: "champ-hawks", TeamID: teamHawksID, Name: "Regional Cup", Season: "2026"},
		championship.Fixture{ID: "fix-hawks-1", ChampionshipID: "champ-hawks", Round: 1, Opponent: "Eagles", PlayedAt: time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC)},
	)
}

func TestChampionshipService_TwoHopScoping(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	seedHawksChampionship(e)
	svc := usecase.NewChampionshipService(e.store, e.ids, e.capture)

	t.Run("fixture reachable through the owning tenant", func(t *testing.T) {
		got, err := svc.GetFixture(ctx, hawksContext(), "fix-hawks-1")
		if err != nil {
			t.Fatalf("get fixture: %v", err)
		}
		if got.ChampionshipID != "champ-hawks" {
			t.Fatalf("unexpected fixture: %+v", got)
		}
	})

	t.Run("fixture conflated to not found for another tenant", func(t *testing.T) {
		if _, err := svc.GetFixture(ctx, lionsContext(), "fix-hawks-1"); !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected not found across the chain, got %v", err)
		}
	})

	t.Run("fixture create under a foreign championship is rejected", func(t *testing.T) {
		_, err := svc.CreateFixture(ctx, lionsContext(), "champ-hawks", usecase.FixtureInput{
			Round:    2,
			Opponent: "Lions",
		})
		if !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected not found for foreign parent, got %v", err)
		}

		fixtures, err := svc.ListFixtures(ctx, hawksContext(), "champ-hawks")
		if err != nil {
			t.Fatalf("list fixtures: %v", err)
		}
		if len(fixtures) != 1 {
			t.Fatalf("rejected fixture create leaked a row: %+v", fixtures)
		}
	})

	t.Run("fixture update and delete stay tenant-bound", func(t *testing.T) {
		if _, err := svc.UpdateFixture(ctx, lionsContext(), "fix-hawks-1", usecase.UpdateFixtureInput{Round: 9, Opponent: "X"}); !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected not found on cross-tenant update, got %v", err)
		}
		if err := svc.DeleteFixture(ctx, lionsContext(), "fix-hawks-1"); !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected not found on cross-tenant delete, got %v", err)
		}
	})
}

func TestChampionshipService_CreateWithFixturesIsAtomic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	svc := usecase.NewChampionshipService(e.store, e.ids, e.capture)

	created, err := svc.Create(ctx, lionsContext(), usecase.CreateChampionshipInput{
		Name:   "City League",
		Season: "2026",
		Fixtures: []usecase.FixtureInput{
			{Round: 1, Opponent: "Hawks"},
			{Round: 2, Opponent: "Falcons"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.TeamID != teamLionsID {
		t.Fatalf("expected default team ownership, got %+v", created)
	}

	fixtures, err := svc.ListFixtures(ctx, lionsContext(), created.ID)
	if err != nil {
		t.Fatalf("list fixtures: %v", err)
	}
	if len(fixtures) != 2 {
		t.Fatalf("expected both fixtures persisted, got %+v", fixtures)
	}
}
