package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coachstack/coachstack/internal/domain/injury"
	"github.com/coachstack/coachstack/internal/usecase"
)

func TestInjuryService_TenantScoping(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	e.seedRosteredPlayer("player-hawk", teamHawksID)
	e.store.SeedInjury(injury.Record{
		ID:          "inj-hawks",
		TeamID:      teamHawksID,
		PlayerID:    "player-hawk",
		Description: "Hamstring strain",
		OccurredAt:  time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
	})
	svc := usecase.NewInjuryService(e.store, e.ids, e.capture)

	t.Run("record reachable through the owning tenant", func(t *testing.T) {
		got, err := svc.Get(ctx, hawksContext(), "inj-hawks")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.PlayerID != "player-hawk" {
			t.Fatalf("unexpected record: %+v", got)
		}
	})

	t.Run("record conflated to not found for another tenant", func(t *testing.T) {
		if _, err := svc.Get(ctx, lionsContext(), "inj-hawks"); !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected not found across tenants, got %v", err)
		}
		if _, err := svc.ListByPlayer(ctx, lionsContext(), "player-hawk"); !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected not found for foreign player, got %v", err)
		}
	})

	t.Run("create against a foreign roster is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, lionsContext(), usecase.CreateInjuryInput{
			PlayerID:    "player-hawk",
			Description: "Sprained ankle",
		})
		if !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected not found for unrostered player, got %v", err)
		}

		items, err := svc.ListByPlayer(ctx, hawksContext(), "player-hawk")
		if err != nil {
			t.Fatalf("list by player: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("rejected create leaked a row: %+v", items)
		}
	})
}
