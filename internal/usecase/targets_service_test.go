package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/coachstack/coachstack/internal/domain/targets"
	"github.com/coachstack/coachstack/internal/usecase"
)

func TestTargetsService_TenantScoping(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	e.store.SeedTargets(targets.StatisticalTargets{
		ID:       "tgt-hawks",
		TeamID:   teamHawksID,
		Position: "Forward",
		Season:   "2026",
		Values:   map[string]float64{"goals": 12},
	})
	svc := usecase.NewTargetsService(e.store, e.ids, e.capture)

	t.Run("targets reachable through the owning tenant", func(t *testing.T) {
		got, err := svc.Get(ctx, hawksContext(), "tgt-hawks")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Values["goals"] != 12 {
			t.Fatalf("unexpected targets: %+v", got)
		}
	})

	t.Run("targets conflated to not found for another tenant", func(t *testing.T) {
		if _, err := svc.Get(ctx, lionsContext(), "tgt-hawks"); !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected not found across tenants, got %v", err)
		}
		if _, err := svc.Update(ctx, lionsContext(), "tgt-hawks", usecase.UpdateTargetsInput{Position: "Forward"}); !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected not found on cross-tenant update, got %v", err)
		}

		items, err := svc.List(ctx, lionsContext())
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("foreign targets leaked into list: %+v", items)
		}
	})

	t.Run("create against a foreign team is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, lionsContext(), usecase.CreateTargetsInput{
			TeamID:   teamHawksID,
			Position: "Keeper",
		})
		if !errors.Is(err, usecase.ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}

		items, err := svc.List(ctx, hawksContext())
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("rejected create leaked a row: %+v", items)
		}
	})
}
