package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coachstack/coachstack/internal/domain/match"
	"github.com/coachstack/coachstack/internal/usecase"
)

func TestMatchService_StatsTwoHopScoping(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	e.store.SeedMatch(match.Match{
		ID:       "match-hawks",
		TeamID:   teamHawksID,
		Opponent: "Eagles",
		PlayedAt: time.Date(2026, 4, 11, 19, 0, 0, 0, time.UTC),
	})
	e.seedRosteredPlayer("player-hawk", teamHawksID)
	svc := usecase.NewMatchService(e.store, e.ids, e.capture)

	if _, err := svc.UpsertTeamStats(ctx, hawksContext(), "match-hawks", usecase.UpsertTeamStatsInput{
		GoalsFor:     2,
		GoalsAgainst: 1,
		Possession:   56,
	}); err != nil {
		t.Fatalf("upsert team stats: %v", err)
	}
	if _, err := svc.UpsertPlayerStats(ctx, hawksContext(), "match-hawks", usecase.UpsertPlayerStatsInput{
		PlayerID: "player-hawk",
		Minutes:  90,
	}); err != nil {
		t.Fatalf("upsert player stats: %v", err)
	}

	t.Run("stats reachable through the owning tenant", func(t *testing.T) {
		stats, err := svc.GetTeamStats(ctx, hawksContext(), "match-hawks")
		if err != nil {
			t.Fatalf("get team stats: %v", err)
		}
		if stats.GoalsFor != 2 || stats.GoalsAgainst != 1 {
			t.Fatalf("unexpected team stats: %+v", stats)
		}

		playerStats, err := svc.ListPlayerStats(ctx, hawksContext(), "match-hawks")
		if err != nil {
			t.Fatalf("list player stats: %v", err)
		}
		if len(playerStats) != 1 || playerStats[0].PlayerID != "player-hawk" {
			t.Fatalf("unexpected player stats: %+v", playerStats)
		}
	})

	t.Run("stats conflated to not found for another tenant", func(t *testing.T) {
		if _, err := svc.GetTeamStats(ctx, lionsContext(), "match-hawks"); !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected not found across the chain, got %v", err)
		}

		playerStats, err := svc.ListPlayerStats(ctx, lionsContext(), "match-hawks")
		if err != nil {
			t.Fatalf("list player stats: %v", err)
		}
		if len(playerStats) != 0 {
			t.Fatalf("foreign player stats leaked: %+v", playerStats)
		}
	})

	t.Run("stats upsert against a foreign match is rejected", func(t *testing.T) {
		_, err := svc.UpsertTeamStats(ctx, lionsContext(), "match-hawks", usecase.UpsertTeamStatsInput{
			GoalsFor:   9,
			Possession: 99,
		})
		if !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected not found for foreign match, got %v", err)
		}

		stats, err := svc.GetTeamStats(ctx, hawksContext(), "match-hawks")
		if err != nil {
			t.Fatalf("get team stats: %v", err)
		}
		if stats.GoalsFor != 2 || stats.Possession != 56 {
			t.Fatalf("rejected upsert overwrote the owning tenant's stats: %+v", stats)
		}

		if _, err := svc.UpsertPlayerStats(ctx, lionsContext(), "match-hawks", usecase.UpsertPlayerStatsInput{
			PlayerID: "player-hawk",
			Minutes:  1,
		}); !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected not found for foreign match, got %v", err)
		}
	})
}

func TestMatchService_CreateRejectsForeignTeam(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	svc := usecase.NewMatchService(e.store, e.ids, e.capture)

	_, err := svc.Create(ctx, lionsContext(), usecase.CreateMatchInput{
		TeamID:   teamHawksID,
		Opponent: "Eagles",
		PlayedAt: time.Date(2026, 5, 2, 19, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	items, err := svc.List(ctx, hawksContext())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("rejected create leaked a row: %+v", items)
	}
}
