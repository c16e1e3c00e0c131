package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coachstack/coachstack/internal/domain/coach"
	"github.com/coachstack/coachstack/internal/domain/player"
	"github.com/coachstack/coachstack/internal/domain/team"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	"github.com/coachstack/coachstack/internal/usecase"
)

func newScopedStore(t *testing.T) (*Store, tenant.Context) {
	t.Helper()

	store := NewStore(nil)
	store.SeedCoach(coach.Coach{ID: "coach-1", AccountID: "acct-1", Name: "Coach"})
	store.SeedTeam(team.Team{ID: "team-1", Name: "First", CoachID: "coach-1"})
	return store, tenant.ForCoach("coach-1", []string{"team-1"})
}

func TestStore_RunScopedRollsBackOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, tc := newScopedStore(t)
	boom := errors.New("boom")

	err := store.RunScoped(ctx, tc, func(ctx context.Context, repos *usecase.Repositories) error {
		item := player.Player{ID: "player-1", Name: "Rolled Back"}
		initial := player.Membership{ID: "mem-1", PlayerID: "player-1", TeamID: "team-1", StartDate: time.Now()}
		if err := repos.Players.Create(ctx, item, initial); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the fn error to propagate, got %v", err)
	}

	err = store.RunScoped(ctx, tc, func(ctx context.Context, repos *usecase.Repositories) error {
		items, err := repos.Players.List(ctx, tc)
		if err != nil {
			return err
		}
		if len(items) != 0 {
			t.Fatalf("write survived a failed scoped run: %+v", items)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("run scoped: %v", err)
	}
}

func TestStore_RunScopedCommitsOnSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, tc := newScopedStore(t)

	err := store.RunScoped(ctx, tc, func(ctx context.Context, repos *usecase.Repositories) error {
		item := player.Player{ID: "player-1", Name: "Kept"}
		initial := player.Membership{ID: "mem-1", PlayerID: "player-1", TeamID: "team-1", StartDate: time.Now()}
		return repos.Players.Create(ctx, item, initial)
	})
	if err != nil {
		t.Fatalf("run scoped: %v", err)
	}

	err = store.RunScoped(ctx, tc, func(ctx context.Context, repos *usecase.Repositories) error {
		got, ok, err := repos.Players.GetByID(ctx, tc, "player-1")
		if err != nil {
			return err
		}
		if !ok || got.Name != "Kept" {
			t.Fatalf("expected committed player, got ok=%v %+v", ok, got)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("run scoped: %v", err)
	}
}

func TestStore_OwnerReassignmentFailsClosed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newScopedStore(t)
	store.SeedPlayer(
		player.Player{ID: "player-1", Name: "Drifter"},
		player.Membership{ID: "mem-1", PlayerID: "player-1", TeamID: "team-1", StartDate: time.Now()},
	)

	// The cached context still names team-1, but the team set is what
	// authorizes, and a context without it sees nothing.
	stale := tenant.ForCoach("coach-1", nil)
	err := store.RunScoped(ctx, stale, func(ctx context.Context, repos *usecase.Repositories) error {
		if _, ok, err := repos.Players.GetByID(ctx, stale, "player-1"); err != nil {
			return err
		} else if ok {
			t.Fatalf("empty team set must authorize nothing")
		}

		items, err := repos.Teams.List(ctx, stale)
		if err != nil {
			return err
		}
		if len(items) != 0 {
			t.Fatalf("empty team set leaked teams: %+v", items)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("run scoped: %v", err)
	}
}
