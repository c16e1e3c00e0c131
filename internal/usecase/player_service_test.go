package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coachstack/coachstack/internal/domain/player"
	"github.com/coachstack/coachstack/internal/domain/team"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	"github.com/coachstack/coachstack/internal/usecase"
)

func TestPlayerService_MembershipScoping(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	e.seedRosteredPlayer("player-leo", teamLionsID)
	svc := usecase.NewPlayerService(e.store, e.ids, e.capture)

	t.Run("visible to the rostering tenant", func(t *testing.T) {
		got, err := svc.Get(ctx, lionsContext(), "player-leo")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != "player-leo" {
			t.Fatalf("unexpected player: %+v", got)
		}
	})

	t.Run("invisible to another tenant", func(t *testing.T) {
		if _, err := svc.Get(ctx, hawksContext(), "player-leo"); !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected not found across tenants, got %v", err)
		}

		items, err := svc.List(ctx, hawksContext())
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("foreign roster leaked into list: %+v", items)
		}
	})

	t.Run("transfer keeps the closed row as history", func(t *testing.T) {
		e2 := newEnv()
		e2.seedRosteredPlayer("player-ex", teamLionsID)
		svc2 := usecase.NewPlayerService(e2.store, e2.ids, e2.capture)

		err := svc2.Transfer(ctx, lionsContext(), "player-ex", usecase.TransferPlayerInput{
			FromTeamID: teamLionsID,
			ToTeamID:   teamLionsID,
			Date:       time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("transfer: %v", err)
		}

		// Still one open membership on the same team, still visible.
		memberships, err := svc2.ListMemberships(ctx, lionsContext(), "player-ex")
		if err != nil {
			t.Fatalf("list memberships: %v", err)
		}
		open := 0
		for _, m := range memberships {
			if m.Open() {
				open++
			}
		}
		if len(memberships) != 2 || open != 1 {
			t.Fatalf("expected one closed and one open membership, got %+v", memberships)
		}
	})
}

func TestPlayerService_ListMembershipsHidesForeignTeams(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	// One player rostered by two tenants at once. Each side may see the
	// player, but only its own membership row.
	e.store.SeedPlayer(
		player.Player{ID: "player-dual", Name: "Dual"},
		player.Membership{ID: "mem-dual-lions", PlayerID: "player-dual", TeamID: teamLionsID, StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		player.Membership{ID: "mem-dual-hawks", PlayerID: "player-dual", TeamID: teamHawksID, StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
	)
	svc := usecase.NewPlayerService(e.store, e.ids, e.capture)

	lions, err := svc.ListMemberships(ctx, lionsContext(), "player-dual")
	if err != nil {
		t.Fatalf("list memberships: %v", err)
	}
	if len(lions) != 1 || lions[0].TeamID != teamLionsID {
		t.Fatalf("foreign membership leaked to lions: %+v", lions)
	}

	hawks, err := svc.ListMemberships(ctx, hawksContext(), "player-dual")
	if err != nil {
		t.Fatalf("list memberships: %v", err)
	}
	if len(hawks) != 1 || hawks[0].TeamID != teamHawksID {
		t.Fatalf("foreign membership leaked to hawks: %+v", hawks)
	}
}

func TestPlayerService_CreateRejectsForeignTeam(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	svc := usecase.NewPlayerService(e.store, e.ids, e.capture)

	_, err := svc.Create(ctx, lionsContext(), usecase.CreatePlayerInput{
		Name:   "Intruder",
		TeamID: teamHawksID,
	})
	if !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	// Nothing persisted for either tenant.
	for _, tc := range []tenant.Context{lionsContext(), hawksContext()} {
		items, err := svc.List(ctx, tc)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("rejected create leaked a row: %+v", items)
		}
	}

	denials := e.capture.Denials()
	if len(denials) != 1 || denials[0].TeamID != teamHawksID {
		t.Fatalf("expected deny decision naming the foreign team, got %+v", denials)
	}
}

func TestPlayerService_CreateDefaultsToFirstTeam(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	e.store.SeedTeam(team.Team{ID: "team-aaa", Name: "Lions A", CoachID: coachLionsID})
	svc := usecase.NewPlayerService(e.store, e.ids, e.capture)

	tc := tenant.ForCoach(coachLionsID, []string{teamLionsID, "team-aaa"})
	created, err := svc.Create(ctx, tc, usecase.CreatePlayerInput{Name: "Rookie"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	memberships, err := svc.ListMemberships(ctx, tc, created.ID)
	if err != nil {
		t.Fatalf("list memberships: %v", err)
	}
	if len(memberships) != 1 || memberships[0].TeamID != "team-aaa" {
		t.Fatalf("expected membership on first sorted team, got %+v", memberships)
	}
}

func TestPlayerService_CreateEmptyScope(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	svc := usecase.NewPlayerService(e.store, e.ids, e.capture)

	_, err := svc.Create(ctx, tenant.ForCoach("coach-new", nil), usecase.CreatePlayerInput{Name: "Nobody"})
	if !errors.Is(err, usecase.ErrTenantMisconfigured) {
		t.Fatalf("expected tenant misconfigured, got %v", err)
	}
}

func TestPlayerService_Transfer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("moves the open membership between owned teams", func(t *testing.T) {
		e := newEnv()
		e.store.SeedTeam(team.Team{ID: "team-lions-b", Name: "Lions B", CoachID: coachLionsID})
		e.seedRosteredPlayer("player-move", teamLionsID)
		svc := usecase.NewPlayerService(e.store, e.ids, e.capture)

		tc := tenant.ForCoach(coachLionsID, []string{teamLionsID, "team-lions-b"})
		err := svc.Transfer(ctx, tc, "player-move", usecase.TransferPlayerInput{
			FromTeamID: teamLionsID,
			ToTeamID:   "team-lions-b",
			Date:       time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("transfer: %v", err)
		}

		memberships, err := svc.ListMemberships(ctx, tc, "player-move")
		if err != nil {
			t.Fatalf("list memberships: %v", err)
		}
		var openTeam string
		for _, m := range memberships {
			if m.Open() {
				openTeam = m.TeamID
			}
		}
		if openTeam != "team-lions-b" {
			t.Fatalf("expected open membership on destination, got %+v", memberships)
		}
	})

	t.Run("destination outside tenant scope is rejected and nothing changes", func(t *testing.T) {
		e := newEnv()
		e.seedRosteredPlayer("player-stay", teamLionsID)
		svc := usecase.NewPlayerService(e.store, e.ids, e.capture)

		err := svc.Transfer(ctx, lionsContext(), "player-stay", usecase.TransferPlayerInput{
			FromTeamID: teamLionsID,
			ToTeamID:   teamHawksID,
		})
		if !errors.Is(err, usecase.ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}

		memberships, err := svc.ListMemberships(ctx, lionsContext(), "player-stay")
		if err != nil {
			t.Fatalf("list memberships: %v", err)
		}
		if len(memberships) != 1 || !memberships[0].Open() || memberships[0].TeamID != teamLionsID {
			t.Fatalf("membership must be untouched after rejected transfer, got %+v", memberships)
		}
	})
}
