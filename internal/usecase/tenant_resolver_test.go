package usecase_test

import (
	"context"
	"testing"

	"github.com/coachstack/coachstack/internal/domain/team"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	"github.com/coachstack/coachstack/internal/usecase"
)

func TestTenantResolver_Resolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("coach account resolves to owned teams", func(t *testing.T) {
		e := newEnv()
		e.store.SeedTeam(team.Team{ID: "team-lions-b", Name: "Lions B", CoachID: coachLionsID})
		resolver := usecase.NewTenantResolver(e.store, nil)

		tc, err := resolver.Resolve(ctx, tenant.Principal{AccountID: accountLions})
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if tc.CoachID != coachLionsID || tc.OrganizationID != "" {
			t.Fatalf("unexpected owner: %+v", tc)
		}
		if len(tc.TeamIDs) != 2 || tc.TeamIDs[0] != teamLionsID || tc.TeamIDs[1] != "team-lions-b" {
			t.Fatalf("unexpected team ids: %v", tc.TeamIDs)
		}
	})

	t.Run("organization account resolves to org branch", func(t *testing.T) {
		e := newEnv()
		resolver := usecase.NewTenantResolver(e.store, nil)

		tc, err := resolver.Resolve(ctx, tenant.Principal{AccountID: accountOrg})
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if tc.OrganizationID != orgFalconsID || tc.CoachID != "" {
			t.Fatalf("unexpected owner: %+v", tc)
		}
		if len(tc.TeamIDs) != 1 || tc.TeamIDs[0] != teamFalconsID {
			t.Fatalf("unexpected team ids: %v", tc.TeamIDs)
		}
	})

	t.Run("unknown account resolves empty without error", func(t *testing.T) {
		e := newEnv()
		resolver := usecase.NewTenantResolver(e.store, nil)

		tc, err := resolver.Resolve(ctx, tenant.Principal{AccountID: "acct-nobody"})
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if !tc.Empty() || !tc.Unresolved() {
			t.Fatalf("expected empty unresolved context, got %+v", tc)
		}
	})

	t.Run("blank account resolves empty", func(t *testing.T) {
		e := newEnv()
		resolver := usecase.NewTenantResolver(e.store, nil)

		tc, err := resolver.Resolve(ctx, tenant.Principal{AccountID: "   "})
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if !tc.Empty() {
			t.Fatalf("expected empty context, got %+v", tc)
		}
	})

	t.Run("owner with no teams resolves to empty team set", func(t *testing.T) {
		e := newEnv()
		resolver := usecase.NewTenantResolver(e.store, nil)

		// Hawks coach keeps the owner branch but loses the team.
		hawks := hawksContext()
		svc := usecase.NewTeamService(e.store, e.ids, nil)
		if err := svc.Delete(ctx, hawks, teamHawksID); err != nil {
			t.Fatalf("delete team: %v", err)
		}

		tc, err := resolver.Resolve(ctx, tenant.Principal{AccountID: accountHawks})
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if tc.CoachID != coachHawksID {
			t.Fatalf("unexpected owner: %+v", tc)
		}
		if !tc.Empty() {
			t.Fatalf("expected empty team set, got %v", tc.TeamIDs)
		}
	})
}
