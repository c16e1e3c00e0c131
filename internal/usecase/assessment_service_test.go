package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/coachstack/coachstack/internal/domain/team"
	"github.com/coachstack/coachstack/internal/usecase"
)

func TestAssessmentService_CreateRequiresRosteredPlayer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("rostered player accepted", func(t *testing.T) {
		e := newEnv()
		e.seedRosteredPlayer("player-fit", teamLionsID)
		svc := usecase.NewAssessmentService(e.store, e.ids, e.capture)

		created, err := svc.Create(ctx, lionsContext(), usecase.CreateAssessmentInput{
			PlayerID: "player-fit",
			HeightCM: 181,
			WeightKG: 74.5,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.TeamID != teamLionsID || created.PlayerID != "player-fit" {
			t.Fatalf("unexpected assessment: %+v", created)
		}
	})

	t.Run("player rostered elsewhere is rejected and nothing persists", func(t *testing.T) {
		e := newEnv()
		e.seedRosteredPlayer("player-hawk", teamHawksID)
		svc := usecase.NewAssessmentService(e.store, e.ids, e.capture)

		_, err := svc.Create(ctx, lionsContext(), usecase.CreateAssessmentInput{
			PlayerID: "player-hawk",
			HeightCM: 175,
		})
		if !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected not found for a player another tenant owns, got %v", err)
		}

		items, err := svc.List(ctx, lionsContext())
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("rejected create leaked a row: %+v", items)
		}
	})

	t.Run("visible player without open membership on the target team is invalid", func(t *testing.T) {
		e := newEnv()
		e.store.SeedTeam(team.Team{ID: "team-aaa", Name: "Lions A", CoachID: coachLionsID})
		e.seedRosteredPlayer("player-b", teamLionsID)
		svc := usecase.NewAssessmentService(e.store, e.ids, e.capture)

		// Player visible to the tenant but not rostered on team-aaa.
		tcWithExtra := lionsContextWithTeams(teamLionsID, "team-aaa")
		_, err := svc.Create(ctx, tcWithExtra, usecase.CreateAssessmentInput{
			TeamID:   "team-aaa",
			PlayerID: "player-b",
		})
		if !errors.Is(err, usecase.ErrInvalidInput) {
			t.Fatalf("expected invalid input for unrostered team, got %v", err)
		}
	})
}

func TestAssessmentService_ListByPlayerScoped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv()
	e.seedRosteredPlayer("player-fit", teamLionsID)
	svc := usecase.NewAssessmentService(e.store, e.ids, e.capture)

	if _, err := svc.Create(ctx, lionsContext(), usecase.CreateAssessmentInput{PlayerID: "player-fit"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := svc.ListByPlayer(ctx, lionsContext(), "player-fit")
	if err != nil {
		t.Fatalf("list by player: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected one assessment, got %+v", mine)
	}

	theirs, err := svc.ListByPlayer(ctx, hawksContext(), "player-fit")
	if err != nil {
		t.Fatalf("list by player: %v", err)
	}
	if len(theirs) != 0 {
		t.Fatalf("foreign assessments leaked: %+v", theirs)
	}
}
