package usecase_test

import (
	"fmt"
	"time"

	"github.com/coachstack/coachstack/internal/audit"
	"github.com/coachstack/coachstack/internal/domain/coach"
	"github.com/coachstack/coachstack/internal/domain/organization"
	"github.com/coachstack/coachstack/internal/domain/player"
	"github.com/coachstack/coachstack/internal/domain/team"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	"github.com/coachstack/coachstack/internal/infrastructure/repository/memory"
)

// Two coaches with one team each, the canonical cross-tenant layout the
// service tests exercise.
const (
	coachLionsID  = "coach-lions"
	coachHawksID  = "coach-hawks"
	teamLionsID   = "team-lions"
	teamHawksID   = "team-hawks"
	accountLions  = "acct-lions"
	accountHawks  = "acct-hawks"
	orgFalconsID  = "org-falcons"
	accountOrg    = "acct-falcons"
	teamFalconsID = "team-falcons"
)

type env struct {
	store   *memory.Store
	capture *audit.CaptureRecorder
	ids     *seqIDs
}

func newEnv() *env {
	capture := audit.NewCaptureRecorder()
	store := memory.NewStore(capture)

	store.SeedCoach(coach.Coach{ID: coachLionsID, AccountID: accountLions, Name: "Lions Coach"})
	store.SeedCoach(coach.Coach{ID: coachHawksID, AccountID: accountHawks, Name: "Hawks Coach"})
	store.SeedOrganization(organization.Organization{ID: orgFalconsID, AccountID: accountOrg, Name: "Falcons FC"})

	store.SeedTeam(team.Team{ID: teamLionsID, Name: "Lions", CoachID: coachLionsID})
	store.SeedTeam(team.Team{ID: teamHawksID, Name: "Hawks", CoachID: coachHawksID})
	store.SeedTeam(team.Team{ID: teamFalconsID, Name: "Falcons U17", OrganizationID: orgFalconsID})

	return &env{store: store, capture: capture, ids: &seqIDs{}}
}

func lionsContext() tenant.Context {
	return tenant.ForCoach(coachLionsID, []string{teamLionsID})
}

func hawksContext() tenant.Context {
	return tenant.ForCoach(coachHawksID, []string{teamHawksID})
}

func lionsContextWithTeams(teamIDs ...string) tenant.Context {
	return tenant.ForCoach(coachLionsID, teamIDs)
}

func (e *env) seedRosteredPlayer(playerID, teamID string) {
	e.store.SeedPlayer(
		player.Player{ID: playerID, Name: "Player " + playerID},
		player.Membership{ID: "mem-" + playerID, PlayerID: playerID, TeamID: teamID, StartDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)},
	)
}

// seqIDs hands out deterministic ids so tests can address created rows.
type seqIDs struct {
	n int
}

func (g *seqIDs) NewID() (string, error) {
	g.n++
	return fmt.Sprintf("id-%04d", g.n), nil
}
