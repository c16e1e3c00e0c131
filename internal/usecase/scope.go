package usecase

import (
	"context"
	"fmt"

	"github.com/coachstack/coachstack/internal/audit"
	"github.com/coachstack/coachstack/internal/domain/tenant"
)

// authorizeTeamRef is the create-side gate shared by every service: resolve
// the owning team (caller-supplied or the tenant default) and verify it sits
// inside the tenant boundary before anything is written. Each outcome emits
// one audit decision.
func authorizeTeamRef(ctx context.Context, rec audit.Recorder, tc tenant.Context, entity, teamID string) (string, error) {
	if tc.Empty() {
		rec.Record(ctx, audit.Decision{
			Effect:         audit.EffectDeny,
			Entity:         entity,
			CoachID:        tc.CoachID,
			OrganizationID: tc.OrganizationID,
			Reason:         "tenant owns no teams",
		})
		return "", fmt.Errorf("%w: tenant owns no teams", ErrTenantMisconfigured)
	}

	if teamID == "" {
		teamID = tc.DefaultTeamID()
	}
	if !tc.Allows(teamID) {
		rec.Record(ctx, audit.Decision{
			Effect:         audit.EffectDeny,
			Entity:         entity,
			TeamID:         teamID,
			CoachID:        tc.CoachID,
			OrganizationID: tc.OrganizationID,
			Reason:         "create referenced a team outside tenant scope",
		})
		return "", fmt.Errorf("%w: team=%s", ErrForbidden, teamID)
	}

	rec.Record(ctx, audit.Decision{
		Effect:         audit.EffectGrant,
		Entity:         entity,
		TeamID:         teamID,
		CoachID:        tc.CoachID,
		OrganizationID: tc.OrganizationID,
		Reason:         "create team reference inside tenant scope",
	})
	return teamID, nil
}
