package usecase

import (
	"context"

	"github.com/coachstack/coachstack/internal/domain/assessment"
	"github.com/coachstack/coachstack/internal/domain/championship"
	"github.com/coachstack/coachstack/internal/domain/coach"
	"github.com/coachstack/coachstack/internal/domain/injury"
	"github.com/coachstack/coachstack/internal/domain/match"
	"github.com/coachstack/coachstack/internal/domain/organization"
	"github.com/coachstack/coachstack/internal/domain/player"
	"github.com/coachstack/coachstack/internal/domain/schedule"
	"github.com/coachstack/coachstack/internal/domain/targets"
	"github.com/coachstack/coachstack/internal/domain/team"
	"github.com/coachstack/coachstack/internal/domain/tenant"
)

// Repositories is the accessor bundle bound to one scoped transaction.
type Repositories struct {
	Coaches       coach.Repository
	Organizations organization.Repository
	Teams         team.Repository
	Players       player.Repository
	Matches       match.Repository
	Schedules     schedule.Repository
	Assessments   assessment.Repository
	Injuries      injury.Repository
	Championships championship.Repository
	Targets       targets.Repository
}

// UnitOfWork is the single entry point to the store. RunScoped opens one
// transaction, pins the tenant identity into transaction-local storage state
// before fn runs, and commits or rolls back atomically with everything fn
// did. Services never touch the store outside of it.
type UnitOfWork interface {
	RunScoped(ctx context.Context, tc tenant.Context, fn func(ctx context.Context, repos *Repositories) error) error
}
