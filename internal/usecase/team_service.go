package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/coachstack/coachstack/internal/audit"
	"github.com/coachstack/coachstack/internal/domain/team"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	"github.com/coachstack/coachstack/internal/platform/id"
)

type CreateTeamInput struct {
	Name     string `validate:"required,max=120"`
	Category string `validate:"max=60"`
	Season   string `validate:"max=20"`

	// OwnerCoachID and OwnerOrganizationID exist only so a caller-supplied
	// owner can be rejected explicitly. The persisted owner always comes
	// from the resolved tenant context.
	OwnerCoachID        string
	OwnerOrganizationID string
}

type UpdateTeamInput struct {
	Name     string `validate:"required,max=120"`
	Category string `validate:"max=60"`
	Season   string `validate:"max=20"`
}

type TeamService struct {
	uow      UnitOfWork
	ids      id.Generator
	recorder audit.Recorder

	now func() time.Time
}

func NewTeamService(uow UnitOfWork, ids id.Generator, recorder audit.Recorder) *TeamService {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &TeamService{uow: uow, ids: ids, recorder: recorder, now: time.Now}
}

func (s *TeamService) List(ctx context.Context, tc tenant.Context) ([]team.Team, error) {
	var out []team.Team
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		items, err := repos.Teams.List(ctx, tc)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		out = items
		return nil
	})
	return out, err
}

func (s *TeamService) Get(ctx context.Context, tc tenant.Context, teamID string) (team.Team, error) {
	var out team.Team
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Teams.GetByID(ctx, tc, teamID)
		if err != nil {
			return fmt.Errorf("get team by id: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *TeamService) Create(ctx context.Context, tc tenant.Context, in CreateTeamInput) (team.Team, error) {
	if err := validateInput(in); err != nil {
		return team.Team{}, err
	}
	if tc.Unresolved() {
		return team.Team{}, fmt.Errorf("%w: principal is neither coach nor organization", ErrTenantMisconfigured)
	}
	if err := s.rejectForeignOwner(ctx, tc, in); err != nil {
		return team.Team{}, err
	}

	teamID, err := s.ids.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	now := s.now()
	item := team.Team{
		ID:             teamID,
		Name:           in.Name,
		Category:       in.Category,
		Season:         in.Season,
		CoachID:        tc.CoachID,
		OrganizationID: tc.OrganizationID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err = s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		if err := repos.Teams.Create(ctx, item); err != nil {
			return fmt.Errorf("create team: %w", err)
		}
		return nil
	})
	if err != nil {
		return team.Team{}, err
	}

	s.recorder.Record(ctx, audit.Decision{
		Effect:         audit.EffectGrant,
		Entity:         "team",
		EntityID:       item.ID,
		TeamID:         item.ID,
		CoachID:        tc.CoachID,
		OrganizationID: tc.OrganizationID,
		Reason:         "team created for resolved owner",
	})
	return item, nil
}

func (s *TeamService) Update(ctx context.Context, tc tenant.Context, teamID string, in UpdateTeamInput) (team.Team, error) {
	if err := validateInput(in); err != nil {
		return team.Team{}, err
	}

	patch := team.Patch{Name: in.Name, Category: in.Category, Season: in.Season}

	var out team.Team
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Teams.Update(ctx, tc, teamID, patch)
		if err != nil {
			return fmt.Errorf("update team: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *TeamService) Delete(ctx context.Context, tc tenant.Context, teamID string) error {
	return s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		ok, err := repos.Teams.Delete(ctx, tc, teamID)
		if err != nil {
			return fmt.Errorf("delete team: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
		return nil
	})
}

// rejectForeignOwner fails any create that tries to pin ownership on an
// account other than the resolved one. Ownership is never caller-settable.
func (s *TeamService) rejectForeignOwner(ctx context.Context, tc tenant.Context, in CreateTeamInput) error {
	coachMismatch := in.OwnerCoachID != "" && in.OwnerCoachID != tc.CoachID
	orgMismatch := in.OwnerOrganizationID != "" && in.OwnerOrganizationID != tc.OrganizationID
	if !coachMismatch && !orgMismatch {
		return nil
	}

	s.recorder.Record(ctx, audit.Decision{
		Effect:         audit.EffectDeny,
		Entity:         "team",
		CoachID:        tc.CoachID,
		OrganizationID: tc.OrganizationID,
		Reason:         "caller-supplied owner does not match resolved tenant",
	})
	return fmt.Errorf("%w: team owner is not caller-settable", ErrForbidden)
}
