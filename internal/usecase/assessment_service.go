package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/coachstack/coachstack/internal/audit"
	"github.com/coachstack/coachstack/internal/domain/assessment"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	"github.com/coachstack/coachstack/internal/platform/id"
)

type CreateAssessmentInput struct {
	TeamID     string
	PlayerID   string `validate:"required"`
	AssessedAt time.Time
	HeightCM   float64 `validate:"min=0"`
	WeightKG   float64 `validate:"min=0"`
	BodyFatPct float64 `validate:"min=0,max=100"`
	Notes      string  `validate:"max=500"`
}

type UpdateAssessmentInput struct {
	AssessedAt time.Time
	HeightCM   float64 `validate:"min=0"`
	WeightKG   float64 `validate:"min=0"`
	BodyFatPct float64 `validate:"min=0,max=100"`
	Notes      string  `validate:"max=500"`
}

type AssessmentService struct {
	uow      UnitOfWork
	ids      id.Generator
	recorder audit.Recorder

	now func() time.Time
}

func NewAssessmentService(uow UnitOfWork, ids id.Generator, recorder audit.Recorder) *AssessmentService {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &AssessmentService{uow: uow, ids: ids, recorder: recorder, now: time.Now}
}

func (s *AssessmentService) List(ctx context.Context, tc tenant.Context) ([]assessment.PhysicalAssessment, error) {
	var out []assessment.PhysicalAssessment
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		items, err := repos.Assessments.List(ctx, tc)
		if err != nil {
			return fmt.Errorf("list assessments: %w", err)
		}
		out = items
		return nil
	})
	return out, err
}

func (s *AssessmentService) ListByPlayer(ctx context.Context, tc tenant.Context, playerID string) ([]assessment.PhysicalAssessment, error) {
	var out []assessment.PhysicalAssessment
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		if _, ok, err := repos.Players.GetByID(ctx, tc, playerID); err != nil {
			return fmt.Errorf("get player by id: %w", err)
		} else if !ok {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}

		items, err := repos.Assessments.ListByPlayer(ctx, tc, playerID)
		if err != nil {
			return fmt.Errorf("list assessments by player: %w", err)
		}
		out = items
		return nil
	})
	return out, err
}

func (s *AssessmentService) Get(ctx context.Context, tc tenant.Context, id string) (assessment.PhysicalAssessment, error) {
	var out assessment.PhysicalAssessment
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Assessments.GetByID(ctx, tc, id)
		if err != nil {
			return fmt.Errorf("get assessment by id: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: assessment=%s", ErrNotFound, id)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *AssessmentService) Create(ctx context.Context, tc tenant.Context, in CreateAssessmentInput) (assessment.PhysicalAssessment, error) {
	if err := validateInput(in); err != nil {
		return assessment.PhysicalAssessment{}, err
	}

	teamID, err := authorizeTeamRef(ctx, s.recorder, tc, "assessment", in.TeamID)
	if err != nil {
		return assessment.PhysicalAssessment{}, err
	}

	assessmentID, err := s.ids.NewID()
	if err != nil {
		return assessment.PhysicalAssessment{}, fmt.Errorf("generate assessment id: %w", err)
	}

	now := s.now()
	assessedAt := in.AssessedAt
	if assessedAt.IsZero() {
		assessedAt = now
	}

	item := assessment.PhysicalAssessment{
		ID:         assessmentID,
		TeamID:     teamID,
		PlayerID:   in.PlayerID,
		AssessedAt: assessedAt,
		HeightCM:   in.HeightCM,
		WeightKG:   in.WeightKG,
		BodyFatPct: in.BodyFatPct,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		if err := requireRosteredPlayer(ctx, repos, tc, in.PlayerID, teamID); err != nil {
			return err
		}
		if err := repos.Assessments.Create(ctx, item); err != nil {
			return fmt.Errorf("create assessment: %w", err)
		}
		return nil
	})
	if err != nil {
		return assessment.PhysicalAssessment{}, err
	}
	return item, nil
}

func (s *AssessmentService) Update(ctx context.Context, tc tenant.Context, id string, in UpdateAssessmentInput) (assessment.PhysicalAssessment, error) {
	if err := validateInput(in); err != nil {
		return assessment.PhysicalAssessment{}, err
	}

	patch := assessment.Patch{
		AssessedAt: in.AssessedAt,
		HeightCM:   in.HeightCM,
		WeightKG:   in.WeightKG,
		BodyFatPct: in.BodyFatPct,
		Notes:      in.Notes,
	}

	var out assessment.PhysicalAssessment
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Assessments.Update(ctx, tc, id, patch)
		if err != nil {
			return fmt.Errorf("update assessment: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: assessment=%s", ErrNotFound, id)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *AssessmentService) Delete(ctx context.Context, tc tenant.Context, id string) error {
	return s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		ok, err := repos.Assessments.Delete(ctx, tc, id)
		if err != nil {
			return fmt.Errorf("delete assessment: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: assessment=%s", ErrNotFound, id)
		}
		return nil
	})
}

// requireRosteredPlayer confirms the player is visible to the tenant and
// currently rostered on teamID. Used by the player-linked families so a
// record can never be attached to a player another tenant owns.
func requireRosteredPlayer(ctx context.Context, repos *Repositories, tc tenant.Context, playerID, teamID string) error {
	if _, ok, err := repos.Players.GetByID(ctx, tc, playerID); err != nil {
		return fmt.Errorf("get player by id: %w", err)
	} else if !ok {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	memberships, err := repos.Players.ListMemberships(ctx, tc, playerID)
	if err != nil {
		return fmt.Errorf("list memberships: %w", err)
	}
	for _, m := range memberships {
		if m.TeamID == teamID && m.Open() {
			return nil
		}
	}
	return fmt.Errorf("%w: player=%s is not rostered on team=%s", ErrInvalidInput, playerID, teamID)
}
