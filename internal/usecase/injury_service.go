package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/coachstack/coachstack/internal/audit"
	"github.com/coachstack/coachstack/internal/domain/injury"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	"github.com/coachstack/coachstack/internal/platform/id"
)

type CreateInjuryInput struct {
	TeamID      string
	PlayerID    string `validate:"required"`
	Description string `validate:"required,max=500"`
	OccurredAt  time.Time
}

type UpdateInjuryInput struct {
	Description string `validate:"required,max=500"`
	OccurredAt  time.Time
	RecoveredAt *time.Time
}

type InjuryService struct {
	uow      UnitOfWork
	ids      id.Generator
	recorder audit.Recorder

	now func() time.Time
}

func NewInjuryService(uow UnitOfWork, ids id.Generator, recorder audit.Recorder) *InjuryService {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &InjuryService{uow: uow, ids: ids, recorder: recorder, now: time.Now}
}

func (s *InjuryService) List(ctx context.Context, tc tenant.Context) ([]injury.Record, error) {
	var out []injury.Record
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		items, err := repos.Injuries.List(ctx, tc)
		if err != nil {
			return fmt.Errorf("list injuries: %w", err)
		}
		out = items
		return nil
	})
	return out, err
}

func (s *InjuryService) ListByPlayer(ctx context.Context, tc tenant.Context, playerID string) ([]injury.Record, error) {
	var out []injury.Record
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		if _, ok, err := repos.Players.GetByID(ctx, tc, playerID); err != nil {
			return fmt.Errorf("get player by id: %w", err)
		} else if !ok {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}

		items, err := repos.Injuries.ListByPlayer(ctx, tc, playerID)
		if err != nil {
			return fmt.Errorf("list injuries by player: %w", err)
		}
		out = items
		return nil
	})
	return out, err
}

func (s *InjuryService) Get(ctx context.Context, tc tenant.Context, id string) (injury.Record, error) {
	var out injury.Record
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Injuries.GetByID(ctx, tc, id)
		if err != nil {
			return fmt.Errorf("get injury by id: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: injury=%s", ErrNotFound, id)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *InjuryService) Create(ctx context.Context, tc tenant.Context, in CreateInjuryInput) (injury.Record, error) {
	if err := validateInput(in); err != nil {
		return injury.Record{}, err
	}

	teamID, err := authorizeTeamRef(ctx, s.recorder, tc, "injury", in.TeamID)
	if err != nil {
		return injury.Record{}, err
	}

	injuryID, err := s.ids.NewID()
	if err != nil {
		return injury.Record{}, fmt.Errorf("generate injury id: %w", err)
	}

	now := s.now()
	occurredAt := in.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = now
	}

	item := injury.Record{
		ID:          injuryID,
		TeamID:      teamID,
		PlayerID:    in.PlayerID,
		Description: in.Description,
		OccurredAt:  occurredAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		if err := requireRosteredPlayer(ctx, repos, tc, in.PlayerID, teamID); err != nil {
			return err
		}
		if err := repos.Injuries.Create(ctx, item); err != nil {
			return fmt.Errorf("create injury: %w", err)
		}
		return nil
	})
	if err != nil {
		return injury.Record{}, err
	}
	return item, nil
}

func (s *InjuryService) Update(ctx context.Context, tc tenant.Context, id string, in UpdateInjuryInput) (injury.Record, error) {
	if err := validateInput(in); err != nil {
		return injury.Record{}, err
	}

	patch := injury.Patch{
		Description: in.Description,
		OccurredAt:  in.OccurredAt,
		RecoveredAt: in.RecoveredAt,
	}

	var out injury.Record
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Injuries.Update(ctx, tc, id, patch)
		if err != nil {
			return fmt.Errorf("update injury: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: injury=%s", ErrNotFound, id)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *InjuryService) Delete(ctx context.Context, tc tenant.Context, id string) error {
	return s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		ok, err := repos.Injuries.Delete(ctx, tc, id)
		if err != nil {
			return fmt.Errorf("delete injury: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: injury=%s", ErrNotFound, id)
		}
		return nil
	})
}
