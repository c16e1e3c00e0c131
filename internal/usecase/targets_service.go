package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/coachstack/coachstack/internal/audit"
	"github.com/coachstack/coachstack/internal/domain/targets"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	"github.com/coachstack/coachstack/internal/platform/id"
)

type CreateTargetsInput struct {
	TeamID   string
	Position string `validate:"required,max=40"`
	Season   string `validate:"max=20"`
	Values   map[string]float64
}

type UpdateTargetsInput struct {
	Position string `validate:"required,max=40"`
	Season   string `validate:"max=20"`
	Values   map[string]float64
}

type TargetsService struct {
	uow      UnitOfWork
	ids      id.Generator
	recorder audit.Recorder

	now func() time.Time
}

func NewTargetsService(uow UnitOfWork, ids id.Generator, recorder audit.Recorder) *TargetsService {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &TargetsService{uow: uow, ids: ids, recorder: recorder, now: time.Now}
}

func (s *TargetsService) List(ctx context.Context, tc tenant.Context) ([]targets.StatisticalTargets, error) {
	var out []targets.StatisticalTargets
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		items, err := repos.Targets.List(ctx, tc)
		if err != nil {
			return fmt.Errorf("list targets: %w", err)
		}
		out = items
		return nil
	})
	return out, err
}

func (s *TargetsService) Get(ctx context.Context, tc tenant.Context, id string) (targets.StatisticalTargets, error) {
	var out targets.StatisticalTargets
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Targets.GetByID(ctx, tc, id)
		if err != nil {
			return fmt.Errorf("get targets by id: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: targets=%s", ErrNotFound, id)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *TargetsService) Create(ctx context.Context, tc tenant.Context, in CreateTargetsInput) (targets.StatisticalTargets, error) {
	if err := validateInput(in); err != nil {
		return targets.StatisticalTargets{}, err
	}

	teamID, err := authorizeTeamRef(ctx, s.recorder, tc, "targets", in.TeamID)
	if err != nil {
		return targets.StatisticalTargets{}, err
	}

	targetsID, err := s.ids.NewID()
	if err != nil {
		return targets.StatisticalTargets{}, fmt.Errorf("generate targets id: %w", err)
	}

	now := s.now()
	item := targets.StatisticalTargets{
		ID:        targetsID,
		TeamID:    teamID,
		Position:  in.Position,
		Season:    in.Season,
		Values:    in.Values,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		if err := repos.Targets.Create(ctx, item); err != nil {
			return fmt.Errorf("create targets: %w", err)
		}
		return nil
	})
	if err != nil {
		return targets.StatisticalTargets{}, err
	}
	return item, nil
}

func (s *TargetsService) Update(ctx context.Context, tc tenant.Context, id string, in UpdateTargetsInput) (targets.StatisticalTargets, error) {
	if err := validateInput(in); err != nil {
		return targets.StatisticalTargets{}, err
	}

	patch := targets.Patch{Position: in.Position, Season: in.Season, Values: in.Values}

	var out targets.StatisticalTargets
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Targets.Update(ctx, tc, id, patch)
		if err != nil {
			return fmt.Errorf("update targets: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: targets=%s", ErrNotFound, id)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *TargetsService) Delete(ctx context.Context, tc tenant.Context, id string) error {
	return s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		ok, err := repos.Targets.Delete(ctx, tc, id)
		if err != nil {
			return fmt.Errorf("delete targets: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: targets=%s", ErrNotFound, id)
		}
		return nil
	})
}
