package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/coachstack/coachstack/internal/audit"
	"github.com/coachstack/coachstack/internal/domain/championship"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	"github.com/coachstack/coachstack/internal/platform/id"
)

type FixtureInput struct {
	Round    int    `validate:"min=0"`
	Opponent string `validate:"required,max=120"`
	PlayedAt time.Time
}

type CreateChampionshipInput struct {
	TeamID   string
	Name     string `validate:"required,max=120"`
	Season   string `validate:"max=20"`
	Fixtures []FixtureInput `validate:"dive"`
}

type UpdateChampionshipInput struct {
	Name   string `validate:"required,max=120"`
	Season string `validate:"max=20"`
}

type UpdateFixtureInput struct {
	Round     int    `validate:"min=0"`
	Opponent  string `validate:"required,max=120"`
	PlayedAt  time.Time
	HomeScore *int
	AwayScore *int
}

type ChampionshipService struct {
	uow      UnitOfWork
	ids      id.Generator
	recorder audit.Recorder

	now func() time.Time
}

func NewChampionshipService(uow UnitOfWork, ids id.Generator, recorder audit.Recorder) *ChampionshipService {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &ChampionshipService{uow: uow, ids: ids, recorder: recorder, now: time.Now}
}

func (s *ChampionshipService) List(ctx context.Context, tc tenant.Context) ([]championship.Championship, error) {
	var out []championship.Championship
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		items, err := repos.Championships.List(ctx, tc)
		if err != nil {
			return fmt.Errorf("list championships: %w", err)
		}
		out = items
		return nil
	})
	return out, err
}

func (s *ChampionshipService) Get(ctx context.Context, tc tenant.Context, id string) (championship.Championship, error) {
	var out championship.Championship
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Championships.GetByID(ctx, tc, id)
		if err != nil {
			return fmt.Errorf("get championship by id: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: championship=%s", ErrNotFound, id)
		}
		out = item
		return nil
	})
	return out, err
}

// Create persists the championship and any initial fixtures in one scoped
// transaction; a failure on any fixture row leaves nothing behind.
func (s *ChampionshipService) Create(ctx context.Context, tc tenant.Context, in CreateChampionshipInput) (championship.Championship, error) {
	if err := validateInput(in); err != nil {
		return championship.Championship{}, err
	}

	teamID, err := authorizeTeamRef(ctx, s.recorder, tc, "championship", in.TeamID)
	if err != nil {
		return championship.Championship{}, err
	}

	championshipID, err := s.ids.NewID()
	if err != nil {
		return championship.Championship{}, fmt.Errorf("generate championship id: %w", err)
	}

	now := s.now()
	item := championship.Championship{
		ID:        championshipID,
		TeamID:    teamID,
		Name:      in.Name,
		Season:    in.Season,
		CreatedAt: now,
		UpdatedAt: now,
	}

	fixtures := make([]championship.Fixture, 0, len(in.Fixtures))
	for _, f := range in.Fixtures {
		fixtureID, err := s.ids.NewID()
		if err != nil {
			return championship.Championship{}, fmt.Errorf("generate fixture id: %w", err)
		}
		fixtures = append(fixtures, championship.Fixture{
			ID:             fixtureID,
			ChampionshipID: championshipID,
			Round:          f.Round,
			Opponent:       f.Opponent,
			PlayedAt:       f.PlayedAt,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	err = s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		if err := repos.Championships.Create(ctx, item, fixtures); err != nil {
			return fmt.Errorf("create championship: %w", err)
		}
		return nil
	})
	if err != nil {
		return championship.Championship{}, err
	}
	return item, nil
}

func (s *ChampionshipService) Update(ctx context.Context, tc tenant.Context, id string, in UpdateChampionshipInput) (championship.Championship, error) {
	if err := validateInput(in); err != nil {
		return championship.Championship{}, err
	}

	patch := championship.Patch{Name: in.Name, Season: in.Season}

	var out championship.Championship
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Championships.Update(ctx, tc, id, patch)
		if err != nil {
			return fmt.Errorf("update championship: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: championship=%s", ErrNotFound, id)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *ChampionshipService) Delete(ctx context.Context, tc tenant.Context, id string) error {
	return s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		ok, err := repos.Championships.Delete(ctx, tc, id)
		if err != nil {
			return fmt.Errorf("delete championship: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: championship=%s", ErrNotFound, id)
		}
		return nil
	})
}

func (s *ChampionshipService) ListFixtures(ctx context.Context, tc tenant.Context, championshipID string) ([]championship.Fixture, error) {
	var out []championship.Fixture
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		if _, ok, err := repos.Championships.GetByID(ctx, tc, championshipID); err != nil {
			return fmt.Errorf("get championship by id: %w", err)
		} else if !ok {
			return fmt.Errorf("%w: championship=%s", ErrNotFound, championshipID)
		}

		items, err := repos.Championships.ListFixtures(ctx, tc, championshipID)
		if err != nil {
			return fmt.Errorf("list fixtures: %w", err)
		}
		out = items
		return nil
	})
	return out, err
}

func (s *ChampionshipService) GetFixture(ctx context.Context, tc tenant.Context, fixtureID string) (championship.Fixture, error) {
	var out championship.Fixture
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Championships.GetFixture(ctx, tc, fixtureID)
		if err != nil {
			return fmt.Errorf("get fixture by id: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *ChampionshipService) CreateFixture(ctx context.Context, tc tenant.Context, championshipID string, in FixtureInput) (championship.Fixture, error) {
	if err := validateInput(in); err != nil {
		return championship.Fixture{}, err
	}

	fixtureID, err := s.ids.NewID()
	if err != nil {
		return championship.Fixture{}, fmt.Errorf("generate fixture id: %w", err)
	}

	now := s.now()
	item := championship.Fixture{
		ID:             fixtureID,
		ChampionshipID: championshipID,
		Round:          in.Round,
		Opponent:       in.Opponent,
		PlayedAt:       in.PlayedAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		ok, err := repos.Championships.CreateFixture(ctx, tc, item)
		if err != nil {
			return fmt.Errorf("create fixture: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: championship=%s", ErrNotFound, championshipID)
		}
		return nil
	})
	if err != nil {
		return championship.Fixture{}, err
	}
	return item, nil
}

func (s *ChampionshipService) UpdateFixture(ctx context.Context, tc tenant.Context, fixtureID string, in UpdateFixtureInput) (championship.Fixture, error) {
	if err := validateInput(in); err != nil {
		return championship.Fixture{}, err
	}

	patch := championship.FixturePatch{
		Round:     in.Round,
		Opponent:  in.Opponent,
		PlayedAt:  in.PlayedAt,
		HomeScore: in.HomeScore,
		AwayScore: in.AwayScore,
	}

	var out championship.Fixture
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Championships.UpdateFixture(ctx, tc, fixtureID, patch)
		if err != nil {
			return fmt.Errorf("update fixture: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *ChampionshipService) DeleteFixture(ctx context.Context, tc tenant.Context, fixtureID string) error {
	return s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		ok, err := repos.Championships.DeleteFixture(ctx, tc, fixtureID)
		if err != nil {
			return fmt.Errorf("delete fixture: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
		}
		return nil
	})
}
