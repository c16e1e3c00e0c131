package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/coachstack/coachstack/internal/audit"
	"github.com/coachstack/coachstack/internal/domain/match"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	"github.com/coachstack/coachstack/internal/platform/id"
)

type CreateMatchInput struct {
	TeamID   string
	Opponent string `validate:"required,max=120"`
	Location string `validate:"max=120"`
	PlayedAt time.Time
}

type UpdateMatchInput struct {
	Opponent string `validate:"required,max=120"`
	Location string `validate:"max=120"`
	PlayedAt time.Time
}

type UpsertTeamStatsInput struct {
	GoalsFor     int `validate:"min=0"`
	GoalsAgainst int `validate:"min=0"`
	Possession   int `validate:"min=0,max=100"`
	Metrics      map[string]float64
}

type UpsertPlayerStatsInput struct {
	PlayerID string `validate:"required"`
	Minutes  int    `validate:"min=0"`
	Metrics  map[string]float64
}

type MatchService struct {
	uow      UnitOfWork
	ids      id.Generator
	recorder audit.Recorder

	now func() time.Time
}

func NewMatchService(uow UnitOfWork, ids id.Generator, recorder audit.Recorder) *MatchService {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &MatchService{uow: uow, ids: ids, recorder: recorder, now: time.Now}
}

func (s *MatchService) List(ctx context.Context, tc tenant.Context) ([]match.Match, error) {
	var out []match.Match
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		items, err := repos.Matches.List(ctx, tc)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		out = items
		return nil
	})
	return out, err
}

func (s *MatchService) Get(ctx context.Context, tc tenant.Context, matchID string) (match.Match, error) {
	var out match.Match
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Matches.GetByID(ctx, tc, matchID)
		if err != nil {
			return fmt.Errorf("get match by id: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *MatchService) Create(ctx context.Context, tc tenant.Context, in CreateMatchInput) (match.Match, error) {
	if err := validateInput(in); err != nil {
		return match.Match{}, err
	}

	teamID, err := authorizeTeamRef(ctx, s.recorder, tc, "match", in.TeamID)
	if err != nil {
		return match.Match{}, err
	}

	matchID, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	now := s.now()
	item := match.Match{
		ID:        matchID,
		TeamID:    teamID,
		Opponent:  in.Opponent,
		Location:  in.Location,
		PlayedAt:  in.PlayedAt,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		if err := repos.Matches.Create(ctx, item); err != nil {
			return fmt.Errorf("create match: %w", err)
		}
		return nil
	})
	if err != nil {
		return match.Match{}, err
	}
	return item, nil
}

func (s *MatchService) Update(ctx context.Context, tc tenant.Context, matchID string, in UpdateMatchInput) (match.Match, error) {
	if err := validateInput(in); err != nil {
		return match.Match{}, err
	}

	patch := match.Patch{Opponent: in.Opponent, Location: in.Location, PlayedAt: in.PlayedAt}

	var out match.Match
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Matches.Update(ctx, tc, matchID, patch)
		if err != nil {
			return fmt.Errorf("update match: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *MatchService) Delete(ctx context.Context, tc tenant.Context, matchID string) error {
	return s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		ok, err := repos.Matches.Delete(ctx, tc, matchID)
		if err != nil {
			return fmt.Errorf("delete match: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
		}
		return nil
	})
}

func (s *MatchService) GetTeamStats(ctx context.Context, tc tenant.Context, matchID string) (match.TeamStats, error) {
	var out match.TeamStats
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Matches.GetTeamStats(ctx, tc, matchID)
		if err != nil {
			return fmt.Errorf("get team stats: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: match=%s team stats", ErrNotFound, matchID)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *MatchService) UpsertTeamStats(ctx context.Context, tc tenant.Context, matchID string, in UpsertTeamStatsInput) (match.TeamStats, error) {
	if err := validateInput(in); err != nil {
		return match.TeamStats{}, err
	}

	statsID, err := s.ids.NewID()
	if err != nil {
		return match.TeamStats{}, fmt.Errorf("generate stats id: %w", err)
	}

	item := match.TeamStats{
		ID:           statsID,
		MatchID:      matchID,
		GoalsFor:     in.GoalsFor,
		GoalsAgainst: in.GoalsAgainst,
		Possession:   in.Possession,
		Metrics:      in.Metrics,
	}

	err = s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		if _, ok, err := repos.Matches.GetByID(ctx, tc, matchID); err != nil {
			return fmt.Errorf("get match by id: %w", err)
		} else if !ok {
			return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
		}

		ok, err := repos.Matches.UpsertTeamStats(ctx, tc, item)
		if err != nil {
			return fmt.Errorf("upsert team stats: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
		}
		return nil
	})
	if err != nil {
		return match.TeamStats{}, err
	}
	return item, nil
}

func (s *MatchService) ListPlayerStats(ctx context.Context, tc tenant.Context, matchID string) ([]match.PlayerStats, error) {
	var out []match.PlayerStats
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		items, err := repos.Matches.ListPlayerStats(ctx, tc, matchID)
		if err != nil {
			return fmt.Errorf("list player stats: %w", err)
		}
		out = items
		return nil
	})
	return out, err
}

func (s *MatchService) UpsertPlayerStats(ctx context.Context, tc tenant.Context, matchID string, in UpsertPlayerStatsInput) (match.PlayerStats, error) {
	if err := validateInput(in); err != nil {
		return match.PlayerStats{}, err
	}

	statsID, err := s.ids.NewID()
	if err != nil {
		return match.PlayerStats{}, fmt.Errorf("generate stats id: %w", err)
	}

	item := match.PlayerStats{
		ID:       statsID,
		MatchID:  matchID,
		PlayerID: in.PlayerID,
		Minutes:  in.Minutes,
		Metrics:  in.Metrics,
	}

	err = s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		if _, ok, err := repos.Matches.GetByID(ctx, tc, matchID); err != nil {
			return fmt.Errorf("get match by id: %w", err)
		} else if !ok {
			return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
		}
		if _, ok, err := repos.Players.GetByID(ctx, tc, in.PlayerID); err != nil {
			return fmt.Errorf("get player by id: %w", err)
		} else if !ok {
			return fmt.Errorf("%w: player=%s", ErrNotFound, in.PlayerID)
		}

		ok, err := repos.Matches.UpsertPlayerStats(ctx, tc, item)
		if err != nil {
			return fmt.Errorf("upsert player stats: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
		}
		return nil
	})
	if err != nil {
		return match.PlayerStats{}, err
	}
	return item, nil
}
