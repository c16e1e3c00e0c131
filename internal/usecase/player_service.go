package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/coachstack/coachstack/internal/audit"
	"github.com/coachstack/coachstack/internal/domain/player"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	"github.com/coachstack/coachstack/internal/platform/id"
)

type CreatePlayerInput struct {
	Name      string `validate:"required,max=120"`
	Position  string `validate:"max=40"`
	BirthDate *time.Time

	// TeamID is the initial roster team; empty means the tenant's default
	// team.
	TeamID    string
	StartDate time.Time
}

type UpdatePlayerInput struct {
	Name      string `validate:"required,max=120"`
	Position  string `validate:"max=40"`
	BirthDate *time.Time
}

type TransferPlayerInput struct {
	FromTeamID string `validate:"required"`
	ToTeamID   string `validate:"required"`
	Date       time.Time
}

type PlayerService struct {
	uow      UnitOfWork
	ids      id.Generator
	recorder audit.Recorder

	now func() time.Time
}

func NewPlayerService(uow UnitOfWork, ids id.Generator, recorder audit.Recorder) *PlayerService {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &PlayerService{uow: uow, ids: ids, recorder: recorder, now: time.Now}
}

func (s *PlayerService) List(ctx context.Context, tc tenant.Context) ([]player.Player, error) {
	var out []player.Player
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		items, err := repos.Players.List(ctx, tc)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		out = items
		return nil
	})
	return out, err
}

func (s *PlayerService) Get(ctx context.Context, tc tenant.Context, playerID string) (player.Player, error) {
	var out player.Player
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Players.GetByID(ctx, tc, playerID)
		if err != nil {
			return fmt.Errorf("get player by id: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *PlayerService) Create(ctx context.Context, tc tenant.Context, in CreatePlayerInput) (player.Player, error) {
	if err := validateInput(in); err != nil {
		return player.Player{}, err
	}

	teamID, err := authorizeTeamRef(ctx, s.recorder, tc, "player", in.TeamID)
	if err != nil {
		return player.Player{}, err
	}

	playerID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}
	membershipID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate membership id: %w", err)
	}

	now := s.now()
	startDate := in.StartDate
	if startDate.IsZero() {
		startDate = now
	}

	item := player.Player{
		ID:        playerID,
		Name:      in.Name,
		Position:  in.Position,
		BirthDate: in.BirthDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	initial := player.Membership{
		ID:        membershipID,
		PlayerID:  playerID,
		TeamID:    teamID,
		StartDate: startDate,
	}

	err = s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		if err := repos.Players.Create(ctx, item, initial); err != nil {
			return fmt.Errorf("create player: %w", err)
		}
		return nil
	})
	if err != nil {
		return player.Player{}, err
	}
	return item, nil
}

func (s *PlayerService) Update(ctx context.Context, tc tenant.Context, playerID string, in UpdatePlayerInput) (player.Player, error) {
	if err := validateInput(in); err != nil {
		return player.Player{}, err
	}

	patch := player.Patch{Name: in.Name, Position: in.Position, BirthDate: in.BirthDate}

	var out player.Player
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		item, ok, err := repos.Players.Update(ctx, tc, playerID, patch)
		if err != nil {
			return fmt.Errorf("update player: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *PlayerService) Delete(ctx context.Context, tc tenant.Context, playerID string) error {
	return s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		ok, err := repos.Players.Delete(ctx, tc, playerID)
		if err != nil {
			return fmt.Errorf("delete player: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}
		return nil
	})
}

func (s *PlayerService) ListMemberships(ctx context.Context, tc tenant.Context, playerID string) ([]player.Membership, error) {
	var out []player.Membership
	err := s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		if _, ok, err := repos.Players.GetByID(ctx, tc, playerID); err != nil {
			return fmt.Errorf("get player by id: %w", err)
		} else if !ok {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}

		items, err := repos.Players.ListMemberships(ctx, tc, playerID)
		if err != nil {
			return fmt.Errorf("list memberships: %w", err)
		}
		out = items
		return nil
	})
	return out, err
}

// Transfer closes the player's open membership on one team and opens a new
// one on another, atomically. Both teams must sit inside the tenant
// boundary.
func (s *PlayerService) Transfer(ctx context.Context, tc tenant.Context, playerID string, in TransferPlayerInput) error {
	if err := validateInput(in); err != nil {
		return err
	}
	if _, err := authorizeTeamRef(ctx, s.recorder, tc, "player", in.FromTeamID); err != nil {
		return err
	}
	if _, err := authorizeTeamRef(ctx, s.recorder, tc, "player", in.ToTeamID); err != nil {
		return err
	}

	membershipID, err := s.ids.NewID()
	if err != nil {
		return fmt.Errorf("generate membership id: %w", err)
	}

	date := in.Date
	if date.IsZero() {
		date = s.now()
	}

	return s.uow.RunScoped(ctx, tc, func(ctx context.Context, repos *Repositories) error {
		if _, ok, err := repos.Players.GetByID(ctx, tc, playerID); err != nil {
			return fmt.Errorf("get player by id: %w", err)
		} else if !ok {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}

		closed, err := repos.Players.CloseMembership(ctx, tc, playerID, in.FromTeamID, date)
		if err != nil {
			return fmt.Errorf("close membership: %w", err)
		}
		if !closed {
			return fmt.Errorf("%w: player=%s has no open membership on team=%s", ErrNotFound, playerID, in.FromTeamID)
		}

		next := player.Membership{
			ID:        membershipID,
			PlayerID:  playerID,
			TeamID:    in.ToTeamID,
			StartDate: date,
		}
		ok, err := repos.Players.AddMembership(ctx, tc, next)
		if err != nil {
			return fmt.Errorf("add membership: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: team=%s", ErrNotFound, in.ToTeamID)
		}
		return nil
	})
}
