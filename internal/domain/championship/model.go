package championship

import (
	"fmt"
	"time"
)

// Championship is a competition a team is enrolled in, owned directly by
// that team.
type Championship struct {
	ID        string
	TeamID    string
	Name      string
	Season    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Championship) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("championship id is required")
	}
	if c.TeamID == "" {
		return fmt.Errorf("championship team id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("championship name is required")
	}

	return nil
}

// Fixture is a championship game. It carries no team column of its own; its
// ownership chain is fixture → championship → team.
type Fixture struct {
	ID             string
	ChampionshipID string
	Round          int
	Opponent       string
	PlayedAt       time.Time
	HomeScore      *int
	AwayScore      *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (f Fixture) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("fixture id is required")
	}
	if f.ChampionshipID == "" {
		return fmt.Errorf("fixture championship id is required")
	}
	if f.Opponent == "" {
		return fmt.Errorf("fixture opponent is required")
	}

	return nil
}

// Patch carries updatable championship attributes.
type Patch struct {
	Name   string
	Season string
}

// FixturePatch carries updatable fixture attributes.
type FixturePatch struct {
	Round     int
	Opponent  string
	PlayedAt  time.Time
	HomeScore *int
	AwayScore *int
}
