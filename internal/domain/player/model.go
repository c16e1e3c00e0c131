package player

import (
	"fmt"
	"time"
)

// Player is scoped to a tenant through its open team membership, not a
// direct team column.
type Player struct {
	ID        string
	Name      string
	Position  string
	BirthDate *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}

// Membership links a player to a team for a date range. EndDate nil means
// the membership is current; a player has at most one open membership per
// team scope.
type Membership struct {
	ID        string
	PlayerID  string
	TeamID    string
	StartDate time.Time
	EndDate   *time.Time
}

func (m Membership) Open() bool {
	return m.EndDate == nil
}

// Patch carries updatable player attributes.
type Patch struct {
	Name      string
	Position  string
	BirthDate *time.Time
}
