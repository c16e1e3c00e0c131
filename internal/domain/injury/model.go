package injury

import (
	"fmt"
	"time"
)

// Record is an injury entry for a player under a team. Like assessments,
// the row carries the owning team directly and creation verifies the player
// is currently rostered on that team.
type Record struct {
	ID          string
	TeamID      string
	PlayerID    string
	Description string
	OccurredAt  time.Time
	RecoveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("injury id is required")
	}
	if r.TeamID == "" {
		return fmt.Errorf("injury team id is required")
	}
	if r.PlayerID == "" {
		return fmt.Errorf("injury player id is required")
	}
	if r.Description == "" {
		return fmt.Errorf("injury description is required")
	}

	return nil
}

// Patch carries updatable injury attributes.
type Patch struct {
	Description string
	OccurredAt  time.Time
	RecoveredAt *time.Time
}
