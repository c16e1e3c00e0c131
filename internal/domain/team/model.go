package team

import (
	"fmt"
	"time"
)

// Team is owned by exactly one coach or one organization. Ownership is set
// at creation and never reassigned; update paths must not touch the owner
// columns.
type Team struct {
	ID             string
	Name           string
	Category       string
	Season         string
	CoachID        string
	OrganizationID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.CoachID == "" && t.OrganizationID == "" {
		return fmt.Errorf("team owner is required")
	}
	if t.CoachID != "" && t.OrganizationID != "" {
		return fmt.Errorf("team cannot be owned by both a coach and an organization")
	}

	return nil
}

// Patch carries updatable team attributes. Owner fields are deliberately
// absent: ownership never changes after creation.
type Patch struct {
	Name     string
	Category string
	Season   string
}
