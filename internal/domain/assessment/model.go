package assessment

import (
	"fmt"
	"time"
)

// PhysicalAssessment records a player's measurements taken under a team.
// The row carries the owning team directly; creation additionally verifies
// the player is currently rostered on that team.
type PhysicalAssessment struct {
	ID         string
	TeamID     string
	PlayerID   string
	AssessedAt time.Time
	HeightCM   float64
	WeightKG   float64
	BodyFatPct float64
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (a PhysicalAssessment) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("assessment id is required")
	}
	if a.TeamID == "" {
		return fmt.Errorf("assessment team id is required")
	}
	if a.PlayerID == "" {
		return fmt.Errorf("assessment player id is required")
	}

	return nil
}

// Patch carries updatable assessment attributes.
type Patch struct {
	AssessedAt time.Time
	HeightCM   float64
	WeightKG   float64
	BodyFatPct float64
	Notes      string
}
