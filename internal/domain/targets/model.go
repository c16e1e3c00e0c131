package targets

import (
	"fmt"
	"time"
)

// StatisticalTargets holds the per-position numeric goals a team sets for a
// season. Values is free-form and persisted as JSONB.
type StatisticalTargets struct {
	ID        string
	TeamID    string
	Position  string
	Season    string
	Values    map[string]float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t StatisticalTargets) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("targets id is required")
	}
	if t.TeamID == "" {
		return fmt.Errorf("targets team id is required")
	}
	if t.Position == "" {
		return fmt.Errorf("targets position is required")
	}

	return nil
}

// Patch carries updatable target attributes.
type Patch struct {
	Position string
	Season   string
	Values   map[string]float64
}
