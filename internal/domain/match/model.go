package match

import (
	"fmt"
	"time"
)

// Match is owned directly by a team.
type Match struct {
	ID        string
	TeamID    string
	Opponent  string
	Location  string
	PlayedAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.TeamID == "" {
		return fmt.Errorf("match team id is required")
	}
	if m.Opponent == "" {
		return fmt.Errorf("match opponent is required")
	}

	return nil
}

// TeamStats is the team-level result sheet of a match, one hop from the
// owning team via the match row.
type TeamStats struct {
	ID           string
	MatchID      string
	GoalsFor     int
	GoalsAgainst int
	Possession   int
	Metrics      map[string]float64
}

// PlayerStats is a per-player stat line for a match, one hop from the
// owning team via the match row. Metrics is free-form and persisted as
// JSONB.
type PlayerStats struct {
	ID       string
	MatchID  string
	PlayerID string
	Minutes  int
	Metrics  map[string]float64
}

// Patch carries updatable match attributes.
type Patch struct {
	Opponent string
	Location string
	PlayedAt time.Time
}
