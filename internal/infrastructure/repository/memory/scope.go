package memory

import (
	"time"

	"github.com/coachstack/coachstack/internal/domain/player"
	"github.com/coachstack/coachstack/internal/domain/schedule"
	"github.com/coachstack/coachstack/internal/domain/tenant"
)

// Ownership-chain resolution, the in-memory mirror of the SQL-side scope
// predicates. Each helper answers "which team owns this row", walking the
// same chains the EXISTS subqueries walk; callers combine the answer with
// tc.Allows.

// playerTeams returns the teams the player currently belongs to through
// open memberships.
func (s *Store) playerTeams(playerID string) []string {
	var out []string
	for _, id := range s.membershipOrder {
		m := s.memberships[id]
		if m.PlayerID == playerID && m.Open() {
			out = append(out, m.TeamID)
		}
	}
	return out
}

// playerVisible reports whether any open membership of the player points at
// a team inside the tenant boundary.
func (s *Store) playerVisible(tc tenant.Context, playerID string) bool {
	for _, teamID := range s.playerTeams(playerID) {
		if tc.Allows(teamID) {
			return true
		}
	}
	return false
}

// openMembership finds the player's open membership on the given team.
func (s *Store) openMembership(playerID, teamID string) (player.Membership, bool) {
	for _, id := range s.membershipOrder {
		m := s.memberships[id]
		if m.PlayerID == playerID && m.TeamID == teamID && m.Open() {
			return m, true
		}
	}
	return player.Membership{}, false
}

// matchTeam resolves the owning team of a match, the intermediate hop for
// match stat rows.
func (s *Store) matchTeam(matchID string) (string, bool) {
	m, ok := s.matches[matchID]
	if !ok {
		return "", false
	}
	return m.TeamID, true
}

// championshipTeam resolves the owning team of a championship, the
// intermediate hop for fixtures.
func (s *Store) championshipTeam(championshipID string) (string, bool) {
	c, ok := s.championships[championshipID]
	if !ok {
		return "", false
	}
	return c.TeamID, true
}

// scheduleTeam resolves the owning team of a schedule, the intermediate hop
// for day rows.
func (s *Store) scheduleTeam(scheduleID string) (string, bool) {
	sc, ok := s.schedules[scheduleID]
	if !ok {
		return "", false
	}
	return sc.TeamID, true
}

func cloneMetrics(in map[string]float64) map[string]float64 {
	if in == nil {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneDays(in []schedule.Day) []schedule.Day {
	if in == nil {
		return nil
	}
	out := make([]schedule.Day, len(in))
	copy(out, in)
	return out
}

func cloneTimePtr(in *time.Time) *time.Time {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}

func cloneIntPtr(in *int) *int {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
