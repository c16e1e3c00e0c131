package memory

import (
	"github.com/coachstack/coachstack/internal/domain/assessment"
	"github.com/coachstack/coachstack/internal/domain/championship"
	"github.com/coachstack/coachstack/internal/domain/coach"
	"github.com/coachstack/coachstack/internal/domain/injury"
	"github.com/coachstack/coachstack/internal/domain/match"
	"github.com/coachstack/coachstack/internal/domain/organization"
	"github.com/coachstack/coachstack/internal/domain/player"
	"github.com/coachstack/coachstack/internal/domain/schedule"
	"github.com/coachstack/coachstack/internal/domain/targets"
	"github.com/coachstack/coachstack/internal/domain/team"
)

// Seed helpers insert rows directly, bypassing tenant scoping. They exist so
// tests and local bootstrap can lay out multi-tenant data before exercising
// the scoped paths.

func (s *Store) SeedCoach(c coach.Coach) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coaches[c.ID] = c
}

func (s *Store) SeedOrganization(o organization.Organization) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.organizations[o.ID] = o
}

func (s *Store) SeedTeam(t team.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[t.ID] = t
	s.teamOrder = append(s.teamOrder, t.ID)
}

func (s *Store) SeedPlayer(p player.Player, memberships ...player.Membership) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[p.ID] = clonePlayer(p)
	s.playerOrder = append(s.playerOrder, p.ID)
	for _, m := range memberships {
		s.memberships[m.ID] = cloneMembership(m)
		s.membershipOrder = append(s.membershipOrder, m.ID)
	}
}

func (s *Store) SeedMatch(m match.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[m.ID] = m
	s.matchOrder = append(s.matchOrder, m.ID)
}

func (s *Store) SeedSchedule(sc schedule.Schedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules[sc.ID] = cloneSchedule(sc)
	s.scheduleOrder = append(s.scheduleOrder, sc.ID)
}

func (s *Store) SeedAssessment(a assessment.PhysicalAssessment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assessments[a.ID] = a
	s.assessmentOrder = append(s.assessmentOrder, a.ID)
}

func (s *Store) SeedInjury(rec injury.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.injuries[rec.ID] = cloneInjury(rec)
	s.injuryOrder = append(s.injuryOrder, rec.ID)
}

func (s *Store) SeedChampionship(c championship.Championship, fixtures ...championship.Fixture) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.championships[c.ID] = c
	s.championshipOrder = append(s.championshipOrder, c.ID)
	for _, f := range fixtures {
		s.fixtures[f.ID] = cloneFixture(f)
		s.fixtureOrder = append(s.fixtureOrder, f.ID)
	}
}

func (s *Store) SeedTargets(t targets.StatisticalTargets) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.targets[t.ID] = cloneTargets(t)
	s.targetsOrder = append(s.targetsOrder, t.ID)
}
