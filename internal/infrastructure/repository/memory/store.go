package memory

import (
	"context"
	"sync"

	"github.com/coachstack/coachstack/internal/audit"
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
	"github.com/coachstack/coachstack/internal/domain/tenant"
	"github.com/coachstack/coachstack/internal/usecase"
)

// Store is the in-memory implementation of the scoped unit of work. Every
// repository method runs inside RunScoped, which serializes access and keeps
// a pre-transaction snapshot so an error rolls the whole step back, matching
// the transactional semantics of the SQL store.
type Store struct {
	mu       sync.Mutex
	recorder audit.Recorder

	coaches       map[string]coach.Coach
	organizations map[string]organization.Organization

	teams     map[string]team.Team
	teamOrder []string

	players         map[string]player.Player
	playerOrder     []string
	memberships     map[string]player.Membership
	membershipOrder []string

	matches         map[string]match.Match
	matchOrder      []string
	teamStats       map[string]match.TeamStats
	playerStats     map[string]match.PlayerStats
	playerStatOrder []string

	schedules     map[string]schedule.Schedule
	scheduleOrder []string

	assessments     map[string]assessment.PhysicalAssessment
	assessmentOrder []string

	injuries    map[string]injury.Record
	injuryOrder []string

	championships     map[string]championship.Championship
	championshipOrder []string
	fixtures          map[string]championship.Fixture
	fixtureOrder      []string

	targets      map[string]targets.StatisticalTargets
	targetsOrder []string
}

func NewStore(recorder audit.Recorder) *Store {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}

	return &Store{
		recorder:      recorder,
		coaches:       make(map[string]coach.Coach),
		organizations: make(map[string]organization.Organization),
		teams:         make(map[string]team.Team),
		players:       make(map[string]player.Player),
		memberships:   make(map[string]player.Membership),
		matches:       make(map[string]match.Match),
		teamStats:     make(map[string]match.TeamStats),
		playerStats:   make(map[string]match.PlayerStats),
		schedules:     make(map[string]schedule.Schedule),
		assessments:   make(map[string]assessment.PhysicalAssessment),
		injuries:      make(map[string]injury.Record),
		championships: make(map[string]championship.Championship),
		fixtures:      make(map[string]championship.Fixture),
		targets:       make(map[string]targets.StatisticalTargets),
	}
}

// RunScoped runs fn against a repository bundle under the store lock. On
// error the store is restored to its pre-fn state and the error propagates
// unchanged.
func (s *Store) RunScoped(ctx context.Context, tc tenant.Context, fn func(ctx context.Context, repos *usecase.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	repos := &usecase.Repositories{
		Coaches:       &CoachRepository{store: s},
		Organizations: &OrganizationRepository{store: s},
		Teams:         &TeamRepository{store: s},
		Players:       &PlayerRepository{store: s},
		Matches:       &MatchRepository{store: s},
		Schedules:     &ScheduleRepository{store: s},
		Assessments:   &AssessmentRepository{store: s},
		Injuries:      &InjuryRepository{store: s},
		Championships: &ChampionshipRepository{store: s},
		Targets:       &TargetsRepository{store: s},
	}

	if err := fn(ctx, repos); err != nil {
		s.restore(snap)
		return err
	}

	return nil
}

type snapshot struct {
	coaches       map[string]coach.Coach
	organizations map[string]organization.Organization

	teams     map[string]team.Team
	teamOrder []string

	players         map[string]player.Player
	playerOrder     []string
	memberships     map[string]player.Membership
	membershipOrder []string

	matches         map[string]match.Match
	matchOrder      []string
	teamStats       map[string]match.TeamStats
	playerStats     map[string]match.PlayerStats
	playerStatOrder []string

	schedules     map[string]schedule.Schedule
	scheduleOrder []string

	assessments     map[string]assessment.PhysicalAssessment
	assessmentOrder []string

	injuries    map[string]injury.Record
	injuryOrder []string

	championships     map[string]championship.Championship
	championshipOrder []string
	fixtures          map[string]championship.Fixture
	fixtureOrder      []string

	targets      map[string]targets.StatisticalTargets
	targetsOrder []string
}

// snapshot copies the maps and order slices only. Stored values are never
// mutated in place (writes always replace whole entries), so a shallow copy
// is enough for restore.
func (s *Store) snapshot() snapshot {
	return snapshot{
		coaches:           copyMap(s.coaches),
		organizations:     copyMap(s.organizations),
		teams:             copyMap(s.teams),
		teamOrder:         copySlice(s.teamOrder),
		players:           copyMap(s.players),
		playerOrder:       copySlice(s.playerOrder),
		memberships:       copyMap(s.memberships),
		membershipOrder:   copySlice(s.membershipOrder),
		matches:           copyMap(s.matches),
		matchOrder:        copySlice(s.matchOrder),
		teamStats:         copyMap(s.teamStats),
		playerStats:       copyMap(s.playerStats),
		playerStatOrder:   copySlice(s.playerStatOrder),
		schedules:         copyMap(s.schedules),
		scheduleOrder:     copySlice(s.scheduleOrder),
		assessments:       copyMap(s.assessments),
		assessmentOrder:   copySlice(s.assessmentOrder),
		injuries:          copyMap(s.injuries),
		injuryOrder:       copySlice(s.injuryOrder),
		championships:     copyMap(s.championships),
		championshipOrder: copySlice(s.championshipOrder),
		fixtures:          copyMap(s.fixtures),
		fixtureOrder:      copySlice(s.fixtureOrder),
		targets:           copyMap(s.targets),
		targetsOrder:      copySlice(s.targetsOrder),
	}
}

func (s *Store) restore(snap snapshot) {
	s.coaches = snap.coaches
	s.organizations = snap.organizations
	s.teams = snap.teams
	s.teamOrder = snap.teamOrder
	s.players = snap.players
	s.playerOrder = snap.playerOrder
	s.memberships = snap.memberships
	s.membershipOrder = snap.membershipOrder
	s.matches = snap.matches
	s.matchOrder = snap.matchOrder
	s.teamStats = snap.teamStats
	s.playerStats = snap.playerStats
	s.playerStatOrder = snap.playerStatOrder
	s.schedules = snap.schedules
	s.scheduleOrder = snap.scheduleOrder
	s.assessments = snap.assessments
	s.assessmentOrder = snap.assessmentOrder
	s.injuries = snap.injuries
	s.injuryOrder = snap.injuryOrder
	s.championships = snap.championships
	s.championshipOrder = snap.championshipOrder
	s.fixtures = snap.fixtures
	s.fixtureOrder = snap.fixtureOrder
	s.targets = snap.targets
	s.targetsOrder = snap.targetsOrder
}

func (s *Store) denyEmptyScope(ctx context.Context, tc tenant.Context, entity string) {
	s.recorder.Record(ctx, audit.Decision{
		Effect:         audit.EffectDeny,
		Entity:         entity,
		CoachID:        tc.CoachID,
		OrganizationID: tc.OrganizationID,
		Reason:         "empty tenant scope",
	})
}

func (s *Store) denyOutOfScope(ctx context.Context, tc tenant.Context, entity, entityID, teamID string) {
	s.recorder.Record(ctx, audit.Decision{
		Effect:         audit.EffectDeny,
		Entity:         entity,
		EntityID:       entityID,
		TeamID:         teamID,
		CoachID:        tc.CoachID,
		OrganizationID: tc.OrganizationID,
		Reason:         "row outside tenant scope",
	})
}

func copyMap[V any](in map[string]V) map[string]V {
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copySlice(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func removeID(ids []string, id string) []string {
	out := ids[:0:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
