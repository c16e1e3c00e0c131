package postgres

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/coachstack/coachstack/internal/audit"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	"github.com/coachstack/coachstack/internal/platform/logging"
	"github.com/coachstack/coachstack/internal/usecase"
)

// TxRunner is the single entry point to the database. Every request runs
// inside exactly one transaction with the tenant identity pinned into
// transaction-local settings, so the row security policies and the
// query-level predicates see the same scope.
type TxRunner struct {
	db       *sqlx.DB
	recorder audit.Recorder
	logger   *logging.Logger
}

func NewTxRunner(db *sqlx.DB, recorder audit.Recorder, logger *logging.Logger) *TxRunner {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &TxRunner{db: db, recorder: recorder, logger: logger}
}

func (r *TxRunner) RunScoped(ctx context.Context, tc tenant.Context, fn func(ctx context.Context, repos *usecase.Repositories) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin scoped transaction")
	}

	if err := applyTenantScope(ctx, tx, tc); err != nil {
		return rollbackOn(tx, errors.Wrap(err, "apply tenant scope"))
	}

	s := &session{q: tx, tc: tc, recorder: r.recorder}
	repos := &usecase.Repositories{
		Coaches:       &CoachRepository{s},
		Organizations: &OrganizationRepository{s},
		Teams:         &TeamRepository{s},
		Players:       &PlayerRepository{s},
		Matches:       &MatchRepository{s},
		Schedules:     &ScheduleRepository{s},
		Assessments:   &AssessmentRepository{s},
		Injuries:      &InjuryRepository{s},
		Championships: &ChampionshipRepository{s},
		Targets:       &TargetsRepository{s},
	}

	if err := fn(ctx, repos); err != nil {
		return rollbackOn(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit scoped transaction")
	}
	return nil
}

// applyTenantScope assigns all three settings on every transaction, empty
// string when absent: a previous transaction's scope can never bleed through
// a pooled connection. The third set_config argument makes the value
// transaction-local.
func applyTenantScope(ctx context.Context, tx *sqlx.Tx, tc tenant.Context) error {
	_, err := tx.ExecContext(ctx,
		`SELECT set_config('app.team_ids', $1, true),
		        set_config('app.coach_id', $2, true),
		        set_config('app.org_id', $3, true)`,
		strings.Join(tc.TeamIDs, ","),
		tc.CoachID,
		tc.OrganizationID,
	)
	return err
}

// rollbackOn propagates the original error; a rollback failure is combined
// onto it rather than replacing it.
func rollbackOn(tx *sqlx.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		return errors.CombineErrors(err, errors.Wrap(rbErr, "rollback scoped transaction"))
	}
	return err
}

// session is the per-transaction state shared by the repository bundle.
type session struct {
	q        sqlx.ExtContext
	tc       tenant.Context
	recorder audit.Recorder
}

func (s *session) denyEmptyScope(ctx context.Context, tc tenant.Context, entity string) {
	s.recorder.Record(ctx, audit.Decision{
		Effect:         audit.EffectDeny,
		Entity:         entity,
		CoachID:        tc.CoachID,
		OrganizationID: tc.OrganizationID,
		Reason:         "empty tenant scope",
	})
}

func (s *session) denyOutOfScope(ctx context.Context, tc tenant.Context, entity, entityID string) {
	s.recorder.Record(ctx, audit.Decision{
		Effect:         audit.EffectDeny,
		Entity:         entity,
		EntityID:       entityID,
		CoachID:        tc.CoachID,
		OrganizationID: tc.OrganizationID,
		Reason:         "row outside tenant scope",
	})
}
