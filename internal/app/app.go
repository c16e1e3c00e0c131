package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sourcegraph/conc"

	"github.com/coachstack/coachstack/internal/audit"
	"github.com/coachstack/coachstack/internal/config"
	"github.com/coachstack/coachstack/internal/infrastructure/repository/postgres"
	"github.com/coachstack/coachstack/internal/observability"
	idgen "github.com/coachstack/coachstack/internal/platform/id"
	"github.com/coachstack/coachstack/internal/platform/logging"
	"github.com/coachstack/coachstack/internal/usecase"
)

// Services bundles every use case entry point the process exposes.
type Services struct {
	Resolver      *usecase.TenantResolver
	Teams         *usecase.TeamService
	Players       *usecase.PlayerService
	Matches       *usecase.MatchService
	Schedules     *usecase.ScheduleService
	Assessments   *usecase.AssessmentService
	Injuries      *usecase.InjuryService
	Championships *usecase.ChampionshipService
	Targets       *usecase.TargetsService
}

// App owns the process lifecycle: database pool, audit pipeline, telemetry
// and the health listener.
type App struct {
	cfg    config.Config
	logger *logging.Logger

	db       *sqlx.DB
	recorder *audit.AsyncRecorder
	health   *http.Server
	pprof    *http.Server

	shutdownUptrace func(context.Context) error
	stopPyroscope   func() error

	Services Services
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	shutdownUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}
	stopPyroscope, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init pyroscope: %w", err)
	}

	db, err := OpenDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var sink audit.Recorder = audit.NopRecorder{}
	if cfg.AuditLogEnabled {
		sink = audit.NewLogRecorder(logger)
	}
	recorder, err := audit.NewAsyncRecorder(sink, cfg.AuditWorkers)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	runner := postgres.NewTxRunner(db, recorder, logger)
	ids := idgen.NewRandomGenerator()

	a := &App{
		cfg:             cfg,
		logger:          logger,
		db:              db,
		recorder:        recorder,
		shutdownUptrace: shutdownUptrace,
		stopPyroscope:   stopPyroscope,
		Services: Services{
			Resolver:      usecase.NewTenantResolver(runner, logger),
			Teams:         usecase.NewTeamService(runner, ids, recorder),
			Players:       usecase.NewPlayerService(runner, ids, recorder),
			Matches:       usecase.NewMatchService(runner, ids, recorder),
			Schedules:     usecase.NewScheduleService(runner, ids, recorder),
			Assessments:   usecase.NewAssessmentService(runner, ids, recorder),
			Injuries:      usecase.NewInjuryService(runner, ids, recorder),
			Championships: usecase.NewChampionshipService(runner, ids, recorder),
			Targets:       usecase.NewTargetsService(runner, ids, recorder),
		},
	}

	a.health = &http.Server{
		Addr:         cfg.HealthAddr,
		Handler:      a.healthHandler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	a.pprof, err = observability.StartPprofServer(cfg, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("start pprof server: %w", err)
	}

	return a, nil
}

// Run serves the health listener until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	var wg conc.WaitGroup
	serveErr := make(chan error, 1)

	wg.Go(func() {
		a.logger.Info("health server starting", "addr", a.health.Addr)
		if err := a.health.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	})

	select {
	case err := <-serveErr:
		wg.Wait()
		return fmt.Errorf("health server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := a.health.Shutdown(shutdownCtx)
	wg.Wait()
	if err != nil {
		return fmt.Errorf("shutdown health server: %w", err)
	}
	return nil
}

/// Close releases everything Run does not own: the audit pipeline drains
// before the database pool closes so queued decisions still log.
func (a *App) Close(ctx context.Context) error {
	var errs []error

	if err := observability.StopPprofServer(a.pprof, a.logger, 5*time.Second); err != nil {
		errs = append(errs, fmt.Errorf("stop pprof server: %w", err))
	}

	if err := a.recorder.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close audit recorder: %w", err))
	}

	if err := a.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	if a.stopPyroscope != nil {
		if err := a.stopPyroscope(); err != nil {
			errs = append(errs, fmt.Errorf("stop pyroscope: %w", err))
		}
	}
	if a.shutdownUptrace != nil {
		if err := a.shutdownUptrace(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown uptrace: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (a *App) healthHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := a.db.PingContext(ctx); err != nil {
			a.logger.WarnContext(r.Context(), "readiness probe failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("database unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	return mux
}
