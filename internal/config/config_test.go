package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HealthAddr != ":8080" {
		t.Fatalf("unexpected default health addr: %q", cfg.HealthAddr)
	}
	if cfg.DBMaxOpenConns != 10 {
		t.Fatalf("unexpected default max open conns: %d", cfg.DBMaxOpenConns)
	}
	if !cfg.AuditLogEnabled {
		t.Fatalf("expected audit log enabled by default")
	}
	if cfg.AuditWorkers != 4 {
		t.Fatalf("unexpected default audit workers: %d", cfg.AuditWorkers)
	}
	if cfg.UptraceEnabled {
		t.Fatalf("expected uptrace disabled by default")
	}
	if !cfg.DBDisablePreparedBinary {
		t.Fatalf("expected DBDisablePreparedBinary=true by default")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "coachstack-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "coachstack-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_AuditWorkerValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("zero workers rejected", func(t *testing.T) {
		t.Setenv("AUDIT_WORKERS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for AUDIT_WORKERS=0")
		}
	})

	t.Run("invalid worker count rejected", func(t *testing.T) {
		t.Setenv("AUDIT_WORKERS", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid AUDIT_WORKERS")
		}
	})
}

func TestLoad_DBPoolParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("DB_MAX_IDLE_CONNS", "8")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBMaxOpenConns != 25 {
		t.Fatalf("unexpected max open conns: %d", cfg.DBMaxOpenConns)
	}
	if cfg.DBMaxIdleConns != 8 {
		t.Fatalf("unexpected max idle conns: %d", cfg.DBMaxIdleConns)
	}
	if cfg.DBConnMaxLifetime != 5*time.Minute {
		t.Fatalf("unexpected conn max lifetime: %s", cfg.DBConnMaxLifetime)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}
