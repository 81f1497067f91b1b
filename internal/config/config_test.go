package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("DB_URL", "")
	t.Setenv("REPORT_DIR", "")
	t.Setenv("GAME_START_DATE", "")
	t.Setenv("RANDOM_SEED", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv: %q", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.DBURL != "" {
		t.Fatalf("expected empty DBURL, got %q", cfg.DBURL)
	}
	if cfg.ReportDir != "reports" {
		t.Fatalf("unexpected ReportDir: %q", cfg.ReportDir)
	}
	if cfg.RandomSeed != 0 {
		t.Fatalf("unexpected RandomSeed: %d", cfg.RandomSeed)
	}
	if cfg.DatasetWorkers != 4 {
		t.Fatalf("unexpected DatasetWorkers: %d", cfg.DatasetWorkers)
	}
	if !cfg.GameStartDate.Equal(cfg.GameStartDate.Truncate(24 * time.Hour)) {
		t.Fatalf("expected midnight start date, got %s", cfg.GameStartDate)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_GameStartDateParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("GAME_START_DATE", "2025-07-01")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	want := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	if !cfg.GameStartDate.Equal(want) {
		t.Fatalf("unexpected GameStartDate: %s", cfg.GameStartDate)
	}
}

func TestLoad_GameStartDateRejectsGarbage(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("GAME_START_DATE", "July 1st")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed GAME_START_DATE")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev/123"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/123" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
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

func TestLoad_PyroscopeAppNameFallsBackToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "franchise-manager-test")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "franchise-manager-test" {
		t.Fatalf("unexpected PyroscopeAppName: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_DatasetWorkersValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DATASET_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for DATASET_WORKERS=0")
	}
}

func TestLoad_LogLevelParsing(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"warning": "warn",
		"error":   "error",
		"bogus":   "info",
	}
	for input, want := range cases {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("LOG_LEVEL", input)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config with LOG_LEVEL=%s: %v", input, err)
		}
		if got := cfg.LogLevel.String(); got != want {
			t.Fatalf("LOG_LEVEL=%s: got level %q, want %q", input, got, want)
		}
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" a, ,b ,,c")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected splitCSV result: %v", got)
	}
}
