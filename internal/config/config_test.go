package config

import (
	"strings"
	"testing"
	"time"
)

func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	t.Setenv("APP_ENV", EnvDev)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, nil)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	switch {
	case cfg.HTTPAddr != ":8080":
		t.Fatalf("unexpected http addr %q", cfg.HTTPAddr)
	case cfg.DBEnabled:
		t.Fatalf("expected memory repositories by default")
	case !cfg.DBBinaryParameters:
		t.Fatalf("expected binary parameters on by default")
	case !cfg.CacheEnabled || cfg.CacheTTL != 30*time.Second:
		t.Fatalf("unexpected cache defaults: %v %s", cfg.CacheEnabled, cfg.CacheTTL)
	case cfg.LivePollInterval != 30*time.Second:
		t.Fatalf("unexpected default live poll interval: %s", cfg.LivePollInterval)
	case cfg.LiveWorkers != 8:
		t.Fatalf("unexpected default live workers: %d", cfg.LiveWorkers)
	case cfg.UploadMaxBytes != 5<<20:
		t.Fatalf("unexpected default upload limit: %d", cfg.UploadMaxBytes)
	case cfg.AdminToken != "":
		t.Fatalf("expected no admin token by default in dev")
	case len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*":
		t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
	case cfg.PyroscopeAppName != cfg.ServiceName:
		t.Fatalf("pyroscope app name should default to service name, got %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"APP_ENV":                    " PROD ",
		"ADMIN_TOKEN":                " cms-secret ",
		"LIVE_POLL_INTERVAL":         "10s",
		"PUBLIC_BASE_URL":            "https://portal.example.et/",
		"UPLOAD_MAX_BYTES":           "1048576",
		"CORS_ALLOWED_ORIGINS":       " https://portal.example.et, ,http://localhost:5173 ",
		"PPROF_ENABLED":              "true",
		"PPROF_ADDR":                 "  ",
		"UPTRACE_ENABLED":            "true",
		"OTEL_EXPORTER_OTLP_HEADERS": `x-other=1, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`,
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	switch {
	case cfg.AppEnv != EnvProd:
		t.Fatalf("unexpected app env %q", cfg.AppEnv)
	case cfg.AdminToken != "cms-secret":
		t.Fatalf("expected trimmed admin token, got %q", cfg.AdminToken)
	case cfg.LivePollInterval != 10*time.Second:
		t.Fatalf("unexpected live poll interval: %s", cfg.LivePollInterval)
	case cfg.PublicBaseURL != "https://portal.example.et":
		t.Fatalf("unexpected public base url %q", cfg.PublicBaseURL)
	case cfg.UploadMaxBytes != 1<<20:
		t.Fatalf("unexpected upload limit %d", cfg.UploadMaxBytes)
	case len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://localhost:5173":
		t.Fatalf("unexpected CORS origins: %+v", cfg.CORSAllowedOrigins)
	case cfg.PprofAddr != ":6060":
		t.Fatalf("expected default pprof addr, got %q", cfg.PprofAddr)
	case cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317":
		t.Fatalf("unexpected uptrace dsn %q", cfg.UptraceDSN)
	}
}

func TestLoad_Rejects(t *testing.T) {
	cases := []struct {
		name    string
		vars    map[string]string
		wantErr string
	}{
		{"unknown app env", map[string]string{"APP_ENV": "invalid"}, "APP_ENV must be one of"},
		{"prod without admin token", map[string]string{"APP_ENV": EnvProd, "ADMIN_TOKEN": ""}, "ADMIN_TOKEN is required"},
		{"db enabled flag", map[string]string{"DB_ENABLED": "maybe"}, "parse DB_ENABLED"},
		{"cache ttl", map[string]string{"CACHE_TTL": "bad"}, "parse CACHE_TTL"},
		{"non positive timeout", map[string]string{"APP_READ_TIMEOUT": "-1s"}, "parse APP_READ_TIMEOUT"},
		{"poll rate outside the offered set", map[string]string{"LIVE_POLL_INTERVAL": "5s"}, "parse LIVE_POLL_INTERVAL"},
		{"zero workers", map[string]string{"LIVE_WORKERS": "0"}, "LIVE_WORKERS must be > 0"},
		{"negative upload limit", map[string]string{"UPLOAD_MAX_BYTES": "-1"}, "UPLOAD_MAX_BYTES must be > 0"},
		{"base url without scheme", map[string]string{"PUBLIC_BASE_URL": "portal.example.et"}, "PUBLIC_BASE_URL must be an http"},
		{"uptrace without dsn", map[string]string{"UPTRACE_ENABLED": "true", "UPTRACE_DSN": "", "OTEL_EXPORTER_OTLP_HEADERS": ""}, "UPTRACE_DSN is required"},
		{"pyroscope without server", map[string]string{"PYROSCOPE_ENABLED": "true", "PYROSCOPE_SERVER_ADDRESS": ""}, "PYROSCOPE_SERVER_ADDRESS is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setEnv(t, tc.vars)

			_, err := Load()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoad_ReportsEveryParseFailure(t *testing.T) {
	setEnv(t, map[string]string{"DB_ENABLED": "maybe", "LIVE_WORKERS": "many"})

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, key := range []string{"DB_ENABLED", "LIVE_WORKERS"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("error %q should mention %s", err, key)
		}
	}
}
