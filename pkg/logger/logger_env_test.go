package logger_test

import (
	"log/slog"
	"testing"

	"github.com/MouhibAssas/HotelRoomsManagement/pkg/logger"
)

func TestDetectEnv(t *testing.T) {
	t.Setenv("APP_ENV", "")
	if got := logger.DetectEnv(); got != logger.EnvDev {
		t.Fatalf("default should be dev, got %q", got)
	}

	t.Setenv("APP_ENV", "staging")
	if got := logger.DetectEnv(); got != logger.EnvStage {
		t.Fatalf("expected stage, got %q", got)
	}

	t.Setenv("APP_ENV", "production")
	if got := logger.DetectEnv(); got != logger.EnvProd {
		t.Fatalf("expected prod, got %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := logger.ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := logger.ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestParseBackend(t *testing.T) {
	if b, err := logger.ParseBackend("ZAP"); err != nil || b != logger.BackendZap {
		t.Fatalf("got %q, %v", b, err)
	}
	if b, err := logger.ParseBackend(""); err != nil || b != "" {
		t.Fatalf("got %q, %v", b, err)
	}
	if _, err := logger.ParseBackend("syslog"); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
