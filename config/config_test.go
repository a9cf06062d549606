package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"IMPORT_SESSION_TTL", "IMPORT_MAX_ROWS", "IMPORT_RATE_LIMIT", "LOG_LEVEL", "SERVER_PORT"} {
		t.Setenv(key, "")
	}
	// Blank values fall back to defaults for typed settings
	cfg := Load()

	if cfg.Import.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want 30m", cfg.Import.SessionTTL)
	}
	if cfg.Import.MaxRows != 5000 {
		t.Errorf("MaxRows = %d, want 5000", cfg.Import.MaxRows)
	}
	if cfg.Import.RateLimit != 30 {
		t.Errorf("RateLimit = %d, want 30", cfg.Import.RateLimit)
	}
	if cfg.Log.Level != slog.LevelInfo {
		t.Errorf("Log.Level = %v, want INFO", cfg.Log.Level)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("IMPORT_SESSION_TTL", "5m")
	t.Setenv("IMPORT_MAX_ROWS", "100")
	t.Setenv("IMPORT_RATE_LIMIT", "0")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_DB", "3")

	cfg := Load()

	if cfg.Import.SessionTTL != 5*time.Minute {
		t.Errorf("SessionTTL = %v, want 5m", cfg.Import.SessionTTL)
	}
	if cfg.Import.MaxRows != 100 {
		t.Errorf("MaxRows = %d, want 100", cfg.Import.MaxRows)
	}
	if cfg.Import.RateLimit != 0 {
		t.Errorf("RateLimit = %d, want 0", cfg.Import.RateLimit)
	}
	if cfg.Log.Level != slog.LevelDebug {
		t.Errorf("Log.Level = %v, want DEBUG", cfg.Log.Level)
	}
	if cfg.Redis.DB != 3 {
		t.Errorf("Redis.DB = %d, want 3", cfg.Redis.DB)
	}
}
