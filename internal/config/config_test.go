package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.DataFile != "users.json" {
		t.Errorf("expected default data file users.json, got %s", cfg.DataFile)
	}
	if cfg.MediaDir != "user_data" {
		t.Errorf("expected default media dir user_data, got %s", cfg.MediaDir)
	}
	if cfg.SessionTTLMinutes != 120 {
		t.Errorf("expected default session ttl 120, got %d", cfg.SessionTTLMinutes)
	}
	if cfg.UsePostgres() {
		t.Error("expected file store by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("PORT", "9000")
	os.Setenv("DATA_FILE", "/tmp/patients.json")
	os.Setenv("DATABASE_URL", "postgres://localhost/neuroscreen")
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.Port)
	}
	if cfg.DataFile != "/tmp/patients.json" {
		t.Errorf("expected overridden data file, got %s", cfg.DataFile)
	}
	if !cfg.UsePostgres() {
		t.Error("expected postgres store when DATABASE_URL is set")
	}
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	os.Clearenv()
	os.Setenv("ENV", "production")
	defer os.Clearenv()

	if _, err := Load(); err == nil {
		t.Error("expected error for production without JWT_SECRET")
	}

	os.Setenv("JWT_SECRET", "super-secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsProduction() {
		t.Error("expected production mode")
	}
}
