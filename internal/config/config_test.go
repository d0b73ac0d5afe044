package config

import (
	"path/filepath"
	"testing"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("PROSPEC_DATA_DIR", "/tmp/prospec-test")
	t.Setenv("PROSPEC_DEV_MODE", "true")
	t.Setenv("PROSPEC_AGENT_NAME", "Sophie Martin")

	cfg := FromEnv()
	if cfg.DataDir != "/tmp/prospec-test" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "/tmp/prospec-test")
	}
	if !cfg.DevMode {
		t.Error("expected DevMode true")
	}
	if cfg.AgentName != "Sophie Martin" {
		t.Errorf("AgentName = %q, want %q", cfg.AgentName, "Sophie Martin")
	}
}

func TestDatabasePath(t *testing.T) {
	cfg := Config{DataDir: "/data/prospec"}
	path, err := cfg.DatabasePath()
	if err != nil {
		t.Fatalf("database path: %v", err)
	}
	if path != filepath.Join("/data/prospec", "prospec.db") {
		t.Errorf("path = %q", path)
	}
}

func TestDatabasePathDefault(t *testing.T) {
	cfg := Config{}
	path, err := cfg.DatabasePath()
	if err != nil {
		t.Fatalf("database path: %v", err)
	}
	if filepath.Base(path) != "prospec.db" {
		t.Errorf("path = %q, want prospec.db basename", path)
	}
}
