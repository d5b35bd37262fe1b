package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OBJECT_DIR", "")

	cfg := Load()
	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.ObjectDir != "objects" {
		t.Errorf("ObjectDir = %q", cfg.ObjectDir)
	}
	if cfg.DatabaseURL != "" || cfg.OpenAIKey != "" {
		t.Errorf("credentials not empty: %+v", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADDR", "0.0.0.0:9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/fishmaster")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OBJECT_DIR", "/tmp/objects")

	cfg := Load()
	if cfg.Addr != "0.0.0.0:9000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.DatabaseURL != "postgres://localhost/fishmaster" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.OpenAIKey != "sk-test" {
		t.Errorf("OpenAIKey = %q", cfg.OpenAIKey)
	}
	if cfg.ObjectDir != "/tmp/objects" {
		t.Errorf("ObjectDir = %q", cfg.ObjectDir)
	}
}
