package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SKATETRACK_STORE", "SKATETRACK_UID", "SKATETRACK_TIMEZONE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Store != "sqlite" {
		t.Errorf("Store = %q, want sqlite", cfg.Store)
	}
	if cfg.UID != "local" {
		t.Errorf("UID = %q, want local", cfg.UID)
	}
	if cfg.TimeZone != "America/Sao_Paulo" {
		t.Errorf("TimeZone = %q, want America/Sao_Paulo", cfg.TimeZone)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SKATETRACK_STORE", "redis")
	t.Setenv("SKATETRACK_REDIS_URL", "redis://cache:6379/1")
	t.Setenv("SKATETRACK_UID", "uid-42")

	cfg := Load()

	if cfg.Store != "redis" {
		t.Errorf("Store = %q, want redis", cfg.Store)
	}
	if cfg.RedisURL != "redis://cache:6379/1" {
		t.Errorf("RedisURL = %q", cfg.RedisURL)
	}
	if cfg.UID != "uid-42" {
		t.Errorf("UID = %q, want uid-42", cfg.UID)
	}
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	cfg := Config{Store: "dynamo"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() error = nil, want error")
	}
}
