package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("FORUM_HOST", "talk.example.org")
	t.Setenv("API_USERNAME", "system")
	t.Setenv("API_KEY", "secret")
}

func TestLoadAppliesDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ForumHost != "talk.example.org" {
		t.Fatalf("unexpected forum_host: %s", cfg.ForumHost)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected log_level default: %s", cfg.LogLevel)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("unexpected request timeout: %v", cfg.RequestTimeout)
	}
}

func TestLoadOverridesFromEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("unexpected request timeout: %v", cfg.RequestTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log_level: %s", cfg.LogLevel)
	}
}

func TestLoadRequiresCredentials(t *testing.T) {
	cases := map[string]string{
		"FORUM_HOST":   "",
		"API_USERNAME": "",
		"API_KEY":      "",
	}
	for blank := range cases {
		setRequired(t)
		t.Setenv(blank, "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when %s is empty", blank)
		}
	}
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	setRequired(t)
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}
