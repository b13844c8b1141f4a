package config

import (
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "FINVIZ_EXPORT_URL", "HTTP_TIMEOUT_SECS",
		"OPENAI_API_KEY", "OPENAI_MODEL",
		"DASH_PASSWORD_HASH", "DASH_TOKEN_SECRET", "DASH_TOKEN_TTL_SECS",
		"ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Port != 8080 {
		t.Errorf("default port: got %d", cfg.Port)
	}
	if cfg.HTTPTimeoutSecs != 15 {
		t.Errorf("default timeout: got %d", cfg.HTTPTimeoutSecs)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("default model: got %s", cfg.OpenAIModel)
	}
	if cfg.AuthTokenTTLSecs != 3600 {
		t.Errorf("default token ttl: got %d", cfg.AuthTokenTTLSecs)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("default origins: got %v", cfg.AllowedOrigins)
	}
	if cfg.AuthEnabled() {
		t.Error("auth should be disabled without a password hash")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("FINVIZ_EXPORT_URL", "https://elite.finviz.com/export.ashx?v=111&auth=tok")
	t.Setenv("ALLOWED_ORIGINS", "https://dash.example.com, https://alt.example.com")

	cfg := Load()
	if cfg.Port != 9090 {
		t.Errorf("port override: got %d", cfg.Port)
	}
	if cfg.FinvizExportURL == "" {
		t.Error("export URL not loaded")
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://alt.example.com" {
		t.Errorf("origins: got %v", cfg.AllowedOrigins)
	}
}

func TestValidateRequiresExportURL(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error without FINVIZ_EXPORT_URL")
	}
	if !strings.Contains(err.Error(), "FINVIZ_EXPORT_URL") {
		t.Fatalf("diagnostic should name the variable: %v", err)
	}
}

func TestValidateRequiresTokenSecretWithPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("FINVIZ_EXPORT_URL", "https://elite.finviz.com/export.ashx")
	t.Setenv("DASH_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")

	cfg := Load()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error without DASH_TOKEN_SECRET")
	}

	t.Setenv("DASH_TOKEN_SECRET", "0123456789abcdef0123456789abcdef")
	cfg = Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.AuthEnabled() {
		t.Error("auth should be enabled with a password hash")
	}
}
