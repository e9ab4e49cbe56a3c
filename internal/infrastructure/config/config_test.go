package config

import (
	"context"
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.Port)
	}
	if cfg.TokenTTLMinutes != 60 {
		t.Fatalf("unexpected default token ttl %d", cfg.TokenTTLMinutes)
	}
	if cfg.RenderTimeoutSeconds != 10 {
		t.Fatalf("unexpected default render timeout %d", cfg.RenderTimeoutSeconds)
	}
	if cfg.UploadDir != "static/profile_pics" {
		t.Fatalf("unexpected default upload dir %q", cfg.UploadDir)
	}
	if cfg.DB.Driver != "postgres" {
		t.Fatalf("unexpected default driver %q", cfg.DB.Driver)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9999")
	t.Setenv("TOKEN_TTL_MINUTES", "5")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "file:test.db")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "9999" || cfg.TokenTTLMinutes != 5 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.DB.Driver != "sqlite" || cfg.DB.DSN != "file:test.db" {
		t.Fatalf("db overrides not applied: %+v", cfg.DB)
	}
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv removes it for this test.
	t.Setenv("JWT_SECRET", "placeholder")
	os.Unsetenv("JWT_SECRET")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset")
	}
}
