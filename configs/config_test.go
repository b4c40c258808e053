package config

import (
	"errors"
	"testing"
)

var configKeys = []string{
	"PORT", "STORE_BACKEND", "DATABASE_URL", "GCP_PROJECT_ID", "ADMIN_PASSWORD",
	"ADMIN_EMAIL", "BREVO_API_KEY", "EMAIL_SENDER", "EMAIL_SENDER_NAME",
	"APP_URL", "STATIC_DIR", "PENDING_DIGEST_SCHEDULE", "CORS_ALLOW_ORIGINS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("DATABASE_URL", "postgres://localhost/faq")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.StoreBackend != BackendPostgres {
		t.Errorf("expected postgres backend, got %s", cfg.StoreBackend)
	}
	if cfg.AppURL != "http://localhost:8080" {
		t.Errorf("expected default app url, got %s", cfg.AppURL)
	}
	if cfg.CORSAllowOrigins != "*" {
		t.Errorf("expected wildcard CORS, got %s", cfg.CORSAllowOrigins)
	}
	if cfg.EmailConfigured() {
		t.Error("email should not be configured without Brevo credentials")
	}
}

func TestLoad_AppURLTrailingSlash(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("APP_URL", "https://faq.example.com/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AppURL != "https://faq.example.com" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.AppURL)
	}
}

func TestLoad_RequiresAdminPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "memory")

	_, err := Load()
	if !errors.Is(err, ErrMissingAdminPassword) {
		t.Fatalf("expected ErrMissingAdminPassword, got %v", err)
	}
}

func TestValidate_Backends(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"postgres with url", Config{AdminPassword: "x", StoreBackend: BackendPostgres, DatabaseURL: "dsn"}, false},
		{"postgres without url", Config{AdminPassword: "x", StoreBackend: BackendPostgres}, true},
		{"sqlite without url", Config{AdminPassword: "x", StoreBackend: BackendSQLite}, true},
		{"firestore with project", Config{AdminPassword: "x", StoreBackend: BackendFirestore, GCPProjectID: "p"}, false},
		{"firestore without project", Config{AdminPassword: "x", StoreBackend: BackendFirestore}, true},
		{"memory", Config{AdminPassword: "x", StoreBackend: BackendMemory}, false},
		{"unknown backend", Config{AdminPassword: "x", StoreBackend: "mongo"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
