package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendPostgres  = "postgres"
	BackendSQLite    = "sqlite"
	BackendFirestore = "firestore"
	BackendMemory    = "memory"
)

// Config is built once at startup and handed to every component that needs it.
type Config struct {
	Port                  string
	StoreBackend          string
	DatabaseURL           string
	GCPProjectID          string
	AdminPassword         string
	AdminEmail            string
	BrevoAPIKey           string
	EmailSender           string
	EmailSenderName       string
	AppURL                string
	StaticDir             string
	PendingDigestSchedule string
	CORSAllowOrigins      string
}

var ErrMissingAdminPassword = errors.New("ADMIN_PASSWORD is required")

// LoadEnv reads .env into the process environment if the file exists.
func LoadEnv() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}
}

// Load builds a Config from the process environment and validates it.
func Load() (Config, error) {
	cfg := Parse()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse reads the environment without validating. Tools that only touch the
// store use it together with ValidateStore.
func Parse() Config {
	cfg := Config{
		Port:                  valueOrDefault("PORT", "8080"),
		StoreBackend:          strings.ToLower(valueOrDefault("STORE_BACKEND", BackendPostgres)),
		DatabaseURL:           strings.TrimSpace(os.Getenv("DATABASE_URL")),
		GCPProjectID:          strings.TrimSpace(os.Getenv("GCP_PROJECT_ID")),
		AdminPassword:         os.Getenv("ADMIN_PASSWORD"),
		AdminEmail:            strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		BrevoAPIKey:           strings.TrimSpace(os.Getenv("BREVO_API_KEY")),
		EmailSender:           strings.TrimSpace(os.Getenv("EMAIL_SENDER")),
		EmailSenderName:       strings.TrimSpace(os.Getenv("EMAIL_SENDER_NAME")),
		StaticDir:             strings.TrimSpace(os.Getenv("STATIC_DIR")),
		PendingDigestSchedule: strings.TrimSpace(os.Getenv("PENDING_DIGEST_SCHEDULE")),
		CORSAllowOrigins:      valueOrDefault("CORS_ALLOW_ORIGINS", "*"),
	}
	cfg.AppURL = strings.TrimRight(valueOrDefault("APP_URL", "http://localhost:"+cfg.Port), "/")
	return cfg
}

func (c Config) Validate() error {
	if c.AdminPassword == "" {
		return ErrMissingAdminPassword
	}
	return c.ValidateStore()
}

func (c Config) ValidateStore() error {
	switch c.StoreBackend {
	case BackendPostgres, BackendSQLite:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for %s backend", c.StoreBackend)
		}
	case BackendFirestore:
		if c.GCPProjectID == "" {
			return errors.New("GCP_PROJECT_ID is required for firestore backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	return nil
}

// EmailConfigured reports whether the Brevo credentials are complete.
func (c Config) EmailConfigured() bool {
	return c.BrevoAPIKey != "" && c.EmailSender != "" && c.EmailSenderName != ""
}

func valueOrDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
