package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestNewAdminGate_RequiresPassword(t *testing.T) {
	if _, err := NewAdminGate(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestAuthorize(t *testing.T) {
	gate, err := NewAdminGate("s3cret")
	if err != nil {
		t.Fatalf("NewAdminGate failed: %v", err)
	}

	tests := []struct {
		name     string
		supplied string
		want     bool
	}{
		{"exact match", "s3cret", true},
		{"empty", "", false},
		{"wrong", "admin123", false},
		{"case differs", "S3CRET", false},
		{"trailing space", "s3cret ", false},
		{"prefix", "s3cre", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gate.Authorize(tt.supplied); got != tt.want {
				t.Errorf("Authorize(%q) = %v, want %v", tt.supplied, got, tt.want)
			}
		})
	}
}

func TestProtected(t *testing.T) {
	gate, _ := NewAdminGate("s3cret")
	app := fiber.New()
	app.Get("/admin", gate.Protected(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid secret", "s3cret", fiber.StatusOK},
		{"missing header", "", fiber.StatusUnauthorized},
		{"wrong secret", "nope", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin", nil)
			if tt.header != "" {
				req.Header.Set(AdminPasswordHeader, tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test failed: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("expected %d, got %d", tt.want, resp.StatusCode)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, _ := app.Test(httptest.NewRequest("GET", "/", nil))
	if resp.Header.Get(RequestIDHeader) == "" {
		t.Error("expected generated request id")
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, _ = app.Test(req)
	if got := resp.Header.Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("expected echoed request id, got %q", got)
	}
}
