package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anjiri1684/faq_board/models"
)

type recordingMailer struct {
	sent []Message
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, msg Message) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func strPtr(s string) *string { return &s }

func TestNotifyAdmin(t *testing.T) {
	mailer := &recordingMailer{}
	n := NewNotifier(mailer, "admin@example.com", "https://faq.example.com")

	err := n.NotifyAdmin(context.Background(), models.Question{
		Question: "How do I register?",
		Name:     "Ada",
		Email:    strPtr("ada@example.com"),
	})
	if err != nil {
		t.Fatalf("NotifyAdmin failed: %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if msg.ToEmail != "admin@example.com" {
		t.Errorf("expected admin recipient, got %s", msg.ToEmail)
	}
	for _, want := range []string{"How do I register?", "Ada", "(ada@example.com)", "https://faq.example.com/admin.html"} {
		if !strings.Contains(msg.HTMLContent, want) {
			t.Errorf("admin email missing %q", want)
		}
	}
}

func TestNotifyAdmin_SkipsWhenUnconfigured(t *testing.T) {
	mailer := &recordingMailer{}
	tests := []struct {
		name     string
		notifier *Notifier
	}{
		{"no mailer", NewNotifier(nil, "admin@example.com", "http://x")},
		{"no admin address", NewNotifier(mailer, "", "http://x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.notifier.NotifyAdmin(context.Background(), models.Question{Question: "q"}); err != nil {
				t.Errorf("expected skip without error, got %v", err)
			}
		})
	}
	if len(mailer.sent) != 0 {
		t.Errorf("expected no messages, got %d", len(mailer.sent))
	}
}

func TestNotifySubmitter(t *testing.T) {
	mailer := &recordingMailer{}
	n := NewNotifier(mailer, "admin@example.com", "https://faq.example.com")

	err := n.NotifySubmitter(context.Background(), models.Question{
		Question: "How do I register?",
		Name:     "Ada",
		Email:    strPtr("ada@example.com"),
		Answer:   strPtr("See the guide."),
	})
	if err != nil {
		t.Fatalf("NotifySubmitter failed: %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if msg.ToEmail != "ada@example.com" || msg.ToName != "Ada" {
		t.Errorf("unexpected recipient %s <%s>", msg.ToName, msg.ToEmail)
	}
	for _, want := range []string{"How do I register?", "See the guide.", "https://faq.example.com/"} {
		if !strings.Contains(msg.HTMLContent, want) {
			t.Errorf("submitter email missing %q", want)
		}
	}
}

func TestNotifySubmitter_NoEmail(t *testing.T) {
	mailer := &recordingMailer{}
	n := NewNotifier(mailer, "admin@example.com", "http://x")

	if err := n.NotifySubmitter(context.Background(), models.Question{Answer: strPtr("a")}); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Errorf("expected no messages, got %d", len(mailer.sent))
	}
}

func TestNotifier_PropagatesMailerError(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp down")}
	n := NewNotifier(mailer, "admin@example.com", "http://x")

	if err := n.NotifyAdmin(context.Background(), models.Question{Question: "q"}); err == nil {
		t.Error("expected mailer error to be returned")
	}
}

func TestNotifyPendingDigest(t *testing.T) {
	mailer := &recordingMailer{}
	n := NewNotifier(mailer, "admin@example.com", "http://x")

	if err := n.NotifyPendingDigest(context.Background(), nil); err != nil {
		t.Fatalf("empty digest failed: %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("empty digest should not send, sent %d", len(mailer.sent))
	}

	err := n.NotifyPendingDigest(context.Background(), []models.Question{
		{Name: "Ada", Question: "first?"},
		{Name: "Bob", Question: "second?"},
	})
	if err != nil {
		t.Fatalf("NotifyPendingDigest failed: %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(mailer.sent))
	}
	if !strings.Contains(mailer.sent[0].Subject, "(2)") {
		t.Errorf("expected count in subject, got %q", mailer.sent[0].Subject)
	}
	if !strings.Contains(mailer.sent[0].HTMLContent, "second?") {
		t.Error("digest missing question text")
	}
}

func TestBrevoService_Send(t *testing.T) {
	var got brevoPayload
	var apiKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("api-key")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"messageId":"<1@brevo>"}`))
	}))
	defer srv.Close()

	s := NewBrevoService("key-123", "noreply@example.com", "FAQ")
	s.Endpoint = srv.URL

	err := s.Send(context.Background(), Message{
		ToEmail:     "ada@example.com",
		Subject:     "hello",
		HTMLContent: "<p>hi</p>",
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if apiKey != "key-123" {
		t.Errorf("expected api key header, got %q", apiKey)
	}
	if len(got.To) != 1 || got.To[0]["name"] != "ada" {
		t.Errorf("expected recipient name derived from address, got %v", got.To)
	}
	if got.Sender["email"] != "noreply@example.com" {
		t.Errorf("unexpected sender %v", got.Sender)
	}
}

func TestBrevoService_SendErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":"invalid_parameter"}`))
	}))
	defer srv.Close()

	s := NewBrevoService("key", "noreply@example.com", "FAQ")
	s.Endpoint = srv.URL

	if err := s.Send(context.Background(), Message{ToEmail: "ada@example.com"}); err == nil {
		t.Error("expected error on non-201 response")
	}
	if err := s.Send(context.Background(), Message{ToEmail: "not-an-address"}); !errors.Is(err, ErrInvalidRecipient) {
		t.Errorf("expected ErrInvalidRecipient, got %v", err)
	}
}
