package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	gomail "gopkg.in/gomail.v2"

	"github.com/kanyangaboRichard/Job-Board-System/internal/domain"
)

type captureSender struct {
	messages []*gomail.Message
	err      error
}

func (s *captureSender) DialAndSend(m ...*gomail.Message) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, m...)
	return nil
}

func TestStatusChangedHeaders(t *testing.T) {
	sender := &captureSender{}
	m := NewWithSender(sender, "no-reply@jobboard.example", "system@jobboard.example")

	err := m.StatusChanged(context.Background(), domain.StatusNotification{
		RecipientEmail: "jane@example.com",
		ApplicantName:  "Jane",
		JobTitle:       "Backend Engineer",
		Status:         domain.StatusAccepted,
	})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if len(sender.messages) != 1 {
		t.Fatalf("expected one message, got %d", len(sender.messages))
	}
	msg := sender.messages[0]
	if got := msg.GetHeader("To"); len(got) != 1 || got[0] != "jane@example.com" {
		t.Fatalf("unexpected To: %v", got)
	}
	if got := msg.GetHeader("Cc"); len(got) != 1 || got[0] != "system@jobboard.example" {
		t.Fatalf("unexpected Cc: %v", got)
	}
	subject := msg.GetHeader("Subject")
	if len(subject) != 1 || !strings.Contains(subject[0], "accepted") {
		t.Fatalf("unexpected subject: %v", subject)
	}
}

func TestStatusChangedRejectedBodyCarriesReason(t *testing.T) {
	body := buildBody(domain.StatusNotification{
		ApplicantName: "Jane",
		JobTitle:      "Backend Engineer",
		Status:        domain.StatusRejected,
		ResponseNote:  "Position already filled",
	})
	if !strings.Contains(body, "Reason for rejection") || !strings.Contains(body, "Position already filled") {
		t.Fatalf("rejection reason missing from body:\n%s", body)
	}
}

func TestStatusChangedAcceptedNoteIsInformational(t *testing.T) {
	body := buildBody(domain.StatusNotification{
		JobTitle:     "Backend Engineer",
		Status:       domain.StatusAccepted,
		ResponseNote: "Onboarding starts Monday",
	})
	if strings.Contains(body, "Reason for rejection") {
		t.Fatalf("accepted mail must not carry a rejection block:\n%s", body)
	}
	if !strings.Contains(body, "Onboarding starts Monday") {
		t.Fatalf("note missing from body:\n%s", body)
	}
}

func TestStatusChangedSurfacesTransportError(t *testing.T) {
	sender := &captureSender{err: errors.New("connection refused")}
	m := NewWithSender(sender, "no-reply@jobboard.example", "")

	err := m.StatusChanged(context.Background(), domain.StatusNotification{
		RecipientEmail: "jane@example.com",
		JobTitle:       "Backend Engineer",
		Status:         domain.StatusAccepted,
	})
	if err == nil {
		t.Fatal("expected transport error to surface")
	}
}

func TestStatusChangedCancelledContext(t *testing.T) {
	sender := &captureSender{}
	m := NewWithSender(sender, "no-reply@jobboard.example", "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := m.StatusChanged(ctx, domain.StatusNotification{RecipientEmail: "jane@example.com"}); err == nil {
		t.Fatal("expected context error")
	}
	if len(sender.messages) != 0 {
		t.Fatal("no message should be sent after cancellation")
	}
}
