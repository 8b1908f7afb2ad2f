package mailer

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/kanyangaboRichard/Job-Board-System/config"
	"github.com/kanyangaboRichard/Job-Board-System/internal/domain"
)

// Sender abstracts the SMTP dialer so tests can swap the transport.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	sender      Sender
	from        string
	systemEmail string
}

func New(cfg *config.Config) *Mailer {
	from := cfg.EmailUser
	if from == "" {
		from = "no-reply@example.com"
	}
	return &Mailer{
		sender:      gomail.NewDialer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass),
		from:        from,
		systemEmail: cfg.SystemEmail,
	}
}

// NewWithSender is used by tests and by callers providing their own transport.
func NewWithSender(sender Sender, from, systemEmail string) *Mailer {
	return &Mailer{sender: sender, from: from, systemEmail: systemEmail}
}

// StatusChanged sends the status-change mail. Single attempt; the caller
// decides what to do with a failure.
func (m *Mailer) StatusChanged(ctx context.Context, n domain.StatusNotification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "Job Board System")
	msg.SetHeader("To", n.RecipientEmail)
	if m.systemEmail != "" {
		msg.SetHeader("Cc", m.systemEmail)
	}
	msg.SetHeader("Subject", fmt.Sprintf("Your Application for %q has been %s", n.JobTitle, n.Status))
	msg.SetBody("text/html", buildBody(n))
	return m.sender.DialAndSend(msg)
}

func buildBody(n domain.StatusNotification) string {
	name := n.ApplicantName
	if name == "" {
		name = "Applicant"
	}
	body := fmt.Sprintf(`<p>Hello %s,</p>
<p>Your application for <strong>%s</strong> has been <strong>%s</strong>.</p>
`, name, n.JobTitle, n.Status)

	if n.Status == domain.StatusRejected && n.ResponseNote != "" {
		body += fmt.Sprintf(`<div style="background-color:#ffe6e6; padding:10px; border-radius:8px; margin:10px 0;">
<p><strong>Reason for rejection:</strong></p>
<p style="color:#b30000;">%s</p>
</div>
`, n.ResponseNote)
	} else if n.ResponseNote != "" {
		body += fmt.Sprintf("<p><em>Message from Admin:</em> %s</p>\n", n.ResponseNote)
	}

	body += `<p>Thank you for applying!</p>
<br/>
<p>Best regards,<br/>Job Board Team</p>`
	return body
}
