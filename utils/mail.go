package utils

import (
	"context"
	"fmt"
	"html"

	"famcal/models"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends notification emails through SendGrid.
type Mailer struct {
	client     *sendgrid.Client
	from       *mail.Email
	feedbackTo string
}

func NewMailer(apiKey, from, feedbackTo string) *Mailer {
	return &Mailer{
		client:     sendgrid.NewSendClient(apiKey),
		from:       mail.NewEmail("famcal", from),
		feedbackTo: feedbackTo,
	}
}

// NotifyFeedback forwards a feedback note to the team inbox. It is a no-op
// when no inbox is configured.
func (m *Mailer) NotifyFeedback(ctx context.Context, fb models.Feedback) error {
	if m.feedbackTo == "" {
		return nil
	}
	return m.send(ctx, FeedbackMail(m.from, m.feedbackTo, fb))
}

func (m *Mailer) ConfirmEarlyAccess(ctx context.Context, email string) error {
	return m.send(ctx, EarlyAccessMail(m.from, email))
}

func (m *Mailer) send(ctx context.Context, msg *mail.SGMailV3) error {
	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	log.Debug().Int("status", resp.StatusCode).Str("subject", msg.Subject).Msg("email sent")
	return nil
}

func FeedbackMail(from *mail.Email, to string, fb models.Feedback) *mail.SGMailV3 {
	sender := "anonymous"
	if fb.Email != nil && *fb.Email != "" {
		sender = *fb.Email
	}
	subject := "New feedback from " + sender
	plain := fmt.Sprintf("From: %s\n\n%s", sender, fb.Message)
	htmlContent := fmt.Sprintf("<p><strong>From:</strong> %s</p><p>%s</p>",
		html.EscapeString(sender), html.EscapeString(fb.Message))
	return mail.NewSingleEmail(from, subject, mail.NewEmail("", to), plain, htmlContent)
}

func EarlyAccessMail(from *mail.Email, to string) *mail.SGMailV3 {
	subject := "You're on the famcal early access list"
	plain := "Thanks for signing up! We'll let you know as soon as your family calendar is ready."
	htmlContent := "<strong>Thanks for signing up!</strong> We'll let you know as soon as your family calendar is ready."
	return mail.NewSingleEmail(from, subject, mail.NewEmail("", to), plain, htmlContent)
}
