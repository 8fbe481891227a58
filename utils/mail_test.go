package utils_test

import (
	"famcal/models"
	"famcal/utils"
	"strings"
	"testing"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

func TestFeedbackMail(t *testing.T) {
	from := mail.NewEmail("famcal", "noreply@famcal.app")

	tests := []struct {
		name        string
		fb          models.Feedback
		wantSubject string
	}{
		{
			name:        "With sender email",
			fb:          models.Feedback{Email: strPtr("dad@example.com"), Message: "love it"},
			wantSubject: "New feedback from dad@example.com",
		},
		{
			name:        "Anonymous",
			fb:          models.Feedback{Message: "love it"},
			wantSubject: "New feedback from anonymous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := utils.FeedbackMail(from, "team@famcal.app", tt.fb)
			if msg.Subject != tt.wantSubject {
				t.Errorf("Subject = %q, want %q", msg.Subject, tt.wantSubject)
			}
			if got := msg.Personalizations[0].To[0].Address; got != "team@famcal.app" {
				t.Errorf("To = %q", got)
			}
			if !strings.Contains(msg.Content[0].Value, "love it") {
				t.Errorf("plain content %q does not carry the message", msg.Content[0].Value)
			}
		})
	}
}

func TestFeedbackMailEscapesHTML(t *testing.T) {
	from := mail.NewEmail("famcal", "noreply@famcal.app")
	msg := utils.FeedbackMail(from, "team@famcal.app", models.Feedback{Message: "<script>x</script>"})
	html := msg.Content[1].Value
	if strings.Contains(html, "<script>") {
		t.Errorf("html content not escaped: %s", html)
	}
}

func TestEarlyAccessMail(t *testing.T) {
	msg := utils.EarlyAccessMail(mail.NewEmail("famcal", "noreply@famcal.app"), "mom@example.com")
	if got := msg.Personalizations[0].To[0].Address; got != "mom@example.com" {
		t.Errorf("To = %q, want mom@example.com", got)
	}
	if msg.From.Address != "noreply@famcal.app" {
		t.Errorf("From = %q", msg.From.Address)
	}
}
