package utils_test

import (
	"famcal/models"
	"famcal/utils"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "Valid email should pass validation", email: "user@example.com", want: true},
		{name: "Plus addressing should pass validation", email: "user+tag@example.com", want: true},
		{name: "Missing @ should fail", email: "userexample.com", want: false},
		{name: "Missing TLD should fail", email: "user@example", want: false},
		{name: "Whitespace should fail", email: "us er@example.com", want: false},
		{name: "Empty should fail", email: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidateEmail(tt.email)
			if got := err == nil; got != tt.want {
				t.Errorf("ValidateEmail(%q) error = %v, want valid %v", tt.email, err, tt.want)
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "Plain title", title: "Soccer practice", wantErr: false},
		{name: "Apostrophes are allowed", title: "Mom's birthday", wantErr: false},
		{name: "Blank title", title: "   ", wantErr: true},
		{name: "Too long", title: strings.Repeat("a", 256), wantErr: true},
		{name: "Exactly 255", title: strings.Repeat("a", 255), wantErr: false},
		{name: "Hangul counts characters not bytes", title: strings.Repeat("가", 100), wantErr: false},
		{name: "255 Hangul characters", title: strings.Repeat("가", 255), wantErr: false},
		{name: "256 Hangul characters", title: strings.Repeat("가", 256), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := utils.ValidateTitle(tt.title); (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTaskInput(t *testing.T) {
	tests := []struct {
		name    string
		in      models.TaskInput
		create  bool
		wantErr string
	}{
		{name: "Create with title only", in: models.TaskInput{Title: strPtr("Dishes")}, create: true},
		{name: "Create without title", in: models.TaskInput{}, create: true, wantErr: "title is required"},
		{name: "Update without title", in: models.TaskInput{Status: strPtr("done")}, create: false},
		{name: "Bad priority", in: models.TaskInput{Title: strPtr("x"), Priority: strPtr("urgent")}, create: true, wantErr: "priority must be one of: low, medium, high"},
		{name: "Bad status", in: models.TaskInput{Status: strPtr("later")}, wantErr: "status must be one of: open, done"},
		{name: "Negative duration", in: models.TaskInput{DurationMin: intPtr(-5)}, wantErr: "duration_min must be at least 0"},
		{name: "Zero duration", in: models.TaskInput{DurationMin: intPtr(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidateTaskInput(tt.in, tt.create)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateTaskInput() unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("ValidateTaskInput() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEventInput(t *testing.T) {
	tests := []struct {
		name    string
		in      models.EventInput
		create  bool
		wantErr bool
	}{
		{name: "Create with title", in: models.EventInput{Title: strPtr("Dentist"), StartTime: strPtr("2025-03-01T09:00")}, create: true},
		{name: "Create without title", in: models.EventInput{StartTime: strPtr("2025-03-01T09:00")}, create: true, wantErr: true},
		{name: "Update with empty title", in: models.EventInput{Title: strPtr("")}, wantErr: true},
		{name: "Known status", in: models.EventInput{Status: strPtr("completed")}},
		{name: "Unknown status", in: models.EventInput{Status: strPtr("maybe")}, wantErr: true},
		{name: "Long Hangul title", in: models.EventInput{Title: strPtr(strings.Repeat("가", 200))}, create: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := utils.ValidateEventInput(tt.in, tt.create); (err != nil) != tt.wantErr {
				t.Errorf("ValidateEventInput() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMessageInput(t *testing.T) {
	if err := utils.ValidateMessageInput(models.MessageInput{Text: "  "}); err == nil {
		t.Error("expected error for blank text")
	}
	if err := utils.ValidateMessageInput(models.MessageInput{Text: strings.Repeat("x", 2001)}); err == nil {
		t.Error("expected error for oversized text")
	}
	if err := utils.ValidateMessageInput(models.MessageInput{Text: "dinner at 7?"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
