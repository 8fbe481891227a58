// Package assistant answers family-scheduling questions, either through a
// chat-completion API or with keyword-based canned replies.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"famcal/models"

	"github.com/sashabaranov/go-openai"
)

var ErrEmptyReply = errors.New("assistant returned no reply")

// Agenda is the schedule snapshot passed to the model as context.
type Agenda struct {
	Now    time.Time
	Events []models.Event
	Tasks  []models.Task
}

type Client struct {
	api   *openai.Client
	model string
}

// New builds a client for an OpenAI-compatible endpoint. An empty baseURL
// means the public OpenAI API.
func New(apiKey, model, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &Client{api: openai.NewClientWithConfig(cfg), model: model}
}

func (c *Client) Reply(ctx context.Context, message string, agenda Agenda) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt(agenda)},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Temperature: 0.4,
		MaxTokens:   400,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}
	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", ErrEmptyReply
	}
	return reply, nil
}

const maxAgendaItems = 10

func SystemPrompt(a Agenda) string {
	var b strings.Builder
	b.WriteString("You are a friendly family scheduling assistant. ")
	b.WriteString("Help plan events and tasks, suggest good time slots, and keep answers short.\n")
	if !a.Now.IsZero() {
		fmt.Fprintf(&b, "Current time: %s\n", a.Now.Format(time.RFC1123))
	}

	if len(a.Events) > 0 {
		b.WriteString("\nUpcoming events:\n")
		for i, e := range a.Events {
			if i == maxAgendaItems {
				break
			}
			b.WriteString("- " + e.Title)
			if e.StartTime != nil {
				b.WriteString(" at " + e.StartTime.Format("Mon Jan 2 15:04"))
			}
			if e.Location != nil && *e.Location != "" {
				b.WriteString(" (" + *e.Location + ")")
			}
			b.WriteString("\n")
		}
	}

	if len(a.Tasks) > 0 {
		b.WriteString("\nOpen tasks:\n")
		for i, t := range a.Tasks {
			if i == maxAgendaItems {
				break
			}
			b.WriteString("- " + t.Title)
			if t.DueDate != nil {
				b.WriteString(", due " + t.DueDate.Format("Mon Jan 2"))
			}
			if t.Priority != nil {
				b.WriteString(", " + *t.Priority + " priority")
			}
			if t.DurationMin != nil {
				fmt.Fprintf(&b, ", ~%d min", *t.DurationMin)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// CannedReply answers without a model.
func CannedReply(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "study") || strings.Contains(lower, "when"):
		return "Based on your routine, tomorrow morning between 9 and 11 AM looks clear and lines up with your peak focus window."
	case strings.Contains(lower, "add") || strings.Contains(lower, "schedule"):
		return "Done! I've added it to your schedule. Want a reminder 10 minutes before?"
	default:
		return "Got it! I'll keep that in mind. Would you like me to suggest an optimal time based on your energy levels?"
	}
}
