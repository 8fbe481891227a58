package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"famcal/assistant"
	"famcal/models"

	"github.com/rs/zerolog"
)

const agendaWindow = 7 * 24 * time.Hour

// Chat relays a message to the assistant. Without a configured model, or
// with nothing to ask it, the reply comes from assistant.CannedReply.
func (a *App) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	message := strings.TrimSpace(req.Message)
	if a.Assistant == nil || message == "" {
		writeJSON(w, r, http.StatusOK, models.ChatResponse{Response: assistant.CannedReply(message)})
		return
	}

	reply, err := a.Assistant.Reply(r.Context(), message, a.agenda(r.Context()))
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("assistant reply")
		writeError(w, r, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, models.ChatResponse{Response: reply})
}

// agenda collects the coming week's events and the open tasks. Lookup
// failures just leave the section empty.
func (a *App) agenda(ctx context.Context) assistant.Agenda {
	now := a.clock()
	ag := assistant.Agenda{Now: now}
	if a.Store == nil {
		return ag
	}

	events, err := a.Store.ListEvents(ctx, models.EventFilter{
		From: now.UTC().Format(time.RFC3339),
		To:   now.Add(agendaWindow).UTC().Format(time.RFC3339),
	})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("agenda events lookup")
	}
	ag.Events = events

	tasks, err := a.Store.ListTasks(ctx, models.TaskFilter{Status: "open"})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("agenda tasks lookup")
	}
	ag.Tasks = tasks
	return ag
}
