package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"famcal/models"
	"famcal/utils"

	"github.com/rs/zerolog"
)

const (
	defaultChannel  = "family"
	maxMessageLimit = 200
)

// GetMessages returns the recent history of a chat channel.
func (a *App) GetMessages(w http.ResponseWriter, r *http.Request) {
	if a.Store == nil {
		writeJSON(w, r, http.StatusInternalServerError, models.MessagesResponse{Messages: []models.Message{}, Error: notConfigured})
		return
	}

	q := r.URL.Query()
	channel := q.Get("channel")
	if channel == "" {
		channel = defaultChannel
	}
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 || limit > maxMessageLimit {
		limit = maxMessageLimit
	}

	msgs, err := a.Store.ListMessages(r.Context(), channel, limit)
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Str("channel", channel).Msg("list messages failed, returning empty list")
		writeJSON(w, r, http.StatusOK, models.MessagesResponse{Messages: []models.Message{}})
		return
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	writeJSON(w, r, http.StatusOK, models.MessagesResponse{Messages: msgs})
}

func (a *App) CreateMessage(w http.ResponseWriter, r *http.Request) {
	if a.Store == nil {
		writeError(w, r, http.StatusInternalServerError, notConfigured)
		return
	}

	var in models.MessageInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	in.Text = strings.TrimSpace(in.Text)
	if err := utils.ValidateMessageInput(in); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if in.Channel == "" {
		in.Channel = defaultChannel
	}

	msg, err := a.Store.CreateMessage(r.Context(), in)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("channel", in.Channel).Msg("create message")
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r, http.StatusCreated, models.MessageResponse{Message: msg})
}
