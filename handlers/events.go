package handlers

import (
	"errors"
	"net/http"

	"famcal/models"
	"famcal/utils"

	"github.com/rs/zerolog"
)

// GetEvents lists events whose start_time lies within the optional from/to
// query bounds. Query failures degrade to an empty list.
func (a *App) GetEvents(w http.ResponseWriter, r *http.Request) {
	if a.Store == nil {
		writeJSON(w, r, http.StatusInternalServerError, models.EventsResponse{Events: []models.Event{}, Error: notConfigured})
		return
	}

	q := r.URL.Query()
	filter := models.EventFilter{From: q.Get("from"), To: q.Get("to")}
	key := "from=" + filter.From + "&to=" + filter.To
	gen, hit := a.serveCached(w, r, scopeEvents, key)
	if hit {
		return
	}

	events, err := a.Store.ListEvents(r.Context(), filter)
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("list events failed, returning empty list")
		writeJSON(w, r, http.StatusOK, models.EventsResponse{Events: []models.Event{}})
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	a.writeAndCache(w, r, scopeEvents, gen, key, models.EventsResponse{Events: events})
}

func (a *App) CreateEvent(w http.ResponseWriter, r *http.Request) {
	if a.Store == nil {
		writeError(w, r, http.StatusInternalServerError, notConfigured)
		return
	}

	var in models.EventInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateEventInput(in, true); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if in.Status == nil {
		in.Status = strPtr("planned")
	}

	event, err := a.Store.CreateEvent(r.Context(), in)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("create event")
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	a.invalidate(r, scopeEvents)

	zerolog.Ctx(r.Context()).Info().Str("event_id", event.ID).Msg("event created")
	writeJSON(w, r, http.StatusCreated, models.EventResponse{Event: event})
}

func (a *App) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	if a.Store == nil {
		writeError(w, r, http.StatusInternalServerError, notConfigured)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var in models.EventInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateEventInput(in, false); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	event, err := a.Store.UpdateEvent(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "event not found")
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Str("event_id", id).Msg("update event")
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	a.invalidate(r, scopeEvents)

	writeJSON(w, r, http.StatusOK, models.EventResponse{Event: event})
}

func (a *App) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if a.Store == nil {
		writeError(w, r, http.StatusInternalServerError, notConfigured)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.Store.DeleteEvent(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "event not found")
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Str("event_id", id).Msg("delete event")
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	a.invalidate(r, scopeEvents)

	w.WriteHeader(http.StatusNoContent)
}
