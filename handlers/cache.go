package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

const (
	scopeEvents = "events"
	scopeTasks  = "tasks"
)

// serveCached writes a cached list response if there is one. Otherwise it
// returns the generation to hand to writeAndCache.
func (a *App) serveCached(w http.ResponseWriter, r *http.Request, scope, key string) (string, bool) {
	if a.Cache == nil {
		return "", false
	}
	body, gen, ok := a.Cache.Get(r.Context(), scope, key)
	if !ok {
		return gen, false
	}
	w.Header().Set("X-Cache", "HIT")
	writeRaw(w, http.StatusOK, body)
	return gen, true
}

// writeAndCache sends a successful list response and stores it for key
// under gen.
func (a *App) writeAndCache(w http.ResponseWriter, r *http.Request, scope, gen, key string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("scope", scope).Msg("marshal list response")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if a.Cache != nil {
		a.Cache.Set(r.Context(), scope, gen, key, body)
		w.Header().Set("X-Cache", "MISS")
	}
	writeRaw(w, http.StatusOK, body)
}

func (a *App) invalidate(r *http.Request, scope string) {
	if a.Cache != nil {
		a.Cache.Invalidate(r.Context(), scope)
	}
}
