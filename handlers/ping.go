package handlers

import (
	"context"
	"net/http"
	"time"

	"famcal/models"
)

func (a *App) Ping(w http.ResponseWriter, r *http.Request) {
	msg := a.PingMessage
	if msg == "" {
		msg = "ping"
	}
	writeJSON(w, r, http.StatusOK, models.MessageBody{Message: msg})
}

func (a *App) Demo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.MessageBody{Message: "Hello from the famcal server"})
}

// Health reports each backend as up, down or disabled. Any backend that is
// down turns the response into a 503.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	resp := models.HealthResponse{Status: "ok", Database: "disabled", Cache: "disabled"}
	if a.Store != nil {
		resp.Database = backendStatus(ctx, a.Store.Ping)
	}
	if a.CacheCheck != nil {
		resp.Cache = backendStatus(ctx, a.CacheCheck)
	}

	code := http.StatusOK
	if resp.Database == "down" || resp.Cache == "down" {
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, resp)
}

func backendStatus(ctx context.Context, check func(context.Context) error) string {
	if err := check(ctx); err != nil {
		return "down"
	}
	return "up"
}
