package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"famcal/models"
	"famcal/utils"

	"github.com/rs/zerolog"
)

const notifyTimeout = 5 * time.Second

// EarlyAccess records a waitlist signup. Storage problems never reach the
// caller: the response only says whether the row was stored.
func (a *App) EarlyAccess(w http.ResponseWriter, r *http.Request) {
	var ea models.EarlyAccess
	if err := decodeJSON(w, r, &ea); err != nil || utils.ValidateEmail(ea.Email) != nil {
		writeJSON(w, r, http.StatusBadRequest, models.SubmissionResponse{OK: false, Error: "Valid email is required"})
		return
	}
	if !a.allow(w, r, "early-access") {
		return
	}
	ea.UserAgent = strPtr(utils.GetUserAgent(r))

	stored := false
	if a.Store != nil {
		if err := a.Store.SaveEarlyAccess(r.Context(), ea); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("save early access signup")
		} else {
			stored = true
		}
	}

	if a.Notifier != nil && stored {
		ctx, cancel := context.WithTimeout(r.Context(), notifyTimeout)
		defer cancel()
		if err := a.Notifier.ConfirmEarlyAccess(ctx, ea.Email); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("early access confirmation email")
		}
	}

	writeJSON(w, r, http.StatusOK, models.SubmissionResponse{OK: true, Stored: stored})
}

func (a *App) Feedback(w http.ResponseWriter, r *http.Request) {
	var fb models.Feedback
	if err := decodeJSON(w, r, &fb); err != nil || strings.TrimSpace(fb.Message) == "" {
		writeJSON(w, r, http.StatusBadRequest, models.SubmissionResponse{OK: false, Error: "Message is required"})
		return
	}
	if !a.allow(w, r, "feedback") {
		return
	}

	stored := false
	if a.Store != nil {
		if err := a.Store.SaveFeedback(r.Context(), fb); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("save feedback")
		} else {
			stored = true
		}
	}

	if a.Notifier != nil {
		ctx, cancel := context.WithTimeout(r.Context(), notifyTimeout)
		defer cancel()
		if err := a.Notifier.NotifyFeedback(ctx, fb); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("feedback notification email")
		}
	}

	writeJSON(w, r, http.StatusOK, models.SubmissionResponse{OK: true, Stored: stored})
}

// allow applies the per-client rate limit for route. It fails open when the
// limiter itself errors.
func (a *App) allow(w http.ResponseWriter, r *http.Request, route string) bool {
	if a.Limiter == nil {
		return true
	}
	ok, err := a.Limiter.Allow(r.Context(), route+":"+utils.HashClientKey(route, utils.GetIP(r, a.TrustedProxyHops)))
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Str("route", route).Msg("rate limiter unavailable")
		return true
	}
	if !ok {
		w.Header().Set("Retry-After", "60")
		writeJSON(w, r, http.StatusTooManyRequests, models.SubmissionResponse{OK: false, Error: "Too many requests"})
		return false
	}
	return true
}
