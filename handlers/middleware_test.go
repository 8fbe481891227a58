package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantCode int
		wantBody string
	}{
		{
			name:     "Panic before writing",
			handler:  func(w http.ResponseWriter, r *http.Request) { panic("boom") },
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
		{
			name: "Panic after WriteHeader",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				panic("boom")
			},
			wantCode: http.StatusCreated,
			wantBody: "",
		},
		{
			name: "Panic after a partial body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"events":[`))
				panic("boom")
			},
			wantCode: http.StatusOK,
			wantBody: `{"events":[`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			loggingMiddleware(recoveryMiddleware(tt.handler)).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.wantBody {
				t.Errorf("body = %q, want %q", got, tt.wantBody)
			}
		})
	}
}

func TestResponseWriterKeepsFirstStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, status: http.StatusOK}

	rw.WriteHeader(http.StatusNoContent)
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.status != http.StatusNoContent || rec.Code != http.StatusNoContent {
		t.Errorf("status = %d / %d, want 204", rw.status, rec.Code)
	}
}
