package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter mounts every /api route and wraps the result in CORS handling.
func NewRouter(app *App, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware, recoveryMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/ping", app.Ping).Methods(http.MethodGet)
	api.HandleFunc("/demo", app.Demo).Methods(http.MethodGet)
	api.HandleFunc("/health", app.Health).Methods(http.MethodGet)

	api.HandleFunc("/events", app.GetEvents).Methods(http.MethodGet)
	api.HandleFunc("/events", app.CreateEvent).Methods(http.MethodPost)
	api.HandleFunc("/events/{id}", app.UpdateEvent).Methods(http.MethodPut)
	api.HandleFunc("/events/{id}", app.DeleteEvent).Methods(http.MethodDelete)

	api.HandleFunc("/tasks", app.GetTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks", app.CreateTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{id}", app.UpdateTask).Methods(http.MethodPut)
	api.HandleFunc("/tasks/{id}", app.DeleteTask).Methods(http.MethodDelete)

	api.HandleFunc("/messages", app.GetMessages).Methods(http.MethodGet)
	api.HandleFunc("/messages", app.CreateMessage).Methods(http.MethodPost)

	api.HandleFunc("/chat", app.Chat).Methods(http.MethodPost)
	api.HandleFunc("/feedback", app.Feedback).Methods(http.MethodPost)
	api.HandleFunc("/early-access", app.EarlyAccess).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})
	return c.Handler(r)
}
