package handlers

import (
	"errors"
	"net/http"

	"famcal/models"
	"famcal/utils"

	"github.com/rs/zerolog"
)

// GetTasks lists tasks by due date. status, from and to narrow the list.
func (a *App) GetTasks(w http.ResponseWriter, r *http.Request) {
	if a.Store == nil {
		writeJSON(w, r, http.StatusInternalServerError, models.TasksResponse{Tasks: []models.Task{}, Error: notConfigured})
		return
	}

	q := r.URL.Query()
	filter := models.TaskFilter{Status: q.Get("status"), From: q.Get("from"), To: q.Get("to")}
	key := "status=" + filter.Status + "&from=" + filter.From + "&to=" + filter.To
	gen, hit := a.serveCached(w, r, scopeTasks, key)
	if hit {
		return
	}

	tasks, err := a.Store.ListTasks(r.Context(), filter)
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("list tasks failed, returning empty list")
		writeJSON(w, r, http.StatusOK, models.TasksResponse{Tasks: []models.Task{}})
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	a.writeAndCache(w, r, scopeTasks, gen, key, models.TasksResponse{Tasks: tasks})
}

// CreateTask stores a new task, defaulting priority to medium and status to open.
func (a *App) CreateTask(w http.ResponseWriter, r *http.Request) {
	if a.Store == nil {
		writeError(w, r, http.StatusInternalServerError, notConfigured)
		return
	}

	var in models.TaskInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateTaskInput(in, true); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if in.Priority == nil {
		in.Priority = strPtr("medium")
	}
	if in.Status == nil {
		in.Status = strPtr("open")
	}

	task, err := a.Store.CreateTask(r.Context(), in)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("create task")
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	a.invalidate(r, scopeTasks)

	zerolog.Ctx(r.Context()).Info().Str("task_id", task.ID).Msg("task created")
	writeJSON(w, r, http.StatusCreated, models.TaskResponse{Task: task})
}

func (a *App) UpdateTask(w http.ResponseWriter, r *http.Request) {
	if a.Store == nil {
		writeError(w, r, http.StatusInternalServerError, notConfigured)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var in models.TaskInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateTaskInput(in, false); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	task, err := a.Store.UpdateTask(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "task not found")
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Str("task_id", id).Msg("update task")
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	a.invalidate(r, scopeTasks)

	writeJSON(w, r, http.StatusOK, models.TaskResponse{Task: task})
}

func (a *App) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if a.Store == nil {
		writeError(w, r, http.StatusInternalServerError, notConfigured)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.Store.DeleteTask(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "task not found")
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Str("task_id", id).Msg("delete task")
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	a.invalidate(r, scopeTasks)

	w.WriteHeader(http.StatusNoContent)
}
