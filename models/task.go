package models

import "time"

type Task struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	Category    *string    `json:"category" db:"category"`
	DueDate     *time.Time `json:"due_date" db:"due_date"`
	Priority    *string    `json:"priority" db:"priority"`
	DurationMin *int       `json:"duration_min" db:"duration_min"`
	Status      *string    `json:"status" db:"status"`
}

// TaskInput is the body of POST /api/tasks and PUT /api/tasks/{id}.
// Nil fields are left untouched on update.
type TaskInput struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	DurationMin *int    `json:"duration_min" validate:"omitempty,min=0"`
	Status      *string `json:"status" validate:"omitempty,oneof=open done"`
}

type TaskFilter struct {
	Status string
	From   string
	To     string
}

type TasksResponse struct {
	Tasks []Task `json:"tasks"`
	Error string `json:"error,omitempty"`
}

type TaskResponse struct {
	Task Task `json:"task"`
}
