package models

import "time"

// Event is a row of the events table.
type Event struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	Category    *string    `json:"category" db:"category"`
	StartTime   *time.Time `json:"start_time" db:"start_time"`
	EndTime     *time.Time `json:"end_time" db:"end_time"`
	Status      *string    `json:"status" db:"status"`
	Location    *string    `json:"location" db:"location"`
}

// EventInput is the body of POST /api/events and PUT /api/events/{id}.
// Timestamps stay strings so the database parses them as sent.
type EventInput struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Status      *string `json:"status" validate:"omitempty,oneof=planned completed cancelled"`
	Location    *string `json:"location" validate:"omitempty,max=255"`
}

// EventFilter bounds start_time. Empty bounds are ignored.
type EventFilter struct {
	From string
	To   string
}

type EventsResponse struct {
	Events []Event `json:"events"`
	Error  string  `json:"error,omitempty"`
}

type EventResponse struct {
	Event Event `json:"event"`
}
