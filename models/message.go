package models

import "time"

type Message struct {
	ID        string    `json:"id" db:"id"`
	Channel   string    `json:"channel" db:"channel"`
	UserID    *string   `json:"user_id" db:"user_id"`
	UserName  *string   `json:"user_name" db:"user_name"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type MessageInput struct {
	Channel  string  `json:"channel" validate:"omitempty,max=64"`
	UserID   *string `json:"user_id"`
	UserName *string `json:"user_name" validate:"omitempty,max=100"`
	Text     string  `json:"text" validate:"max=2000"`
}

type MessagesResponse struct {
	Messages []Message `json:"messages"`
	Error    string    `json:"error,omitempty"`
}

type MessageResponse struct {
	Message Message `json:"message"`
}
