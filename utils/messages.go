package utils

import (
	"context"
	"fmt"

	"famcal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const messageColumns = "id::text AS id, channel, user_id, user_name, text, created_at"

// ListMessages returns the newest limit messages of a channel, oldest first.
func (s *PGStore) ListMessages(ctx context.Context, channel string, limit int) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := `SELECT * FROM (
			SELECT ` + messageColumns + ` FROM messages
			WHERE channel = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent ORDER BY created_at ASC`
	rows, err := s.db.Query(ctx, stmt, channel, limit)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	msgs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Message])
	if err != nil {
		return nil, fmt.Errorf("scan messages: %w", err)
	}
	return msgs, nil
}

func (s *PGStore) CreateMessage(ctx context.Context, in models.MessageInput) (models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := `INSERT INTO messages (id, channel, user_id, user_name, text)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + messageColumns
	rows, err := s.db.Query(ctx, stmt, uuid.New(), in.Channel, blankToNil(in.UserID), in.UserName, in.Text)
	if err != nil {
		return models.Message{}, fmt.Errorf("insert message: %w", err)
	}
	msg, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Message])
	if err != nil {
		return models.Message{}, fmt.Errorf("insert message: %w", err)
	}
	return msg, nil
}
