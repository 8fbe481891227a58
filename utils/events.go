package utils

import (
	"context"
	"fmt"

	"famcal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const eventColumns = "id::text AS id, title, description, category, start_time, end_time, status, location"

// buildEventListQuery forwards the bounds untouched; Postgres parses them.
func buildEventListQuery(f models.EventFilter) (string, []any) {
	var w whereClause
	if f.From != "" {
		w.add("start_time >= $%d::timestamptz", f.From)
	}
	if f.To != "" {
		w.add("start_time <= $%d::timestamptz", f.To)
	}
	return "SELECT " + eventColumns + " FROM events" + w.String() + " ORDER BY start_time ASC", w.args
}

func (s *PGStore) ListEvents(ctx context.Context, f models.EventFilter) ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt, args := buildEventListQuery(f)
	rows, err := s.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	events, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Event])
	if err != nil {
		return nil, fmt.Errorf("scan events: %w", err)
	}
	return events, nil
}

func (s *PGStore) CreateEvent(ctx context.Context, in models.EventInput) (models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := `INSERT INTO events (id, title, description, category, start_time, end_time, status, location)
		VALUES ($1, $2, $3, $4, $5::timestamptz, $6::timestamptz, $7, $8)
		RETURNING ` + eventColumns
	rows, err := s.db.Query(ctx, stmt,
		uuid.New(), in.Title, in.Description, in.Category,
		blankToNil(in.StartTime), blankToNil(in.EndTime), in.Status, in.Location)
	if err != nil {
		return models.Event{}, fmt.Errorf("insert event: %w", err)
	}
	event, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Event])
	if err != nil {
		return models.Event{}, fmt.Errorf("insert event: %w", err)
	}
	return event, nil
}

// UpdateEvent keeps the stored value of every nil field.
func (s *PGStore) UpdateEvent(ctx context.Context, id string, in models.EventInput) (models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := `UPDATE events SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			category = COALESCE($4, category),
			start_time = COALESCE($5::timestamptz, start_time),
			end_time = COALESCE($6::timestamptz, end_time),
			status = COALESCE($7, status),
			location = COALESCE($8, location)
		WHERE id = $1
		RETURNING ` + eventColumns
	rows, err := s.db.Query(ctx, stmt,
		id, in.Title, in.Description, in.Category,
		blankToNil(in.StartTime), blankToNil(in.EndTime), in.Status, in.Location)
	if err != nil {
		return models.Event{}, fmt.Errorf("update event %s: %w", id, err)
	}
	event, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Event])
	if err != nil {
		return models.Event{}, fmt.Errorf("update event %s: %w", id, notFound(err))
	}
	return event, nil
}

func (s *PGStore) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := s.db.Exec(ctx, "DELETE FROM events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete event %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
