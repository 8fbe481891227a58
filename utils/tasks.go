package utils

import (
	"context"
	"fmt"

	"famcal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const taskColumns = "id::text AS id, title, description, category, due_date, priority, duration_min, status"

func buildTaskListQuery(f models.TaskFilter) (string, []any) {
	var w whereClause
	if f.Status != "" {
		w.add("status = $%d", f.Status)
	}
	if f.From != "" {
		w.add("due_date >= $%d::timestamptz", f.From)
	}
	if f.To != "" {
		w.add("due_date <= $%d::timestamptz", f.To)
	}
	return "SELECT " + taskColumns + " FROM tasks" + w.String() + " ORDER BY due_date ASC", w.args
}

func (s *PGStore) ListTasks(ctx context.Context, f models.TaskFilter) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt, args := buildTaskListQuery(f)
	rows, err := s.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Task])
	if err != nil {
		return nil, fmt.Errorf("scan tasks: %w", err)
	}
	return tasks, nil
}

func (s *PGStore) CreateTask(ctx context.Context, in models.TaskInput) (models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := `INSERT INTO tasks (id, title, description, category, due_date, priority, duration_min, status)
		VALUES ($1, $2, $3, $4, $5::timestamptz, $6, $7, $8)
		RETURNING ` + taskColumns
	rows, err := s.db.Query(ctx, stmt,
		uuid.New(), in.Title, in.Description, in.Category,
		blankToNil(in.DueDate), in.Priority, in.DurationMin, in.Status)
	if err != nil {
		return models.Task{}, fmt.Errorf("insert task: %w", err)
	}
	task, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Task])
	if err != nil {
		return models.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return task, nil
}

func (s *PGStore) UpdateTask(ctx context.Context, id string, in models.TaskInput) (models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := `UPDATE tasks SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			category = COALESCE($4, category),
			due_date = COALESCE($5::timestamptz, due_date),
			priority = COALESCE($6, priority),
			duration_min = COALESCE($7, duration_min),
			status = COALESCE($8, status)
		WHERE id = $1
		RETURNING ` + taskColumns
	rows, err := s.db.Query(ctx, stmt,
		id, in.Title, in.Description, in.Category,
		blankToNil(in.DueDate), in.Priority, in.DurationMin, in.Status)
	if err != nil {
		return models.Task{}, fmt.Errorf("update task %s: %w", id, err)
	}
	task, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Task])
	if err != nil {
		return models.Task{}, fmt.Errorf("update task %s: %w", id, notFound(err))
	}
	return task, nil
}

func (s *PGStore) DeleteTask(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := s.db.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
