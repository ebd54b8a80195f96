package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/scott20050218/HA3/internal/logger"
	"github.com/scott20050218/HA3/internal/models"
)

type TaskReadRepository struct {
	db *sqlx.DB
}

func NewTaskReadRepository(db *sqlx.DB) *TaskReadRepository {
	return &TaskReadRepository{db: db}
}

// List returns tasks matching the given status filter, most recent first.
// The filter maps to a nullable completed flag: nil selects every task.
func (r *TaskReadRepository) List(ctx context.Context, status string) ([]models.TaskDB, error) {
	const query = `
		SELECT id, title, completed, created_at, updated_at
		FROM tasks
		WHERE ($1::BOOLEAN IS NULL OR completed = $1)
		ORDER BY created_at DESC
	`

	var completed *bool
	switch status {
	case models.StatusPending:
		completed = new(bool)
	case models.StatusCompleted:
		completed = new(bool)
		*completed = true
	}

	tasks := []models.TaskDB{}
	err := r.db.SelectContext(ctx, &tasks, query, completed)

	logger.Log.Infow("task list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{completed},
		"count", len(tasks),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// GetByID returns the task with the given id, or nil when no such task
// exists.
func (r *TaskReadRepository) GetByID(ctx context.Context, id int64) (*models.TaskDB, error) {
	const query = `
		SELECT id, title, completed, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`

	var task models.TaskDB
	err := r.db.GetContext(ctx, &task, query, id)

	logger.Log.Infow("task read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &task, nil
}

type TaskWriteRepository struct {
	db *sqlx.DB
}

func NewTaskWriteRepository(db *sqlx.DB) *TaskWriteRepository {
	return &TaskWriteRepository{db: db}
}

// Save inserts a new pending task and returns the stored row.
func (r *TaskWriteRepository) Save(ctx context.Context, title string) (*models.TaskDB, error) {
	const query = `
		INSERT INTO tasks (title, completed, created_at, updated_at)
		VALUES ($1, FALSE, NOW(), NOW())
		RETURNING id, title, completed, created_at, updated_at
	`

	var task models.TaskDB
	err := r.db.GetContext(ctx, &task, query, title)

	logger.Log.Infow("task save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{title},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &task, nil
}

// Update applies a partial update: nil fields keep their stored value.
// updated_at is refreshed on every hit. Returns nil when the id is unknown.
func (r *TaskWriteRepository) Update(ctx context.Context, id int64, title *string, completed *bool) (*models.TaskDB, error) {
	const query = `
		UPDATE tasks
		SET title = COALESCE($2, title),
		    completed = COALESCE($3, completed),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, completed, created_at, updated_at
	`
	args := []any{id, title, completed}

	var task models.TaskDB
	err := r.db.GetContext(ctx, &task, query, args...)

	logger.Log.Infow("task update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// Delete removes the task with the given id and reports whether a row was
// actually removed.
func (r *TaskWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM tasks WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("task delete",
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// DeleteCompleted removes every completed task and returns the number of
// rows removed, which may be zero.
func (r *TaskWriteRepository) DeleteCompleted(ctx context.Context) (int64, error) {
	const query = `DELETE FROM tasks WHERE completed = TRUE`

	res, err := r.db.ExecContext(ctx, query)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("task delete completed",
		"query", query,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}

// DeleteAll removes every task and returns the number of rows removed.
func (r *TaskWriteRepository) DeleteAll(ctx context.Context) (int64, error) {
	const query = `DELETE FROM tasks`

	res, err := r.db.ExecContext(ctx, query)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("task delete all",
		"query", query,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}
