package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avolkov/taskgate/internal/dto"
	md "github.com/avolkov/taskgate/internal/models"
	"github.com/avolkov/taskgate/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

func (r *Repository) ListTasks(ctx context.Context, username string) ([]*md.Task, error) {
	const op = "tasks.ListTasks.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.Task, 0)
	if err := r.conn.SelectContext(ctx, &res, taskListQ, username); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetTask(ctx context.Context, username string, id uuid.UUID) (*md.Task, error) {
	const op = "tasks.GetTask.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Task{}
	err := r.conn.GetContext(ctx, res, taskGetQ, id, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}

		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateTask(ctx context.Context, username string, req *dto.CreateTaskRequest) (uuid.UUID, error) {
	const op = "tasks.CreateTask.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowContext(
		ctx, taskCreateQ,
		uuid.New(),
		username,
		req.Title,
		req.Description,
		req.Completed,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) UpdateTask(ctx context.Context, username string, id uuid.UUID, req *dto.UpdateTaskRequest) error {
	const op = "tasks.UpdateTask.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, taskUpdateQ, req.Title, req.Description, req.Completed, id, username)
	if err != nil {
		return err
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteTask(ctx context.Context, username string, id uuid.UUID) error {
	const op = "tasks.DeleteTask.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, taskDeleteQ, id, username)
	if err != nil {
		return err
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}
