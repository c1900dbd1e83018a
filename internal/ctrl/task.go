package ctrl

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkov/taskgate/internal/config"
	"github.com/avolkov/taskgate/internal/dto"
	md "github.com/avolkov/taskgate/internal/models"
	"github.com/avolkov/taskgate/internal/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

type taskCtrl interface {
	ListTasks(ctx context.Context, username string) ([]*md.Task, error)
	GetTask(ctx context.Context, username string, id uuid.UUID) (*md.Task, error)
	CreateTask(ctx context.Context, username string, req *dto.CreateTaskRequest) (*dto.CreateTaskResponse, error)
	UpdateTask(ctx context.Context, username string, id uuid.UUID, req *dto.UpdateTaskRequest) error
	DeleteTask(ctx context.Context, username string, id uuid.UUID) error
}

type taskRepo interface {
	ListTasks(ctx context.Context, username string) ([]*md.Task, error)
	GetTask(ctx context.Context, username string, id uuid.UUID) (*md.Task, error)
	CreateTask(ctx context.Context, username string, req *dto.CreateTaskRequest) (uuid.UUID, error)
	UpdateTask(ctx context.Context, username string, id uuid.UUID, req *dto.UpdateTaskRequest) error
	DeleteTask(ctx context.Context, username string, id uuid.UUID) error
}

const (
	taskCacheKey  = "tasks:%v:%v"
	tasksListKey  = "tasks-list:%v"
	tasksPatternK = "tasks:%v:*"
)

func (c *Controller) ListTasks(ctx context.Context, username string) ([]*md.Task, error) {
	const op = "tasks.ListTasks.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := make([]*md.Task, 0)
	cacheKey := fmt.Sprintf(tasksListKey, username)
	if err := c.cache.GetToStruct(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListTasks(ctx, username)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) GetTask(ctx context.Context, username string, id uuid.UUID) (*md.Task, error) {
	const op = "tasks.GetTask.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &md.Task{}
	cacheKey := fmt.Sprintf(taskCacheKey, username, id)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.GetTask(ctx, username, id)
	if err != nil {
		return nil, c.mapTaskErr(err)
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) CreateTask(
	ctx context.Context,
	username string,
	req *dto.CreateTaskRequest,
) (*dto.CreateTaskResponse, error) {
	const op = "tasks.CreateTask.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	id, err := c.repo.CreateTask(ctx, username, req)
	if err != nil {
		return nil, err
	}

	c.cache.Delete(ctx, fmt.Sprintf(tasksListKey, username))

	return &dto.CreateTaskResponse{ID: id}, nil
}

func (c *Controller) UpdateTask(
	ctx context.Context,
	username string,
	id uuid.UUID,
	req *dto.UpdateTaskRequest,
) error {
	const op = "tasks.UpdateTask.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.repo.UpdateTask(ctx, username, id, req); err != nil {
		return c.mapTaskErr(err)
	}

	c.invalidateTaskCache(ctx, username)
	return nil
}

func (c *Controller) DeleteTask(ctx context.Context, username string, id uuid.UUID) error {
	const op = "tasks.DeleteTask.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.repo.DeleteTask(ctx, username, id); err != nil {
		return c.mapTaskErr(err)
	}

	c.invalidateTaskCache(ctx, username)
	return nil
}

func (c *Controller) invalidateTaskCache(ctx context.Context, username string) {
	c.cache.Delete(ctx, fmt.Sprintf(tasksListKey, username))
	c.cache.InvalidateKeysByPattern(ctx, fmt.Sprintf(tasksPatternK, username))
}

func (c *Controller) mapTaskErr(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
