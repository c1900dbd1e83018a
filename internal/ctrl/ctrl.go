package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/avolkov/taskgate/internal/auth"
	"github.com/avolkov/taskgate/internal/auth/jwt"
)

type AppRepo interface {
	authRepo
	taskRepo
}

type AppCtrl interface {
	authCtrl
	taskCtrl
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
	InvalidateKeysByPattern(ctx context.Context, pattern string)
}

type Controller struct {
	au    jwt.Port
	hash  auth.PasswordHasher
	repo  AppRepo
	cache CacheService
}

func New(au jwt.Port, hash auth.PasswordHasher, repo AppRepo, cache CacheService) *Controller {
	return &Controller{
		au:    au,
		hash:  hash,
		repo:  repo,
		cache: cache,
	}
}
