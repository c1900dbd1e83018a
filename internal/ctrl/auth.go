package ctrl

import (
	"context"
	"errors"
	"time"

	"github.com/avolkov/taskgate/internal/auth"
	"github.com/avolkov/taskgate/internal/dto"
	md "github.com/avolkov/taskgate/internal/models"
	"github.com/avolkov/taskgate/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type authCtrl interface {
	Register(ctx context.Context, req *dto.RegisterRequest) error
	Login(ctx context.Context, device string, req *dto.LoginRequest) (*dto.TokenPairResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AccessTokenResponse, error)
	Logout(ctx context.Context, req *dto.RefreshRequest) error
	LogoutAll(ctx context.Context, req *dto.RefreshRequest) error
}

type authRepo interface {
	CreateUser(ctx context.Context, username, password string) error
	GetUserByUsername(ctx context.Context, username string) (*md.User, error)
	CreateToken(ctx context.Context, rec *md.RefreshToken) error
	TouchToken(ctx context.Context, username, token string, lastUsed time.Time) error
	DeleteToken(ctx context.Context, username, token string) error
	DeleteAllTokens(ctx context.Context, username string) error
}

func (c *Controller) Register(ctx context.Context, req *dto.RegisterRequest) error {
	const op = "auth.Register.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	hash, err := c.hash.HashPassword(req.Password)
	if err != nil {
		zap.L().Error(
			"failed to hash password",
			zap.String("op", op),
			zap.Error(err),
		)

		return err
	}

	// The uniqueness constraint is the final authority: a concurrent
	// registration surfaces here as ErrAlreadyExists, not at a pre-check.
	err = c.repo.CreateUser(ctx, req.Username, hash)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return ErrAlreadyExists
		}

		return err
	}

	return nil
}

func (c *Controller) Login(
	ctx context.Context,
	device string,
	req *dto.LoginRequest,
) (*dto.TokenPairResponse, error) {
	const op = "auth.Login.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Same outward signal as a wrong password.
			return nil, auth.ErrInvalidCredentials
		}

		return nil, err
	}

	err = c.hash.ComparePasswords([]byte(res.Password), []byte(req.Password))
	if err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	tokenID := uuid.New()

	access, err := c.au.NewAccess(ctx, res.Username)
	if err != nil {
		return nil, err
	}

	refresh, err := c.au.NewRefresh(ctx, res.Username, tokenID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = c.repo.CreateToken(
		ctx, &md.RefreshToken{
			Username:  res.Username,
			Token:     refresh,
			TokenID:   tokenID,
			Device:    device,
			CreatedAt: now,
			LastUsed:  now,
		},
	)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (c *Controller) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AccessTokenResponse, error) {
	const op = "auth.Refresh.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims, err := c.au.ParseRefresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, auth.ErrInvalidRefreshToken
	}

	err = c.repo.TouchToken(ctx, claims.Username, req.RefreshToken, time.Now())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			zap.L().Info(
				"refresh token has no matching record",
				zap.String("op", op),
				zap.String("username", claims.Username),
			)

			return nil, auth.ErrInvalidRefreshToken
		}

		return nil, err
	}

	// The refresh token is not rotated here; it stays valid until its own
	// expiry or an explicit logout.
	access, err := c.au.NewAccess(ctx, claims.Username)
	if err != nil {
		return nil, err
	}

	return &dto.AccessTokenResponse{AccessToken: access}, nil
}

func (c *Controller) Logout(ctx context.Context, req *dto.RefreshRequest) error {
	const op = "auth.Logout.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims, err := c.au.ParseRefresh(ctx, req.RefreshToken)
	if err != nil {
		return auth.ErrInvalidRefreshToken
	}

	// Idempotent: an already-removed record is still a successful logout.
	return c.repo.DeleteToken(ctx, claims.Username, req.RefreshToken)
}

func (c *Controller) LogoutAll(ctx context.Context, req *dto.RefreshRequest) error {
	const op = "auth.LogoutAll.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims, err := c.au.ParseRefresh(ctx, req.RefreshToken)
	if err != nil {
		return auth.ErrInvalidRefreshToken
	}

	return c.repo.DeleteAllTokens(ctx, claims.Username)
}
