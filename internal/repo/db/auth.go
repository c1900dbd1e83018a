package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/avolkov/taskgate/internal/config"
	md "github.com/avolkov/taskgate/internal/models"
	"github.com/avolkov/taskgate/internal/repo"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/opentracing/opentracing-go"
)

func (r *Repository) CreateUser(ctx context.Context, username, password string) error {
	const op = "auth.CreateUser.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, userCreateQ, username, password); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return repo.ErrAlreadyExists
		}

		return err
	}

	return nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*md.User, error) {
	const op = "auth.GetUserByUsername.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	err := r.conn.GetContext(ctx, res, userGetByUsernameQ, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}

		return nil, err
	}

	return res, nil
}

// CreateToken appends a refresh record and prunes the user's records to the
// retention cap in one transaction, oldest-first by insertion order.
func (r *Repository) CreateToken(ctx context.Context, rec *md.RefreshToken) error {
	const op = "auth.CreateToken.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(
		ctx, tokenCreateQ,
		rec.Username,
		rec.Token,
		rec.TokenID,
		rec.Device,
		rec.CreatedAt,
	); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, tokenPruneQ, rec.Username, config.MaxRefreshTokens); err != nil {
		return err
	}

	return tx.Commit()
}

// TouchToken updates last_used on the record matching the presented token
// string. No matching record means the token has been revoked.
func (r *Repository) TouchToken(ctx context.Context, username, token string, lastUsed time.Time) error {
	const op = "auth.TouchToken.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, tokenTouchQ, lastUsed, username, token)
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

// DeleteToken is idempotent: removing an absent record is not an error.
func (r *Repository) DeleteToken(ctx context.Context, username, token string) error {
	const op = "auth.DeleteToken.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, tokenDeleteQ, username, token)
	return err
}

func (r *Repository) DeleteAllTokens(ctx context.Context, username string) error {
	const op = "auth.DeleteAllTokens.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, tokenDeleteAllQ, username)
	return err
}
