package jwt

import (
	"context"
	"time"

	"github.com/avolkov/taskgate/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// Port is the token codec: two token classes signed with independent
// secrets and expirations. Access tokens are never persisted; refresh
// tokens additionally carry the tokenId correlating them to a store record.
type Port interface {
	NewAccess(ctx context.Context, username string) (string, error)
	NewRefresh(ctx context.Context, username string, tokenID uuid.UUID) (string, error)
	ParseAccess(ctx context.Context, tokenStr string) (AccessClaims, error)
	ParseRefresh(ctx context.Context, tokenStr string) (RefreshClaims, error)
}

type AccessClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	Username string    `json:"username"`
	TokenID  uuid.UUID `json:"tokenId"`
	jwt.RegisteredClaims
}

type Core struct {
	accessSecret    []byte
	refreshSecret   []byte
	accessDuration  time.Duration
	refreshDuration time.Duration
	issuer          string
}

func New(conf config.Config) *Core {
	return &Core{
		accessSecret:    []byte(conf.Auth.AccessSecret),
		refreshSecret:   []byte(conf.Auth.RefreshSecret),
		accessDuration:  conf.Auth.AccessDuration,
		refreshDuration: conf.Auth.RefreshDuration,
		issuer:          conf.Auth.Issuer,
	}
}

func (c *Core) NewAccess(ctx context.Context, username string) (string, error) {
	const op = "auth.NewAccess.jwt"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	signed, err := jwt.NewWithClaims(
		jwt.SigningMethodHS256, &AccessClaims{
			Username: username,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.accessDuration)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				Issuer:    c.issuer,
			},
		},
	).SignedString(c.accessSecret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.String("op", op),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

func (c *Core) NewRefresh(ctx context.Context, username string, tokenID uuid.UUID) (string, error) {
	const op = "auth.NewRefresh.jwt"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	signed, err := jwt.NewWithClaims(
		jwt.SigningMethodHS256, &RefreshClaims{
			Username: username,
			TokenID:  tokenID,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.refreshDuration)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				Issuer:    c.issuer,
			},
		},
	).SignedString(c.refreshSecret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.String("op", op),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

func (c *Core) ParseAccess(ctx context.Context, tokenStr string) (AccessClaims, error) {
	const op = "auth.ParseAccess.jwt"

	claims := AccessClaims{}
	if err := c.parse(ctx, op, tokenStr, &claims, c.accessSecret); err != nil {
		return AccessClaims{}, err
	}

	return claims, nil
}

func (c *Core) ParseRefresh(ctx context.Context, tokenStr string) (RefreshClaims, error) {
	const op = "auth.ParseRefresh.jwt"

	claims := RefreshClaims{}
	if err := c.parse(ctx, op, tokenStr, &claims, c.refreshSecret); err != nil {
		return RefreshClaims{}, err
	}

	return claims, nil
}

func (c *Core) parse(ctx context.Context, op, tokenStr string, claims jwt.Claims, secret []byte) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	token, err := jwt.ParseWithClaims(
		tokenStr, claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return secret, nil
		},
	)
	if err != nil {
		zap.L().Debug(
			"failed to parse claims",
			zap.String("op", op),
			zap.Error(err),
		)

		return ErrInvalidToken
	}

	if !token.Valid {
		zap.L().Debug(
			"token is invalid",
			zap.String("op", op),
		)

		return ErrInvalidToken
	}

	return nil
}
