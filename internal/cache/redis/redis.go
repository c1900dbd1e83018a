package redis

import (
	"context"
	"time"

	"github.com/avolkov/taskgate/internal/config"
	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type Cache struct {
	cli *redis.Client
}

func New(conf config.Config) *Cache {
	cli := redis.NewClient(
		&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
		},
	)

	if err := cli.Ping(context.Background()).Err(); err != nil {
		zap.L().Fatal("failed to connect to redis", zap.Error(err))
	}

	return &Cache{cli: cli}
}

func (c *Cache) Close() error {
	return c.cli.Close()
}

func (c *Cache) GetToStruct(ctx context.Context, key string, dest any) error {
	val, err := c.cli.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(val, dest)
}

func (c *Cache) Set(ctx context.Context, t time.Duration, key string, val any) {
	if err := c.cli.Set(ctx, key, val, t).Err(); err != nil {
		zap.L().Debug(
			"failed to set cache",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (c *Cache) Delete(ctx context.Context, key string) {
	if err := c.cli.Del(ctx, key).Err(); err != nil {
		zap.L().Debug(
			"failed to delete cache",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (c *Cache) InvalidateKeysByPattern(ctx context.Context, pattern string) {
	iter := c.cli.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		c.Delete(ctx, iter.Val())
	}

	if err := iter.Err(); err != nil {
		zap.L().Debug(
			"failed to scan keys",
			zap.String("pattern", pattern),
			zap.Error(err),
		)
	}
}
