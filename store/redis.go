package store

import (
	"context"
	"errors"
	"iter"

	"github.com/himakhaitan/hexkv/pkg/config"
	"github.com/redis/go-redis/v9"
)

// scanBatch is the COUNT hint sent with every SCAN page.
const scanBatch = 500

// Redis is a Client backed by a Redis-compatible server.
type Redis struct {
	client *redis.Client
}

var _ Client = (*Redis)(nil)

// NewRedis configures a pooled connection. No connection is opened until
// the first command.
func NewRedis(cfg *config.Config) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:                  cfg.RedisAddr(),
			Password:              cfg.RedisPassword,
			DB:                    cfg.RedisDB,
			DialTimeout:           cfg.StoreTimeout,
			ReadTimeout:           cfg.StoreTimeout,
			WriteTimeout:          cfg.StoreTimeout,
			ContextTimeoutEnabled: true,
			MaxRetries:            -1,
		}),
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	return wrap("ping", r.client.Ping(ctx).Err())
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", wrap("get", err)
	}
	return val, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return wrap("set", r.client.Set(ctx, key, value, 0).Err())
}

func (r *Redis) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, wrap("exists", err)
	}
	return n > 0, nil
}

func (r *Redis) Delete(ctx context.Context, key string) (int64, error) {
	n, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return 0, wrap("del", err)
	}
	return n, nil
}

func (r *Redis) DBSize(ctx context.Context) (int64, error) {
	n, err := r.client.DBSize(ctx).Result()
	if err != nil {
		return 0, wrap("dbsize", err)
	}
	return n, nil
}

func (r *Redis) Scan(ctx context.Context, pattern string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		it := r.client.Scan(ctx, 0, pattern, scanBatch).Iterator()
		for it.Next(ctx) {
			if !yield(it.Val(), nil) {
				return
			}
		}
		if err := it.Err(); err != nil {
			yield("", wrap("scan", err))
		}
	}
}

func (r *Redis) Info(ctx context.Context, section string) (Info, error) {
	var cmd *redis.StringCmd
	if section == "" {
		cmd = r.client.Info(ctx)
	} else {
		cmd = r.client.Info(ctx, section)
	}
	raw, err := cmd.Result()
	if err != nil {
		return nil, wrap("info", err)
	}
	return ParseInfo(raw), nil
}

func (r *Redis) SetMany(ctx context.Context, entries map[string]string) error {
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, value := range entries {
			pipe.Set(ctx, key, value, 0)
		}
		return nil
	})
	return wrap("pipeline", err)
}

func (r *Redis) Close() error {
	return r.client.Close()
}
