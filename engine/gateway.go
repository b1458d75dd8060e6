package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/himakhaitan/hexkv/pkg/config"
	"github.com/himakhaitan/hexkv/store"
	"go.uber.org/zap"
)

// BulkRequest maps raw keys to raw values as decoded from a JSON object.
type BulkRequest map[string]any

// Gateway validates requests and translates them into store commands.
// It holds no state besides the shared client, so it is safe for
// concurrent use.
type Gateway struct {
	client  store.Client
	logger  *zap.Logger
	timeout time.Duration
}

func NewGateway(client store.Client, cfg *config.Config, logger *zap.Logger) *Gateway {
	return &Gateway{client: client, logger: logger, timeout: cfg.StoreTimeout}
}

func (g *Gateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, g.timeout)
}

func (g *Gateway) unavailable(op string, err error) error {
	storeErrors(op).Inc()
	g.logger.Warn("Store call failed", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

// Health pings the store.
func (g *Gateway) Health(ctx context.Context) error {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	if err := g.client.Ping(ctx); err != nil {
		return g.unavailable("ping", err)
	}
	return nil
}

// Write upserts value under key.
func (g *Gateway) Write(ctx context.Context, rawKey, rawValue string) error {
	key, err := Normalize(rawKey)
	if err != nil {
		return err
	}
	value, err := Normalize(rawValue)
	if err != nil {
		return err
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	if err := g.client.Set(ctx, key, value); err != nil {
		return g.unavailable("set", err)
	}
	return nil
}

// Read returns the value stored under key.
func (g *Gateway) Read(ctx context.Context, rawKey string) (string, error) {
	key, err := Normalize(rawKey)
	if err != nil {
		return "", err
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	value, err := g.client.Get(ctx, key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", g.unavailable("get", err)
	}
	return value, nil
}

// Delete removes key after checking that it exists. The check and the
// delete are two round trips, so a concurrent delete in between is
// reported as ErrDeleteMismatch rather than ErrNotFound.
func (g *Gateway) Delete(ctx context.Context, rawKey string) error {
	key, err := Normalize(rawKey)
	if err != nil {
		return err
	}

	exists, err := g.exists(ctx, key)
	if err != nil {
		return g.unavailable("exists", err)
	}
	if !exists {
		return ErrNotFound
	}

	removed, err := g.del(ctx, key)
	if err != nil {
		return g.unavailable("del", err)
	}
	if removed != 1 {
		deleteMismatches.Inc()
		g.logger.Error("Key vanished between existence check and delete",
			zap.String("key", key), zap.Int64("removed", removed))
		return fmt.Errorf("%w: %d entries removed for %s", ErrDeleteMismatch, removed, key)
	}
	return nil
}

func (g *Gateway) exists(ctx context.Context, key string) (bool, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()
	return g.client.Exists(ctx, key)
}

func (g *Gateway) del(ctx context.Context, key string) (int64, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()
	return g.client.Delete(ctx, key)
}

// BulkWrite validates every pair first and only then submits all of them
// as one pipelined batch. It returns the number of pairs in the request.
func (g *Gateway) BulkWrite(ctx context.Context, entries BulkRequest) (int, error) {
	if len(entries) == 0 {
		return 0, ErrEmptyPayload
	}

	batch := make(map[string]string, len(entries))
	for rawKey, rawValue := range entries {
		key, err := Normalize(rawKey)
		if err != nil {
			return 0, fmt.Errorf("key %q: %w", rawKey, err)
		}
		value, err := Normalize(rawValue)
		if err != nil {
			return 0, fmt.Errorf("value of %q: %w", rawKey, err)
		}
		batch[key] = value
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	if err := g.client.SetMany(ctx, batch); err != nil {
		return 0, g.unavailable("pipeline", err)
	}
	g.logger.Debug("Bulk write stored", zap.Int("entries", len(entries)))
	return len(entries), nil
}
