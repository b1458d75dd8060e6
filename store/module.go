package store

import (
	"context"

	"github.com/himakhaitan/hexkv/pkg/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// New picks the backend named by the configuration.
func New(cfg *config.Config, logger *zap.Logger) Client {
	if cfg.Backend == config.BackendMemory {
		logger.Warn("Using in-memory store, entries are lost on restart")
		return NewMemory()
	}
	logger.Info("Using redis store", zap.String("addr", cfg.RedisAddr()), zap.Duration("timeout", cfg.StoreTimeout))
	return NewRedis(cfg)
}

// RegisterHooks closes the client when the application stops.
func RegisterHooks(lc fx.Lifecycle, client Client, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing store client")
			return client.Close()
		},
	})
}

var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(RegisterHooks),
)
