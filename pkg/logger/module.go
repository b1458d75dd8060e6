package logger

import (
	"github.com/himakhaitan/hexkv/pkg/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module(service string) fx.Option {
	return fx.Provide(
		func(cfg *config.Config) (*zap.Logger, error) {
			return New(service, cfg.LogLevel)
		},
	)
}
