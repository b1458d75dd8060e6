package main

import (
	"github.com/himakhaitan/hexkv/pkg/config"
	"github.com/himakhaitan/hexkv/pkg/logger"
	"github.com/himakhaitan/hexkv/server"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		logger.Module("hexkvd"),
		config.Module(),
		server.Module(),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
	)

	app.Run()
}
