package engine

import (
	"github.com/himakhaitan/hexkv/store"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Options(
		store.Module,
		fx.Provide(NewGateway),
	)
}
