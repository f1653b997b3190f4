package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/elastic/internal/scenario"
	"github.com/zeusync/elastic/pkg/collision"
	"github.com/zeusync/elastic/pkg/observability/log"
)

// ProviderSet builds an App from a batch configuration.
var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideResolver,
	scenario.NewRunner,
	wire.Struct(new(App), "*"),
)

// App is everything the collide command needs to run a batch.
type App struct {
	Logger log.Log
	Runner *scenario.Runner
}

func ProvideLogger(config scenario.Config) log.Log {
	return log.NewConsole(config.LogLevel)
}

func ProvideResolver(config scenario.Config, logger log.Log) *collision.Resolver {
	return collision.NewResolver(config.Resolver, logger)
}
