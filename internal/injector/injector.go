//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/elastic/internal/scenario"
)

func InitializeApp(config scenario.Config) *App {
	wire.Build(ProviderSet)
	return nil
}
