//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"
	"github.com/zeusync/homing/internal/core/field"
	"github.com/zeusync/homing/internal/core/observability/log"
)

func InitializeApp(config field.Config, level log.Level) *App {
	wire.Build(ProviderSet)
	return nil
}
