package injector

import (
	"github.com/google/wire"
	"github.com/zeusync/homing/internal/core/field"
	"github.com/zeusync/homing/internal/core/observability/log"
)

// ProviderSet wires a logger into a field generator.
var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	field.NewGenerator,
	NewApp,
)

// App bundles what one generation run needs.
type App struct {
	Logger    *log.Logger
	Generator *field.Generator
}

func NewApp(logger *log.Logger, generator *field.Generator) *App {
	return &App{Logger: logger, Generator: generator}
}

func ProvideLogger(level log.Level) *log.Logger {
	return log.New(level)
}
