package injector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/homing/internal/config"
	"github.com/zeusync/homing/internal/core/field"
	"github.com/zeusync/homing/internal/core/observability/log"
)

func TestInitializeApp(t *testing.T) {
	app := InitializeApp(field.Config{Workers: 2}, log.LevelError)
	require.NotNil(t, app)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Generator)
	assert.Equal(t, log.LevelError, app.Logger.GetLevel())

	setup, err := config.Default().Build()
	require.NoError(t, err)
	f, err := app.Generator.Generate(context.Background(), setup.Estimator, setup.Grid)
	require.NoError(t, err)
	assert.Len(t, f.Samples, 224)
}
