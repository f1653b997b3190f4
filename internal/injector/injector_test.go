package injector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/elastic/internal/scenario"
	"github.com/zeusync/elastic/pkg/collision"
	"github.com/zeusync/elastic/pkg/vector"
)

func TestInitializeApp(t *testing.T) {
	config := scenario.DefaultConfig()
	config.Tolerance = 1e-6
	config.Workers = 3

	app := InitializeApp(config)
	require.NotNil(t, app)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Runner)
	assert.Equal(t, 1e-6, app.Runner.Tolerance())

	scenarios := []scenario.Scenario{{
		ID:    "swap",
		Name:  "swap",
		Body1: collision.NewBody(vector.New(1, 1), 1, vector.New(0, 0)),
		Body2: collision.NewBody(vector.New(-1, -1), 1, vector.New(2, 2)),
	}}
	reports, err := app.Runner.Run(context.Background(), scenarios, config.Methods)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	for _, report := range reports {
		assert.Empty(t, report.Error)
		assert.True(t, report.Conserved)
	}
}
