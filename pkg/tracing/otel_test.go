package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Wekraft-001/admin-hub/pkg/config"
)

func TestInitDisabledIsNoop(t *testing.T) {
	shutdown, err := Init(context.Background(), config.TracingConfig{}, "test", nil)
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInitStdoutExporter(t *testing.T) {
	shutdown, err := Init(context.Background(), config.TracingConfig{Enabled: true, SampleRatio: 1}, "test", nil)
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
