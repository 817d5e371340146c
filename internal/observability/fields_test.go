package observability_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidbz/vectorizer/internal/observability"
)

func TestFieldHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	logger.Info("request completed",
		observability.String("path", "/vectors"),
		observability.Int("status", 200),
		observability.Bool("batch", true),
		observability.Float64("ratio", 0.5),
		observability.Duration("duration", 2*time.Second),
		observability.Error(errors.New("boom")),
	)

	fields := logs.All()[0].ContextMap()
	require.Equal(t, "/vectors", fields["path"])
	require.EqualValues(t, 200, fields["status"])
	require.Equal(t, true, fields["batch"])
	require.InDelta(t, 0.5, fields["ratio"], 1e-9)
	require.Equal(t, 2*time.Second, fields["duration"])
	require.Equal(t, "boom", fields["error"])
}
