package logger_test

import (
	"context"
	"landregistry/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment, "staging"} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() { logger.Setup(env) })
			require.NotNil(t, logger.Get(context.Background()))
		})
	}

	logger.Setup(logger.DevelopmentEnvironment)
	require.True(t, logger.IsDebug(context.Background()))

	logger.Setup(logger.ProductionEnvironment)
	require.False(t, logger.IsDebug(context.Background()))
}

func TestSetLevel(t *testing.T) {
	logger.Setup(logger.ProductionEnvironment)
	t.Cleanup(func() { logger.Setup(logger.DevelopmentEnvironment) })

	ctx := logger.WithFields(context.Background(), zap.String("request_id", "r-1"))
	require.False(t, logger.IsDebug(ctx))

	require.NoError(t, logger.SetLevel("debug"))
	require.True(t, logger.IsDebug(ctx), "derived loggers follow the shared level")

	require.Error(t, logger.SetLevel("chatty"))
}

func TestGet_PrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	custom := zap.NewExample()
	require.Same(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
	require.NotSame(t, custom, logger.Get(ctx))
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("request_id", "abc"), zap.String("user_id", "u-1"))

	logger.Info(ctx, "request approved", zap.String("request_number", "REQ-2025-000001"))
	logger.Debug(ctx, "details")
	logger.Warn(ctx, "slow mail relay")
	logger.Error(ctx, "mail rejected")

	entries := observed.All()
	require.Len(t, entries, 4)
	fields := entries[0].ContextMap()
	require.Equal(t, "abc", fields["request_id"])
	require.Equal(t, "u-1", fields["user_id"])
	require.Equal(t, "REQ-2025-000001", fields["request_number"])
	require.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestSlog_WritesThroughZapCore(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Slog(ctx).Info("job completed", "kind", "SendMail")

	entries := observed.FilterMessage("job completed").All()
	require.Len(t, entries, 1)
	require.Equal(t, "SendMail", entries[0].ContextMap()["kind"])
}
