package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkTrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestFromContext_GlobalLogger(t *testing.T) {
	logger := FromContext(context.Background())

	assert.Equal(t, Global(), logger)
}

func TestFromContext_WithLogger(t *testing.T) {
	l := New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), l)

	assert.Equal(t, l, FromContext(ctx))
	assert.True(t, IsLevelEnabled(ctx, zapcore.DebugLevel))
}

func TestWithFields(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	ctx := ToContext(context.Background(), NewWithSink(zap.InfoLevel, buf))
	assert.Equal(t, ctx, WithFields(ctx), "no fields - same context")

	ctx = WithFields(ctx, "request", "Hello")
	InfoKV(ctx, "greeting", "name", "John")
	_ = FromContext(ctx).Sync()

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "greeting", decoded["message"])
	assert.Equal(t, "Hello", decoded["request"])
	assert.Equal(t, "John", decoded["name"])
	assert.Equal(t, "info", decoded["lvl"])
}

func TestLoggerWithSpanContext(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	aLogger := NewWithSink(zap.InfoLevel, buf)
	expo, err := stdouttrace.New(stdouttrace.WithWriter(io.Discard))
	require.NoError(t, err)
	provider := sdkTrace.NewTracerProvider(
		sdkTrace.WithSampler(sdkTrace.AlwaysSample()),
		sdkTrace.WithSyncer(expo))
	defer func() {
		_ = provider.Shutdown(context.Background())
	}()

	tracer := provider.Tracer("test")
	ctx, span := tracer.Start(context.Background(), "test")
	ctx = ToContext(ctx, aLogger)
	Infof(ctx, "check '%s' and '%s' are present here", traceID, spanID)
	span.End()
	_ = aLogger.Sync()

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	spanCtx := span.SpanContext()
	assert.Equal(t, spanCtx.TraceID().String(), decoded[traceID])
	assert.Equal(t, spanCtx.SpanID().String(), decoded[spanID])
}
