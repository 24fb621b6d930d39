package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// These tests touch the global tracer provider and run sequentially.

func TestInit_Disabled(t *testing.T) {
	before := otel.GetTracerProvider()

	shutdown := Init(Config{Enabled: false, Endpoint: "localhost:4318"})
	require.NotNil(t, shutdown)
	assert.NotPanics(t, shutdown)

	assert.Equal(t, before, otel.GetTracerProvider())
	_, isSDK := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.False(t, isSDK)
}

func TestInit_Enabled(t *testing.T) {
	// The exporter dials lazily, so no collector is needed until spans are flushed.
	shutdown := Init(Config{Enabled: true, Endpoint: "127.0.0.1:4318"})
	require.NotNil(t, shutdown)

	_, isSDK := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, isSDK)

	assert.NotPanics(t, shutdown)
}
