package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// newRecordingTracer installs a recording provider as the global one and
// returns its recorder plus a context carrying a root span
func newRecordingTracer(t *testing.T) (*tracetest.SpanRecorder, context.Context, trace.Span) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	ctx, span := provider.Tracer("test").Start(context.Background(), "root")
	return recorder, ctx, span
}

func TestTraceOperation(t *testing.T) {
	attributes := map[string]interface{}{
		"string_attr":   "value",
		"int_attr":      42,
		"int64_attr":    int64(123),
		"bool_attr":     true,
		"float64_attr":  3.14,
		"duration_attr": time.Second,
		"unknown_attr":  struct{}{},
	}

	spanCtx, span, cleanup := TraceOperation(context.Background(), "test_operation", attributes)
	require.NotNil(t, spanCtx)
	require.NotNil(t, span)
	require.NotNil(t, cleanup)

	cleanup()
}

func TestTraceOperation_NilAttributes(t *testing.T) {
	spanCtx, span, cleanup := TraceOperation(context.Background(), "test_operation", nil)
	assert.NotNil(t, spanCtx)
	assert.NotNil(t, span)
	cleanup()
}

func TestToAttribute(t *testing.T) {
	assert.Equal(t, attribute.String("k", "v"), toAttribute("k", "v"))
	assert.Equal(t, attribute.Int("k", 1), toAttribute("k", 1))
	assert.Equal(t, attribute.Int64("k", 2), toAttribute("k", int64(2)))
	assert.Equal(t, attribute.Bool("k", true), toAttribute("k", true))
	assert.Equal(t, attribute.Float64("k", 1.5), toAttribute("k", 1.5))
	assert.Equal(t, attribute.String("k", "2s"), toAttribute("k", 2*time.Second))
	assert.Equal(t, attribute.String("k", "unknown_type"), toAttribute("k", []int{1}))
}

func TestTraceEndpointStep_Recorded(t *testing.T) {
	recorder, ctx, root := newRecordingTracer(t)

	_, span := TraceInputValidation(ctx, "registration", "form")
	span.End()
	root.End()

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "endpoint.step.validate_input", ended[0].Name())
}

func TestStepHelpers(t *testing.T) {
	ctx := context.Background()

	helpers := []func() trace.Span{
		func() trace.Span { _, s := TraceInputParsing(ctx, "json"); return s },
		func() trace.Span { _, s := TraceBusinessLogic(ctx, "submit_registration"); return s },
		func() trace.Span { _, s := TraceExternalService(ctx, "smtp", "send"); return s },
		func() trace.Span { _, s := TraceResponseSerialization(ctx, "receipt"); return s },
	}

	for _, start := range helpers {
		span := start()
		require.NotNil(t, span)
		span.End()
	}
}

func TestTraceDatabaseAndStorageOperation(t *testing.T) {
	_, span, cleanup := TraceDatabaseOperation(context.Background(), "insert", "participants")
	assert.NotNil(t, span)
	cleanup()

	_, span, cleanup = TraceStorageOperation(context.Background(), "put", "contest-photos", "participants/1/a.jpg")
	assert.NotNil(t, span)
	cleanup()
}

func TestRecordErrorInSpan(t *testing.T) {
	recorder, ctx, root := newRecordingTracer(t)

	_, span := TraceBusinessLogic(ctx, "submit_registration")
	RecordErrorInSpan(span, errors.New("boom"), map[string]interface{}{"operation": "insert"})
	AddSpanAttribute(span, "attempt", 2)
	span.End()
	root.End()

	ended := recorder.Ended()
	require.NotEmpty(t, ended)
	assert.Equal(t, "Error", ended[0].Status().Code.String())
	assert.NotEmpty(t, ended[0].Events())
}
