package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/jellybean/emporium/internal/infrastructure/telemetry"
)

// installSpanRecorder swaps the global tracer provider for one backed by a
// span recorder, restoring the original when the test finishes.
func installSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
	})

	return recorder
}

func TestStartSpan(t *testing.T) {
	recorder := installSpanRecorder(t)

	ctx, span := telemetry.StartSpan(context.Background(), "flavor.list")
	require.NotNil(t, span)
	assert.NotNil(t, ctx)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "flavor.list", spans[0].Name())
	assert.Equal(t, trace.SpanKindInternal, spans[0].SpanKind())
}

func TestStartSpan_WithOptions(t *testing.T) {
	recorder := installSpanRecorder(t)

	_, span := telemetry.StartSpan(context.Background(), "flavor.create",
		telemetry.WithAttribute(telemetry.SpanAttrFlavorName, "cherry"),
		telemetry.WithSpanKind(trace.SpanKindServer),
	)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
	assert.Contains(t, spans[0].Attributes(), attribute.String("flavor_name", "cherry"))
}

func TestStartServiceSpan(t *testing.T) {
	recorder := installSpanRecorder(t)

	_, span := telemetry.StartServiceSpan(context.Background(), "flavor", "delete")
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "flavor.delete", spans[0].Name())
}

func TestSetAttribute(t *testing.T) {
	recorder := installSpanRecorder(t)

	_, span := telemetry.StartSpan(context.Background(), "flavor.get")
	telemetry.SetAttribute(span, telemetry.SpanAttrFlavorID, uint64(42))
	telemetry.SetAttribute(span, "has_image", true)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Contains(t, spans[0].Attributes(), attribute.Int64("flavor_id", 42))
	assert.Contains(t, spans[0].Attributes(), attribute.Bool("has_image", true))
}

func TestSetAttribute_NilSpan(t *testing.T) {
	assert.NotPanics(t, func() {
		telemetry.SetAttribute(nil, "key", "value")
	})
}

func TestRecordError(t *testing.T) {
	recorder := installSpanRecorder(t)

	_, span := telemetry.StartSpan(context.Background(), "flavor.update")
	telemetry.RecordError(span, errors.New("storage unavailable"))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "storage unavailable", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
}

func TestRecordError_NilError(t *testing.T) {
	recorder := installSpanRecorder(t)

	_, span := telemetry.StartSpan(context.Background(), "flavor.update")
	telemetry.RecordError(span, nil)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Empty(t, spans[0].Events())
}

func TestAddEvent(t *testing.T) {
	recorder := installSpanRecorder(t)

	_, span := telemetry.StartSpan(context.Background(), "flavor.delete")
	telemetry.AddEvent(span, "image_deleted", telemetry.SpanAttrImageKey, "cherry.jpg")
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "image_deleted", spans[0].Events()[0].Name)
	assert.Contains(t, spans[0].Events()[0].Attributes, attribute.String("image_key", "cherry.jpg"))
}
