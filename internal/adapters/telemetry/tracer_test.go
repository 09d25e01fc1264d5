package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/gant/internal/adapters/telemetry"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *trace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, tp
}

func TestOTelTracer_StartAndAttributes(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracerFrom(tp, "test")

	_, span := tracer.Start(context.Background(), "gant.step")
	span.SetAttribute("step", "compile")
	span.SetAttribute("exit_code", 2)
	span.SetAttribute("elapsed", 1.5)
	span.SetAttribute("tty", true)
	span.SetAttribute("targets", []string{"clean", "dist"})
	span.SetAttribute("other", struct{ A int }{A: 1})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "gant.step", spans[0].Name())

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "compile", attrs["step"].AsString())
	assert.Equal(t, int64(2), attrs["exit_code"].AsInt64())
	assert.InDelta(t, 1.5, attrs["elapsed"].AsFloat64(), 0.0001)
	assert.True(t, attrs["tty"].AsBool())
	assert.Equal(t, []string{"clean", "dist"}, attrs["targets"].AsStringSlice())
	assert.Equal(t, "{1}", attrs["other"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracerFrom(tp, "test")

	_, span := tracer.Start(context.Background(), "gant.step")
	span.RecordError(errors.New("boom"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	newCtx, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, newCtx)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()

	var m telemetry.NoOpMetrics
	m.ObserveStep("s", "success", 0)
	assert.NoError(t, m.WriteTextfile("/nonexistent/metrics.prom"))
}
