package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecordingTracer(t *testing.T) (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return tp, rec
}

func TestStart_SkipsWithoutParent(t *testing.T) {
	tr := New("test", "usecase.")
	ctx, span := tr.Start(context.Background(), "ChampionService.Overview")

	assert.False(t, span.SpanContext().IsValid())
	assert.Equal(t, context.Background(), ctx)
}

func TestStart_ChildOfParent(t *testing.T) {
	tp, rec := newRecordingTracer(t)
	tr := Tracer{tracer: tp.Tracer("test"), prefix: "usecase."}

	ctx, parent := tp.Tracer("test").Start(context.Background(), "GET /v1/champions/overview")
	_, child := tr.Start(ctx, "ChampionService.Overview", AttrLimit.Int(10))
	child.End()
	parent.End()

	spans := rec.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "usecase.ChampionService.Overview", spans[0].Name())
	assert.Equal(t, parent.SpanContext().SpanID(), spans[0].Parent().SpanID())
	assert.Contains(t, spans[0].Attributes(), AttrLimit.Int(10))
}

func TestEnd_RecordsFailureButNotCancellation(t *testing.T) {
	tp, rec := newRecordingTracer(t)
	tracer := tp.Tracer("test")

	_, failed := tracer.Start(context.Background(), "failed")
	boom := errors.New("tied final")
	End(failed, &boom)

	_, canceled := tracer.Start(context.Background(), "canceled")
	cerr := context.Canceled
	End(canceled, &cerr)

	_, ok := tracer.Start(context.Background(), "ok")
	End(ok, nil)

	spans := rec.Ended()
	require.Len(t, spans, 3)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, codes.Unset, spans[1].Status().Code)
	assert.Len(t, spans[1].Events(), 1)
	assert.Equal(t, codes.Unset, spans[2].Status().Code)
}
