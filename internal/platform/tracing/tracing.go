// Package tracing starts child spans for handlers and services. A span is
// only started under a valid parent, so requests the HTTP layer chose not
// to trace (probes, scrapes) produce no spans further down.
package tracing

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys shared by the API and service layers.
const (
	AttrPlayerID  = attribute.Key("galero.player_id")
	AttrEditionID = attribute.Key("galero.edition_id")
	AttrLimit     = attribute.Key("galero.limit")
)

var noop = trace.SpanFromContext(context.Background())

// Tracer names spans as prefix+op under one instrumentation scope.
type Tracer struct {
	tracer trace.Tracer
	prefix string
}

func New(scope, prefix string) Tracer {
	return Tracer{tracer: otel.Tracer(scope), prefix: prefix}
}

func (t Tracer) Start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if op == "" || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noop
	}
	return t.tracer.Start(ctx, t.prefix+op, trace.WithAttributes(attrs...))
}

// End records *errp on span, if any, and ends it. Caller cancellation is
// recorded as an event rather than an error status.
func End(span trace.Span, errp *error) {
	if errp != nil && *errp != nil {
		err := *errp
		if errors.Is(err, context.Canceled) {
			span.AddEvent("canceled")
		} else {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
	span.End()
}
