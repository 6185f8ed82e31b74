package utils

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TraceUpstreamCall traces one upstream API request.
func TraceUpstreamCall(ctx context.Context, endpoint string) (context.Context, trace.Span, func(err error)) {
	start := time.Now()
	spanCtx, span := otel.Tracer("app-fiscal").Start(ctx, "upstream."+endpoint,
		trace.WithAttributes(attribute.String("upstream.endpoint", endpoint)),
	)

	finish := func(err error) {
		span.SetAttributes(attribute.Int64("duration_ms", time.Since(start).Milliseconds()))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "success")
		}
		span.End()
	}

	return spanCtx, span, finish
}

// TraceBusinessLogic traces a synchronous controller operation.
func TraceBusinessLogic(ctx context.Context, operation string) (context.Context, trace.Span) {
	return otel.Tracer("app-fiscal").Start(ctx, operation)
}
