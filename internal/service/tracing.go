package service

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("pokemonreview/internal/service")

// endSpan records err, if any, and closes the span. Not-found outcomes are
// expected results and keep the span status unset.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			span.SetStatus(codes.Error, err.Error())
		}
	}
	span.End()
}
