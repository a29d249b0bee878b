package otellib

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	httpMethodField = "http.method"
	httpPathField   = "http.path"
)

// HTTPMiddleware starts a span per request and puts the logger in the request context
func HTTPMiddleware(logger *zap.Logger, tracer trace.Tracer) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			ctx, span := tracer.Start(ctx, r.Method+" "+r.URL.Path, trace.WithSpanKind(trace.SpanKindServer))
			defer span.End()

			ctx = ToContext(ctx, logger.With(
				zap.String(httpMethodField, r.Method),
				zap.String(httpPathField, r.URL.Path),
			))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
