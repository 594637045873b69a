package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/sahilbrid/nyaay-saathi/internal/platform/telemetry"
)

const tracerName = "github.com/sahilbrid/nyaay-saathi/internal/adapters/http"

// OpenTelemetry starts a server span per request, continuing any W3C trace
// context sent by the caller. Once chi has routed the request the span is
// renamed to "<METHOD> <route>" and tagged with the document category taken
// from the {id} URL parameter. Request count and duration are recorded when
// metrics is non-nil.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			ctx, span := otel.Tracer(tracerName).Start(ctx, r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			sr := record(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(sr, r)

			if route := routePattern(r); route != "" {
				span.SetName(r.Method + " " + route)
				span.SetAttributes(attribute.String("http.route", route))
			}
			category := chi.URLParam(r, "id")
			if category != "" {
				span.SetAttributes(telemetry.AttrCategory.String(category))
			}
			span.SetAttributes(telemetry.AttrHTTPStatus.Int(sr.status))
			if sr.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(sr.status))
			}

			if metrics == nil {
				return
			}
			result := "success"
			if sr.status >= http.StatusBadRequest {
				result = "error"
			}
			attrs := metric.WithAttributes(
				telemetry.AttrHTTPMethod.String(r.Method),
				telemetry.AttrHTTPStatus.Int(sr.status),
				telemetry.AttrResult.String(result),
				telemetry.AttrCategory.String(category),
			)
			metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
			metrics.ServerRequestTotal.Add(ctx, 1, attrs)
		})
	}
}
