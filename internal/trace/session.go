// Package trace records an optional OpenTelemetry span for a quickpick
// session. Tracing is enabled only when OTEL_EXPORTER_OTLP_ENDPOINT is set;
// otherwise the Session is nil and every method is a no-op.
package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Session holds the root span covering one run of the menu, from program
// start to exit. Key actions are recorded as span events.
type Session struct {
	provider *sdktrace.TracerProvider
	span     oteltrace.Span
}

// Start creates a Session if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns (nil, nil) when tracing is not configured.
// OTEL_SERVICE_NAME overrides the default service name "quickpick".
func Start(ctx context.Context) (*Session, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "quickpick"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	tracer := provider.Tracer("quickpick/ui")
	_, span := tracer.Start(ctx, "quickpick.session")

	return &Session{
		provider: provider,
		span:     span,
	}, nil
}

// Move records a cursor move. direction is "next" or "prev".
func (s *Session) Move(direction string, index int, label string) {
	if s == nil {
		return
	}
	s.span.AddEvent("menu."+direction,
		oteltrace.WithAttributes(
			attribute.Int("quickpick.choice.index", index),
			attribute.String("quickpick.choice.label", label),
		))
}

// Confirm records a confirmed selection.
func (s *Session) Confirm(index int, label string) {
	if s == nil {
		return
	}
	s.span.AddEvent("menu.confirm",
		oteltrace.WithAttributes(
			attribute.Int("quickpick.choice.index", index),
			attribute.String("quickpick.choice.label", label),
		))
}

// End closes the session span and flushes the exporter.
func (s *Session) End(ctx context.Context) error {
	if s == nil {
		return nil
	}
	s.span.End()
	return s.provider.Shutdown(ctx)
}
