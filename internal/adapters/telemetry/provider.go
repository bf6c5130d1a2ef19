package telemetry

import (
	"github.com/peerpin/peerpin/internal/core/ports"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies spans produced by this module.
const InstrumentationName = "github.com/peerpin/peerpin"

// NewTracer builds a TracerProvider whose only processor is the logger
// bridge, installs it globally and returns a tracer for the application.
func NewTracer(logger ports.Logger) trace.Tracer {
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewLoggerBridge(logger)),
	)
	otel.SetTracerProvider(provider)
	return provider.Tracer(InstrumentationName)
}
