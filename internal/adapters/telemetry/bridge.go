// Package telemetry wires OpenTelemetry tracing into the CLI.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/peerpin/peerpin/internal/core/ports"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// LoggerBridge implements sdktrace.SpanProcessor and reports completed spans
// through the logger at debug level. Installs and audits are short-lived CLI
// runs, so span timings go to the terminal instead of an exporter.
type LoggerBridge struct {
	logger ports.Logger
}

// NewLoggerBridge returns a new LoggerBridge.
func NewLoggerBridge(logger ports.Logger) *LoggerBridge {
	return &LoggerBridge{logger: logger}
}

// OnStart is called when a span starts. Nothing to report yet.
func (b *LoggerBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd reports the completed span's name, duration and status.
func (b *LoggerBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime())
	msg := fmt.Sprintf("%s took %s", s.Name(), elapsed.Round(time.Microsecond))
	if s.Status().Code == codes.Error {
		msg += " (failed)"
	}
	b.logger.Debug(msg)
}

// Shutdown implements sdktrace.SpanProcessor.
func (b *LoggerBridge) Shutdown(_ context.Context) error { return nil }

// ForceFlush implements sdktrace.SpanProcessor.
func (b *LoggerBridge) ForceFlush(_ context.Context) error { return nil }
