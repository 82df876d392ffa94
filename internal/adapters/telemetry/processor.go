package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/stagehand/internal/core/ports"
)

// LogProcessor implements sdktrace.SpanProcessor by writing a summary of every ended
// span, and of each event recorded on it, to a Logger at debug level.
type LogProcessor struct {
	logger ports.Logger
}

// NewLogProcessor returns a LogProcessor writing to logger.
func NewLogProcessor(logger ports.Logger) *LogProcessor {
	return &LogProcessor{logger: logger}
}

// OnStart does nothing; spans are reported once they end.
func (p *LogProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span, its attributes and its events.
func (p *LogProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	if p.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Microsecond)
	line := fmt.Sprintf("span %s ended after %s", s.Name(), elapsed)
	if s.Status().Code == codes.Error {
		line = fmt.Sprintf("span %s failed after %s: %s", s.Name(), elapsed, s.Status().Description)
	}
	p.logger.Debug(line + formatAttributes(s.Attributes()))

	for _, event := range s.Events() {
		// Error events duplicate the status line above.
		if event.Name == "exception" {
			continue
		}
		p.logger.Debug(fmt.Sprintf("span %s event %s", s.Name(), event.Name) + formatAttributes(event.Attributes))
	}
}

// Shutdown does nothing.
func (p *LogProcessor) Shutdown(context.Context) error {
	return nil
}

// ForceFlush does nothing.
func (p *LogProcessor) ForceFlush(context.Context) error {
	return nil
}

func formatAttributes(attrs []attribute.KeyValue) string {
	var b strings.Builder
	for _, kv := range attrs {
		b.WriteString(" ")
		b.WriteString(string(kv.Key))
		b.WriteString("=")
		b.WriteString(kv.Value.Emit())
	}
	return b.String()
}
