package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	"go.trai.ch/stagehand/internal/adapters/logger"
	"go.trai.ch/stagehand/internal/core/ports"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.telemetry"

// DisableEnv turns tracing off entirely when set.
const DisableEnv = "STAGEHAND_NO_TRACE"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			if os.Getenv(DisableEnv) != "" {
				return NewNoOpTracer(), nil
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer := NewOTelTracer(InstrumentationName, NewLogProcessor(log))
			setupOTel(tracer)
			return tracer, nil
		},
	})
}

// setupOTel registers the tracer's provider as the global provider so that
// instrumented libraries report into the same processors.
func setupOTel(tracer *OTelTracer) {
	otel.SetTracerProvider(tracer.Provider())
}
