package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/grindlemire/graft"
	"go.trai.ch/stagehand/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

const (
	// FormatEnv selects JSON log output when set to "json".
	FormatEnv = "STAGEHAND_LOG_FORMAT"
	// LevelEnv enables debug output when set to "debug".
	LevelEnv = "STAGEHAND_LOG_LEVEL"
)

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return NewFromEnv(), nil
		},
	})
}

// NewFromEnv creates a Logger whose mode follows FormatEnv and whose level follows LevelEnv.
func NewFromEnv() ports.Logger {
	lg := New().(*Logger)
	if strings.EqualFold(os.Getenv(FormatEnv), "json") {
		lg.SetJSON(true)
	}
	if strings.EqualFold(os.Getenv(LevelEnv), "debug") {
		lg.SetLevel(slog.LevelDebug)
	}
	return lg
}
