package ports

import (
	"io"

	"go.trai.ch/stagehand/internal/core/domain"
)

// Renderer writes a resolved plan in one of the supported output formats.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render writes plan to w. It returns ErrUnknownFormat for formats it does not support.
	Render(w io.Writer, plan *domain.Plan, format domain.Format) error
}
