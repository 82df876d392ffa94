// Package render writes resolved plans as text, JSON or Graphviz DOT.
package render

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stagehand/internal/core/domain"
	"go.trai.ch/zerr"
)

// Renderer implements ports.Renderer.
type Renderer struct{}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes plan to w in the given format.
func (r *Renderer) Render(w io.Writer, plan *domain.Plan, format domain.Format) error {
	var err error
	switch format {
	case domain.FormatText:
		err = renderText(w, plan)
	case domain.FormatJSON:
		err = renderJSON(w, plan)
	case domain.FormatDOT:
		err = renderDOT(w, plan)
	default:
		return zerr.With(domain.ErrUnknownFormat, "format", string(format))
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "format", string(format))
	}
	return nil
}

// Fingerprint returns a stable hash of the ordered steps of plan.
// Two plans have the same fingerprint exactly when they list the same steps in the same order.
func Fingerprint(plan *domain.Plan) string {
	hasher := xxhash.New()
	for _, step := range plan.Walk() {
		_, _ = hasher.WriteString(step.String())
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}

// depIndexes returns the plan positions of the immediate dependencies of step.
func depIndexes(plan *domain.Plan, step domain.Step) []int {
	deps := plan.DependenciesOf(step)
	res := make([]int, 0, len(deps))
	for _, dep := range deps {
		res = append(res, plan.Index(dep))
	}
	return res
}
