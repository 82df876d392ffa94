package render

import (
	"io"
	"strings"

	"go.trai.ch/stagehand/internal/core/domain"
)

// renderDOT writes a Graphviz digraph with one node per step and one edge from each
// step to each of its immediate dependencies.
func renderDOT(w io.Writer, plan *domain.Plan) error {
	var b strings.Builder
	b.WriteString("digraph plan {\n")
	b.WriteString("  rankdir=LR;\n")

	for _, step := range plan.Walk() {
		name := dotQuote(step.String())
		b.WriteString("  " + name + ";\n")
		for _, dep := range plan.DependenciesOf(step) {
			b.WriteString("  " + name + " -> " + dotQuote(dep.String()) + ";\n")
		}
	}

	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// dotEscaper escapes the only two characters that are special inside a DOT quoted ID.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
