package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/stagehand/internal/core/domain"
	"go.trai.ch/stagehand/internal/ui/output"
	"go.trai.ch/stagehand/internal/ui/style"
)

// renderText writes a numbered list. Each line names the step and, when it has any,
// the 1-based numbers of the steps it needs.
func renderText(w io.Writer, plan *domain.Plan) error {
	out := output.New(w)
	var b strings.Builder

	header := "Plan: " + strconv.Itoa(plan.Len()) + " step"
	if plan.Len() != 1 {
		header += "s"
	}
	b.WriteString(out.String(header).Bold().Foreground(termenv.RGBColor(style.Hex(style.Accent))).String())
	b.WriteByte('\n')

	width := len(strconv.Itoa(plan.Len()))
	for i, step := range plan.Walk() {
		num := strconv.Itoa(i + 1)
		b.WriteString("  ")
		b.WriteString(strings.Repeat(" ", width-len(num)))
		b.WriteString(num)
		b.WriteString(". ")
		b.WriteString(step.String())

		if deps := depIndexes(plan, step); len(deps) > 0 {
			nums := make([]string, len(deps))
			for j, d := range deps {
				nums[j] = strconv.Itoa(d + 1)
			}
			needs := " (needs " + strings.Join(nums, ", ") + ")"
			b.WriteString(out.String(needs).Foreground(termenv.RGBColor(style.Hex(style.Muted))).String())
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
