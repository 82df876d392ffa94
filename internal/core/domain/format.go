package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Format selects how a plan is rendered.
type Format string

const (
	// FormatText renders a numbered, human-readable list.
	FormatText Format = "text"
	// FormatJSON renders a machine-readable document.
	FormatJSON Format = "json"
	// FormatDOT renders a Graphviz digraph of the dependency edges.
	FormatDOT Format = "dot"
)

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatDOT:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", zerr.With(ErrUnknownFormat, "format", s)
	}
}
