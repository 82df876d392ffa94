package render

import (
	"encoding/json"
	"io"

	"go.trai.ch/stagehand/internal/core/domain"
)

// SchemaVersion is the version of the JSON plan document.
const SchemaVersion = "1"

// PlanDocument is the JSON form of a plan.
type PlanDocument struct {
	Version     string         `json:"version"`
	Fingerprint string         `json:"fingerprint"`
	Steps       []StepDocument `json:"steps"`
}

// StepDocument is the JSON form of one planned step. Deps hold the indexes of the
// step's immediate dependencies within Steps.
type StepDocument struct {
	Index    int     `json:"index"`
	Action   string  `json:"action"`
	Stage    *uint32 `json:"stage,omitempty"`
	Compiler string  `json:"compiler,omitempty"`
	Host     string  `json:"host,omitempty"`
	Target   string  `json:"target"`
	Deps     []int   `json:"deps"`
}

// NewPlanDocument converts plan into its JSON form.
func NewPlanDocument(plan *domain.Plan) PlanDocument {
	doc := PlanDocument{
		Version:     SchemaVersion,
		Fingerprint: Fingerprint(plan),
		Steps:       make([]StepDocument, 0, plan.Len()),
	}

	for i, step := range plan.Walk() {
		params := step.Source.Params()
		sd := StepDocument{
			Index:  i,
			Action: step.Kind().String(),
			Target: step.Target.String(),
			Deps:   depIndexes(plan, step),
		}
		if params.HasStage {
			stage := params.Stage
			sd.Stage = &stage
		}
		if params.HasCompiler {
			sd.Compiler = params.Compiler.String()
		}
		if !params.Host.IsZero() {
			sd.Host = params.Host.String()
		}
		doc.Steps = append(doc.Steps, sd)
	}

	return doc
}

func renderJSON(w io.Writer, plan *domain.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewPlanDocument(plan))
}
