// Package rules encodes the bootstrap and cross-compilation dependency rules between build steps.
package rules

import (
	"go.trai.ch/stagehand/internal/core/domain"
	"go.trai.ch/zerr"
)

// RuleSet maps a step to its ordered, immediate prerequisites.
// It is pure: the result depends only on the step and the primary build triple.
type RuleSet struct {
	build domain.Triple
}

// New creates a RuleSet for the given primary build triple.
func New(build domain.Triple) *RuleSet {
	return &RuleSet{build: build}
}

// Build returns the primary build triple the rules were created for.
func (r *RuleSet) Build() domain.Triple {
	return r.build
}

// Dependencies returns the immediate prerequisites of step in the order they must be resolved.
//
// Stage numbers strictly decrease along rustc -> librustc -> libstd -> rustc, and stage 0
// rustc is the externally supplied seed compiler, so the rules never produce a cycle.
func (r *RuleSet) Dependencies(step domain.Step) ([]domain.Step, error) {
	switch src := step.Source.(type) {
	case domain.Rustc:
		if src.Stage == 0 {
			return nil, nil
		}
		prev := src.Stage - 1
		return []domain.Step{
			step.Librustc(prev, domain.NewCompiler(prev, r.build)),
		}, nil
	case domain.Librustc:
		return []domain.Step{
			step.Libstd(src.Stage, src.Compiler),
			step.Llvm(),
		}, nil
	case domain.Libstd:
		// Only the compiler matters here: the library is built by whatever compiler it names.
		return []domain.Step{
			step.CompilerRt(),
			step.Rustc(src.Compiler.Stage).Retarget(src.Compiler.Host),
		}, nil
	case domain.LibrustcLink:
		return []domain.Step{
			step.Librustc(src.Stage, src.Compiler),
			step.LibstdLink(src.Stage, src.Compiler, src.Host),
		}, nil
	case domain.LibstdLink:
		return []domain.Step{
			step.Libstd(src.Stage, src.Compiler),
			step.Retarget(src.Host).Rustc(src.Stage),
		}, nil
	case domain.CompilerRt:
		return []domain.Step{step.Llvm().Retarget(r.build)}, nil
	case domain.Llvm:
		return nil, nil
	case domain.DocStd:
		return []domain.Step{step.Libstd(src.Stage, step.CompilerAt(src.Stage))}, nil
	case domain.DocBook:
		return []domain.Step{step.ToolRustbook(src.Stage)}, nil
	case domain.DocNomicon:
		return []domain.Step{step.ToolRustbook(src.Stage)}, nil
	case domain.DocStyle:
		return []domain.Step{step.ToolRustbook(src.Stage)}, nil
	case domain.DocStandalone:
		return []domain.Step{step.Rustc(src.Stage)}, nil
	case domain.DocRustc:
		return []domain.Step{step.DocStd(src.Stage)}, nil
	case domain.Doc:
		return []domain.Step{
			step.DocBook(src.Stage),
			step.DocNomicon(src.Stage),
			step.DocStyle(src.Stage),
			step.DocStandalone(src.Stage),
			step.DocStd(src.Stage),
		}, nil
	case domain.ToolRustbook:
		return []domain.Step{step.Librustc(src.Stage, step.CompilerAt(src.Stage))}, nil
	case domain.Check:
		// TODO: confirm the prerequisites of check (likely rustc and libstd at src.Stage) with
		// the bootstrap owners; until then it plans as a leaf.
		return nil, nil
	default:
		return nil, zerr.With(domain.ErrUnhandledSource, "source", domain.FormatSource(step.Source))
	}
}
