package domain

import "go.trai.ch/zerr"

// Step is a concrete node of the build graph: a catalog action addressed for a target triple.
//
// Step is a comparable value. Two steps are equal iff they hold the same source variant
// with identical payload and the same target, so a Step can be used directly as a map key.
// Steps are never mutated; every rebinding method returns a new Step.
type Step struct {
	Source Source
	Target Triple
}

// NewStep binds src to target.
func NewStep(src Source, target Triple) Step {
	return Step{Source: src, Target: target}
}

// At returns a payload-less llvm step addressed at target.
// It is the usual starting point for chaining constructors, e.g. At(t).Libstd(2, c).
func At(target Triple) Step {
	return Step{Source: Llvm{}, Target: target}
}

// Kind reports the catalog kind of the step's source.
// The zero Step has no source and reports an invalid Kind.
func (s Step) Kind() Kind {
	if s.Source == nil {
		return kindCount
	}
	return s.Source.Kind()
}

// Valid reports whether the step holds one of the catalog's value variants.
func (s Step) Valid() bool {
	return IsValidSource(s.Source)
}

// String renders the step as "<source> [<target>]".
func (s Step) String() string {
	return FormatSource(s.Source) + " [" + s.Target.String() + "]"
}

// Retarget returns a copy of s addressed for target.
func (s Step) Retarget(target Triple) Step {
	return Step{Source: s.Source, Target: target}
}

// CompilerAt returns the compiler that stage would produce, hosted where s is addressed.
func (s Step) CompilerAt(stage uint32) Compiler {
	return Compiler{Stage: stage, Host: s.Target}
}

// Rustc returns a rustc step addressed at s.Target.
func (s Step) Rustc(stage uint32) Step {
	return s.with(Rustc{Stage: stage})
}

// Libstd returns a libstd step addressed at s.Target.
func (s Step) Libstd(stage uint32, compiler Compiler) Step {
	return s.with(Libstd{Stage: stage, Compiler: compiler})
}

// Librustc returns a librustc step addressed at s.Target.
func (s Step) Librustc(stage uint32, compiler Compiler) Step {
	return s.with(Librustc{Stage: stage, Compiler: compiler})
}

// LibstdLink returns a libstd-link step addressed at s.Target.
func (s Step) LibstdLink(stage uint32, compiler Compiler, host Triple) Step {
	return s.with(LibstdLink{Stage: stage, Compiler: compiler, Host: host})
}

// LibrustcLink returns a librustc-link step addressed at s.Target.
func (s Step) LibrustcLink(stage uint32, compiler Compiler, host Triple) Step {
	return s.with(LibrustcLink{Stage: stage, Compiler: compiler, Host: host})
}

// ToolRustbook returns a tool-rustbook step addressed at s.Target.
func (s Step) ToolRustbook(stage uint32) Step {
	return s.with(ToolRustbook{Stage: stage})
}

// Llvm returns an llvm step addressed at s.Target.
func (s Step) Llvm() Step {
	return s.with(Llvm{})
}

// CompilerRt returns a compiler-rt step addressed at s.Target.
func (s Step) CompilerRt() Step {
	return s.with(CompilerRt{})
}

// Doc returns the documentation umbrella step addressed at s.Target.
func (s Step) Doc(stage uint32) Step {
	return s.with(Doc{Stage: stage})
}

// DocBook returns a doc-book step addressed at s.Target.
func (s Step) DocBook(stage uint32) Step {
	return s.with(DocBook{Stage: stage})
}

// DocNomicon returns a doc-nomicon step addressed at s.Target.
func (s Step) DocNomicon(stage uint32) Step {
	return s.with(DocNomicon{Stage: stage})
}

// DocStyle returns a doc-style step addressed at s.Target.
func (s Step) DocStyle(stage uint32) Step {
	return s.with(DocStyle{Stage: stage})
}

// DocStandalone returns a doc-standalone step addressed at s.Target.
func (s Step) DocStandalone(stage uint32) Step {
	return s.with(DocStandalone{Stage: stage})
}

// DocStd returns a doc-std step addressed at s.Target.
func (s Step) DocStd(stage uint32) Step {
	return s.with(DocStd{Stage: stage})
}

// DocRustc returns a doc-rustc step addressed at s.Target.
func (s Step) DocRustc(stage uint32) Step {
	return s.with(DocRustc{Stage: stage})
}

// Check returns a check step addressed at s.Target.
func (s Step) Check(stage uint32, compiler Compiler) Step {
	return s.with(Check{Stage: stage, Compiler: compiler})
}

func (s Step) with(src Source) Step {
	return Step{Source: src, Target: s.Target}
}

// ActionContext carries the parameters used to build a step from a bare action name.
// Each kind takes the subset of fields its payload needs.
type ActionContext struct {
	Stage    uint32
	Compiler Compiler
	Host     Triple
}

// StepFor builds the step of the given kind, addressed at s.Target, from ctx.
func (s Step) StepFor(kind Kind, ctx ActionContext) (Step, error) {
	switch kind {
	case KindRustc:
		return s.Rustc(ctx.Stage), nil
	case KindLibstd:
		return s.Libstd(ctx.Stage, ctx.Compiler), nil
	case KindLibrustc:
		return s.Librustc(ctx.Stage, ctx.Compiler), nil
	case KindLibstdLink:
		return s.LibstdLink(ctx.Stage, ctx.Compiler, ctx.Host), nil
	case KindLibrustcLink:
		return s.LibrustcLink(ctx.Stage, ctx.Compiler, ctx.Host), nil
	case KindToolRustbook:
		return s.ToolRustbook(ctx.Stage), nil
	case KindLlvm:
		return s.Llvm(), nil
	case KindCompilerRt:
		return s.CompilerRt(), nil
	case KindDoc:
		return s.Doc(ctx.Stage), nil
	case KindDocBook:
		return s.DocBook(ctx.Stage), nil
	case KindDocNomicon:
		return s.DocNomicon(ctx.Stage), nil
	case KindDocStyle:
		return s.DocStyle(ctx.Stage), nil
	case KindDocStandalone:
		return s.DocStandalone(ctx.Stage), nil
	case KindDocStd:
		return s.DocStd(ctx.Stage), nil
	case KindDocRustc:
		return s.DocRustc(ctx.Stage), nil
	case KindCheck:
		return s.Check(ctx.Stage, ctx.Compiler), nil
	default:
		return Step{}, zerr.With(ErrUnknownAction, "action", kind.String())
	}
}
