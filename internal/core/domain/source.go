package domain

import (
	"strconv"
	"strings"
)

// Source is one entry of the action catalog together with the parameters that make it concrete.
// The set of implementations is closed: only the value types in this file are valid sources.
// Pointers to them satisfy the interface through their method sets but are rejected by
// IsValidSource, since a pointer and its value would not compare equal as map keys.
type Source interface {
	// Kind reports which catalog entry the source is.
	Kind() Kind
	// Params returns the variant payload in flattened form.
	Params() Params
	isSource()
}

// Params is a flattened, read-only view of a source payload.
// Fields a variant does not carry are left at their zero value and flagged absent.
type Params struct {
	Stage       uint32
	HasStage    bool
	Compiler    Compiler
	HasCompiler bool
	Host        Triple
}

// Rustc builds the stage-N compiler executable.
type Rustc struct{ Stage uint32 }

// Libstd builds the standard library using Compiler.
type Libstd struct {
	Stage    uint32
	Compiler Compiler
}

// Librustc builds the compiler support libraries using Compiler.
type Librustc struct {
	Stage    uint32
	Compiler Compiler
}

// LibstdLink links a built standard library into the output directory of Host.
type LibstdLink struct {
	Stage    uint32
	Compiler Compiler
	Host     Triple
}

// LibrustcLink links built compiler libraries into the output directory of Host.
type LibrustcLink struct {
	Stage    uint32
	Compiler Compiler
	Host     Triple
}

// ToolRustbook builds the documentation rendering tool.
type ToolRustbook struct{ Stage uint32 }

// Llvm builds or locates the native backend library.
type Llvm struct{}

// CompilerRt builds the native runtime support library.
type CompilerRt struct{}

// Doc is the umbrella over every documentation artifact.
type Doc struct{ Stage uint32 }

// DocBook renders the book.
type DocBook struct{ Stage uint32 }

// DocNomicon renders the nomicon.
type DocNomicon struct{ Stage uint32 }

// DocStyle renders the style guide.
type DocStyle struct{ Stage uint32 }

// DocStandalone renders the standalone documents.
type DocStandalone struct{ Stage uint32 }

// DocStd renders the standard library API docs.
type DocStd struct{ Stage uint32 }

// DocRustc renders the compiler API docs.
type DocRustc struct{ Stage uint32 }

// Check runs the test suite.
type Check struct {
	Stage    uint32
	Compiler Compiler
}

func (Rustc) Kind() Kind         { return KindRustc }
func (Libstd) Kind() Kind        { return KindLibstd }
func (Librustc) Kind() Kind      { return KindLibrustc }
func (LibstdLink) Kind() Kind    { return KindLibstdLink }
func (LibrustcLink) Kind() Kind  { return KindLibrustcLink }
func (ToolRustbook) Kind() Kind  { return KindToolRustbook }
func (Llvm) Kind() Kind          { return KindLlvm }
func (CompilerRt) Kind() Kind    { return KindCompilerRt }
func (Doc) Kind() Kind           { return KindDoc }
func (DocBook) Kind() Kind       { return KindDocBook }
func (DocNomicon) Kind() Kind    { return KindDocNomicon }
func (DocStyle) Kind() Kind      { return KindDocStyle }
func (DocStandalone) Kind() Kind { return KindDocStandalone }
func (DocStd) Kind() Kind        { return KindDocStd }
func (DocRustc) Kind() Kind      { return KindDocRustc }
func (Check) Kind() Kind         { return KindCheck }

func (s Rustc) Params() Params         { return stageParams(s.Stage) }
func (s Libstd) Params() Params        { return compilerParams(s.Stage, s.Compiler) }
func (s Librustc) Params() Params      { return compilerParams(s.Stage, s.Compiler) }
func (s LibstdLink) Params() Params    { return linkParams(s.Stage, s.Compiler, s.Host) }
func (s LibrustcLink) Params() Params  { return linkParams(s.Stage, s.Compiler, s.Host) }
func (s ToolRustbook) Params() Params  { return stageParams(s.Stage) }
func (Llvm) Params() Params            { return Params{} }
func (CompilerRt) Params() Params      { return Params{} }
func (s Doc) Params() Params           { return stageParams(s.Stage) }
func (s DocBook) Params() Params       { return stageParams(s.Stage) }
func (s DocNomicon) Params() Params    { return stageParams(s.Stage) }
func (s DocStyle) Params() Params      { return stageParams(s.Stage) }
func (s DocStandalone) Params() Params { return stageParams(s.Stage) }
func (s DocStd) Params() Params        { return stageParams(s.Stage) }
func (s DocRustc) Params() Params      { return stageParams(s.Stage) }
func (s Check) Params() Params         { return compilerParams(s.Stage, s.Compiler) }

func (Rustc) isSource()         {}
func (Libstd) isSource()        {}
func (Librustc) isSource()      {}
func (LibstdLink) isSource()    {}
func (LibrustcLink) isSource()  {}
func (ToolRustbook) isSource()  {}
func (Llvm) isSource()          {}
func (CompilerRt) isSource()    {}
func (Doc) isSource()           {}
func (DocBook) isSource()       {}
func (DocNomicon) isSource()    {}
func (DocStyle) isSource()      {}
func (DocStandalone) isSource() {}
func (DocStd) isSource()        {}
func (DocRustc) isSource()      {}
func (Check) isSource()         {}

// IsValidSource reports whether src is one of the value variants declared in this file.
func IsValidSource(src Source) bool {
	switch src.(type) {
	case Rustc, Libstd, Librustc, LibstdLink, LibrustcLink, ToolRustbook, Llvm, CompilerRt,
		Doc, DocBook, DocNomicon, DocStyle, DocStandalone, DocStd, DocRustc, Check:
		return true
	default:
		return false
	}
}

func stageParams(stage uint32) Params {
	return Params{Stage: stage, HasStage: true}
}

func compilerParams(stage uint32, c Compiler) Params {
	return Params{Stage: stage, HasStage: true, Compiler: c, HasCompiler: true}
}

func linkParams(stage uint32, c Compiler, host Triple) Params {
	p := compilerParams(stage, c)
	p.Host = host
	return p
}

// FormatSource renders a source as "<kind>(<payload>)", e.g. "libstd(stage=2, compiler=stage2/x86_64)".
// Sources without a payload render as the bare kind name.
func FormatSource(src Source) string {
	if src == nil {
		return "<nil>"
	}
	p := src.Params()
	var fields []string
	if p.HasStage {
		fields = append(fields, "stage="+strconv.FormatUint(uint64(p.Stage), 10))
	}
	if p.HasCompiler {
		fields = append(fields, "compiler="+p.Compiler.String())
	}
	if !p.Host.IsZero() {
		fields = append(fields, "host="+p.Host.String())
	}
	if len(fields) == 0 {
		return src.Kind().String()
	}
	return src.Kind().String() + "(" + strings.Join(fields, ", ") + ")"
}
