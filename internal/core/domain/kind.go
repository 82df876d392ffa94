package domain

// Kind enumerates the closed catalog of build actions.
type Kind uint8

// Action kinds. The order matches the order in which actions are listed to users.
const (
	KindRustc Kind = iota
	KindLibstd
	KindLibrustc
	KindLibstdLink
	KindLibrustcLink
	KindToolRustbook
	KindLlvm
	KindCompilerRt
	KindDoc
	KindDocBook
	KindDocNomicon
	KindDocStyle
	KindDocStandalone
	KindDocStd
	KindDocRustc
	KindCheck

	kindCount
)

var kindNames = [kindCount]string{
	KindRustc:         "rustc",
	KindLibstd:        "libstd",
	KindLibrustc:      "librustc",
	KindLibstdLink:    "libstd-link",
	KindLibrustcLink:  "librustc-link",
	KindToolRustbook:  "tool-rustbook",
	KindLlvm:          "llvm",
	KindCompilerRt:    "compiler-rt",
	KindDoc:           "doc",
	KindDocBook:       "doc-book",
	KindDocNomicon:    "doc-nomicon",
	KindDocStyle:      "doc-style",
	KindDocStandalone: "doc-standalone",
	KindDocStd:        "doc-std",
	KindDocRustc:      "doc-rustc",
	KindCheck:         "check",
}

// String returns the canonical hyphenated action name, e.g. "libstd-link".
func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Valid reports whether k belongs to the catalog.
func (k Kind) Valid() bool {
	return k < kindCount
}

// ParseKind resolves a canonical action name to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// AllKinds returns every catalog kind in listing order.
func AllKinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}
