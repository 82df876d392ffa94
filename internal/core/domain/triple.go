package domain

import "unique"

// Triple identifies a platform (architecture, vendor, OS) such as "x86_64-unknown-linux-gnu".
// It wraps a unique.Handle[string] so that the many steps addressing the same platform
// share one copy of the name and compare with a single pointer comparison.
type Triple struct {
	h unique.Handle[string]
}

// NewTriple interns s as a Triple.
// The empty string maps to the zero Triple so that both compare equal.
func NewTriple(s string) Triple {
	if s == "" {
		return Triple{}
	}
	return Triple{h: unique.Make(s)}
}

// NewTriples interns every string in ss, preserving order.
func NewTriples(ss []string) []Triple {
	if len(ss) == 0 {
		return nil
	}
	res := make([]Triple, len(ss))
	for i, s := range ss {
		res[i] = NewTriple(s)
	}
	return res
}

// String returns the triple name.
func (t Triple) String() string {
	var zero unique.Handle[string]
	if t.h == zero {
		return ""
	}
	return t.h.Value()
}

// IsZero reports whether t is the empty triple.
func (t Triple) IsZero() bool {
	var zero unique.Handle[string]
	return t.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (t Triple) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Triple) UnmarshalText(text []byte) error {
	*t = NewTriple(string(text))
	return nil
}
