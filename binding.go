package adt

import (
	"unicode"
)

// Binding is a named placeholder which may appear anywhere a pattern is expected.
// It matches any value and captures it under its name. A binding with an empty
// name is a wildcard: it matches anything and captures nothing.
//
// A rest binding (see Rest) is legal only as the last element of a sequence pattern,
// where it captures all remaining elements of the value.
type Binding struct {
	name string
	rest bool
}

// Wildcard matches any value without capturing it.
var Wildcard = Binding{}

// Bind creates a binding. Names have to be Go identifiers or empty; Bind panics
// with an *InvalidPatternUse otherwise.
func Bind(name string) Binding {
	if name != "" && !isIdentifier(name) {
		panic(invalid(name, "binding name %q is not an identifier", name))
	}
	return Binding{name: name}
}

// Rest creates a rest binding, capturing the tail of a sequence.
func Rest(name string) Binding {
	b := Bind(name)
	b.rest = true
	return b
}

// Name returns the capture name of b.
func (b Binding) Name() string {
	return b.name
}

// IsWildcard is true for bindings which capture nothing.
func (b Binding) IsWildcard() bool {
	return b.name == ""
}

// IsRest is true for rest bindings.
func (b Binding) IsRest() bool {
	return b.rest
}

func (b Binding) String() string {
	name := b.name
	if name == "" {
		name = "_"
	}
	if b.rest {
		return "..." + name
	}
	return name
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
