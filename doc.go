/*
Package adt implements algebraic data types and structural pattern matching.

Clients define closed sum types made of named variants. Each variant has an ordered
list of fields, and every field carries a Constraint which values have to satisfy:

	List := adt.NewSumType("List")
	Nil  := List.Variant("Nil")
	Cons := List.Variant("Cons",
	    adt.F("head", adt.Anything),
	    adt.F("tail", adt.Require(List)))

	l := Cons.Must(1, Cons.Must(2, Nil.Must()))

Instances double as patterns: any field may hold a Binding instead of a value. Matching
a pattern against a value yields the captured values by binding name:

	caps, err := adt.Match(Cons.Must(adt.Bind("a"), adt.Bind("rest")), l)
	// caps.Value("a") == 1

Besides variants, patterns may be variant constructors (capturing every field by
its field name), maps, slices (with an optional trailing Rest binding), compiled
regular expressions and literals. Foreign tree types are matched structurally,
either as struct types or through the Mapping and Sequence interfaces.

Cases ties patterns to actions. Dispatching a value tries the patterns in the order
of declaration and calls the action of the first one that matches.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package adt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adt'.
func tracer() tracing.Trace {
	return tracing.Select("adt")
}
