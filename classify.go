package adt

import (
	"reflect"
	"regexp"
)

// category is the kind of a pattern, as seen by both the binding extractor and the
// matcher. Using one classification for both keeps the names a pattern declares
// in line with the names it captures.
type category int8

const (
	catBinding     category = iota // Binding, including rest bindings
	catConstructor                 // *Variant or reflect.Type of a struct
	catInstance                    // *Instance or *StructPattern
	catMapping                     // Map, Mapping or Go map
	catSequence                    // Sequence, Go slice or array
	catRegexp                      // *regexp.Regexp
	catLiteral                     // anything else
	catInvalid                     // patterns which must not be matched against
)

var categoryNames = [...]string{"binding", "constructor", "instance", "mapping",
	"sequence", "regexp", "literal", "invalid"}

func (c category) String() string {
	return categoryNames[c]
}

// classify routes a pattern to its category. The order of the checks is significant:
// bindings come before literals, constructors before instances, mappings before
// sequences.
func classify(pattern any) category {
	switch p := pattern.(type) {
	case nil:
		return catLiteral
	case Binding:
		return catBinding
	case *Variant:
		if p == nil {
			return catInvalid
		}
		return catConstructor
	case reflect.Type:
		if isStructType(p) {
			return catConstructor
		}
		return catInvalid
	case *SumType:
		return catInvalid
	case *Instance:
		if p == nil {
			return catInvalid
		}
		return catInstance
	case *StructPattern:
		return catInstance
	case Map, Mapping:
		return catMapping
	}
	kind := reflect.ValueOf(pattern).Kind()
	if kind == reflect.Map {
		return catMapping
	}
	switch pattern.(type) {
	case Sequence:
		return catSequence
	case *regexp.Regexp:
		return catRegexp
	}
	if kind == reflect.Slice || kind == reflect.Array {
		return catSequence
	}
	return catLiteral
}

// invalidUse explains why a pattern has been classified as invalid.
func invalidUse(pattern any) *InvalidPatternUse {
	switch p := pattern.(type) {
	case *SumType:
		return invalid(p, "cannot match against generic type %s; use one of its variants", p.name)
	case reflect.Type:
		return invalid(p, "cannot match against type %v; only struct types are constructors", p)
	}
	return invalid(pattern, "cannot match against %s", describe(pattern))
}
