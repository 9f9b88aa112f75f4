package adt

import (
	"reflect"
	"regexp"
)

// Bindings returns the names a pattern will capture if it matches, in capture order.
// It does not match anything and has no side effects. The names are:
//
//   - for a binding: its name, unless it is a wildcard
//   - for a constructor: all of its field names
//   - for an instance: the names of the sub-patterns of its fields, in field order
//   - for a mapping: the names of the sub-patterns, in traversal order (see Map)
//   - for a sequence: the names of the elements, then the name of a trailing rest binding
//   - for a regular expression: the names of its named groups, in source order
//   - for a literal: nothing
//
// Structural misuse of the pattern is reported as an *InvalidPatternUse.
// Duplicate names are reported as often as they occur.
func Bindings(pattern any) ([]string, error) {
	var names []string
	if err := extract(pattern, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func extract(pattern any, names *[]string) error {
	switch classify(pattern) {
	case catBinding:
		b := pattern.(Binding)
		if b.rest {
			return invalid(b, "rest binding %s outside of a sequence pattern", b)
		}
		if !b.IsWildcard() {
			*names = append(*names, b.name)
		}
	case catConstructor:
		switch c := pattern.(type) {
		case *Variant:
			*names = append(*names, c.fields...)
		case reflect.Type:
			*names = append(*names, structFields(c)...)
		}
	case catInstance:
		for _, sub := range subpatterns(pattern) {
			if err := extract(sub, names); err != nil {
				return err
			}
		}
	case catMapping:
		for _, e := range entries(pattern) {
			if err := extract(e.Pattern, names); err != nil {
				return err
			}
		}
	case catSequence:
		seq, _ := asSequence(pattern)
		rest, err := restPosition(seq)
		if err != nil {
			return err
		}
		for i := 0; i < seq.Len(); i++ {
			if i == rest {
				if b := seq.At(i).(Binding); !b.IsWildcard() {
					*names = append(*names, b.name)
				}
				break
			}
			if err := extract(seq.At(i), names); err != nil {
				return err
			}
		}
	case catRegexp:
		for i, name := range pattern.(*regexp.Regexp).SubexpNames() {
			if i > 0 && name != "" {
				*names = append(*names, name)
			}
		}
	case catInvalid:
		return invalidUse(pattern)
	}
	return nil
}

// subpatterns returns the field patterns of an instance pattern.
func subpatterns(pattern any) []any {
	switch p := pattern.(type) {
	case *Instance:
		return p.values
	case *StructPattern:
		return p.patterns
	}
	return nil
}

// restPosition finds the rest binding of a sequence pattern. It returns -1 if there
// is none, and an error if the pattern holds more than one or it is not the last element.
func restPosition(seq Sequence) (int, error) {
	pos, count := -1, 0
	for i := 0; i < seq.Len(); i++ {
		if b, ok := seq.At(i).(Binding); ok && b.rest {
			pos = i
			count++
		}
	}
	if count > 1 {
		return -1, invalid(seq, "sequence pattern has %d rest bindings, at most one is allowed", count)
	}
	if count == 1 && pos != seq.Len()-1 {
		return -1, invalid(seq, "rest binding must be the last element of a sequence pattern")
	}
	return pos, nil
}

// duplicates returns the names occurring more than once in names.
func duplicates(names []string) []string {
	seen := make(map[string]int, len(names))
	var dups []string
	for _, name := range names {
		if seen[name]++; seen[name] == 2 {
			dups = append(dups, name)
		}
	}
	return dups
}
