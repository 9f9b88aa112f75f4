package adt

import (
	"reflect"
	"regexp"

	"github.com/npillmayer/adt/result"
)

// --- Matching --------------------------------------------------------------

// Match attempts to match pattern against value. On success it returns the values
// captured by the bindings of the pattern. A mismatch is reported as a *MatchFailed,
// whose chain of causes leads to the innermost sub-pattern/sub-value pair which did
// not match. Structural misuse of the pattern results in an *InvalidPatternUse.
//
// Rules, depending on the category of the pattern:
//
//   - a binding matches anything and captures the value under its name
//   - a constructor (*Variant or struct type) matches instances of exactly this variant
//     (type) and captures every field under its field name
//   - an instance pattern matches instances of the same variant whose fields match
//     the field patterns
//   - a mapping pattern matches map-like values containing all of its keys, where
//     the values at these keys match; extra keys of the value are ignored
//   - a sequence pattern matches sequences of the same length with matching elements;
//     a trailing rest binding captures the remaining elements as a []any
//   - a regular expression matches strings (of any string type) or []byte from their
//     start and captures its named groups; groups not participating in the match
//     capture nil
//   - everything else is a literal, matching values equal to it
func Match(pattern, value any) (Captures, error) {
	var caps Captures
	if err := match(pattern, value, &caps); err != nil {
		return Captures{}, err
	}
	return caps, nil
}

// Try is Match with an explicit result type.
func Try(pattern, value any) result.Result[Captures] {
	caps, err := Match(pattern, value)
	if err != nil {
		return result.Err[Captures](err)
	}
	return result.Ok(caps)
}

// Matches reports whether pattern matches value. Invalid patterns match nothing.
func Matches(pattern, value any) bool {
	_, err := Match(pattern, value)
	return err == nil
}

func match(pattern, value any, caps *Captures) error {
	switch classify(pattern) {
	case catBinding:
		b := pattern.(Binding)
		if b.rest {
			return invalid(b, "rest binding %s outside of a sequence pattern", b)
		}
		caps.put(b.name, value)
		return nil
	case catConstructor:
		return matchConstructor(pattern, value, caps)
	case catInstance:
		return matchInstance(pattern, value, caps)
	case catMapping:
		return matchMapping(pattern, value, caps)
	case catSequence:
		return matchSequence(pattern, value, caps)
	case catRegexp:
		return matchRegexp(pattern.(*regexp.Regexp), value, caps)
	case catLiteral:
		if !equal(pattern, value) {
			return mismatch(pattern, value, "%s didn't match %s", describe(value), describe(pattern))
		}
		return nil
	}
	return invalidUse(pattern)
}

// recur matches a sub-pattern and chains a failure to the failure of the sub-match.
func recur(subpattern, subvalue any, caps *Captures) error {
	err := match(subpattern, subvalue, caps)
	if mf, ok := err.(*MatchFailed); ok {
		outer := mismatch(subpattern, subvalue, "%s didn't match %s", describe(subvalue), describe(subpattern))
		outer.Cause = mf
		return outer
	}
	return err
}

func matchConstructor(pattern, value any, caps *Captures) error {
	switch c := pattern.(type) {
	case *Variant:
		inst, ok := value.(*Instance)
		if !ok || inst == nil || inst.variant != c {
			return mismatch(c, value, "expected %s, got %s", c, describe(value))
		}
		for i, f := range c.fields {
			caps.put(f, inst.values[i])
		}
	case reflect.Type:
		fields := structFields(c)
		values, ok := structValues(c, value, fields)
		if !ok {
			return mismatch(c, value, "expected %v, got %T", c, value)
		}
		for i, f := range fields {
			caps.put(f, values[i])
		}
	}
	return nil
}

func matchInstance(pattern, value any, caps *Captures) error {
	var values []any
	switch p := pattern.(type) {
	case *Instance:
		inst, ok := value.(*Instance)
		if !ok || inst == nil || inst.variant != p.variant {
			return mismatch(p, value, "expected %s, got %s", p, describe(value))
		}
		values = inst.values
	case *StructPattern:
		var ok bool
		if values, ok = structValues(p.typ, value, p.fields); !ok {
			return mismatch(p, value, "expected %v, got %T", p.typ, value)
		}
	}
	for i, sub := range subpatterns(pattern) {
		if err := recur(sub, values[i], caps); err != nil {
			return err
		}
	}
	return nil
}

func matchMapping(pattern, value any, caps *Captures) error {
	m, ok := asMapping(value)
	if !ok {
		return mismatch(pattern, value, "can't match mapping pattern with %s", describe(value))
	}
	for _, e := range entries(pattern) {
		v, found := m.Lookup(e.Key)
		if !found {
			return mismatch(pattern, value, "pattern has key %s which is not in value", describe(e.Key))
		}
		if err := recur(e.Pattern, v, caps); err != nil {
			return err
		}
	}
	return nil
}

func matchSequence(pattern, value any, caps *Captures) error {
	pseq, _ := asSequence(pattern)
	rest, err := restPosition(pseq)
	if err != nil {
		return err
	}
	vseq, ok := asSequence(value)
	if !ok {
		return mismatch(pattern, value, "can't match sequence with %s", describe(value))
	}
	if (rest < 0 && vseq.Len() != pseq.Len()) || (rest >= 0 && vseq.Len() < rest) {
		return mismatch(pattern, value, "pattern and value had different lengths (%d and %d)",
			pseq.Len(), vseq.Len())
	}
	for i := 0; i < pseq.Len(); i++ {
		if i == rest {
			tail := make([]any, vseq.Len()-i)
			for j := range tail {
				tail[j] = vseq.At(i + j)
			}
			caps.put(pseq.At(i).(Binding).name, tail)
			break
		}
		if err := recur(pseq.At(i), vseq.At(i), caps); err != nil {
			return err
		}
	}
	return nil
}

func matchRegexp(re *regexp.Regexp, value any, caps *Captures) error {
	var s string
	switch x := value.(type) {
	case string:
		s = x
	case []byte:
		s = string(x)
	default:
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.String {
			return mismatch(re, value, "can't match regex %q with %s", re.String(), describe(value))
		}
		s = rv.String()
	}
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil || loc[0] != 0 {
		return mismatch(re, value, "regex %q didn't match %q", re.String(), s)
	}
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		if loc[2*i] < 0 {
			caps.put(name, nil)
		} else {
			caps.put(name, s[loc[2*i]:loc[2*i+1]])
		}
	}
	return nil
}

// equal is structural equality for literal patterns. Values with a method
// Equal(any) bool decide for themselves.
func equal(a, b any) bool {
	if e, ok := a.(interface{ Equal(any) bool }); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
