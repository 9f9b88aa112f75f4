package adt_test

import (
	"errors"
	"reflect"
	"regexp"
	"testing"

	"github.com/npillmayer/adt"
)

func TestBindings(t *testing.T) {
	re := regexp.MustCompile(`(?P<year>\d{4})-(\d{2})-(?P<day>\d{2})`)
	for i, x := range []struct {
		pattern  any
		expected []string
	}{
		{a, []string{"a"}},
		{adt.Wildcard, nil},
		{42, nil},
		{"a", nil},
		{Cons, []string{"head", "tail"}},
		{Nil, nil},
		{Cons.Must(a, Cons.Must(b, c)), []string{"a", "b", "c"}},
		{map[string]any{"y": b, "x": a}, []string{"a", "b"}},
		{adt.Map{{Key: "y", Pattern: b}, {Key: "x", Pattern: a}}, []string{"b", "a"}},
		{[]any{a, []any{b, adt.Wildcard}, rest}, []string{"a", "b", "rest"}},
		{re, []string{"year", "day"}},
		{reflect.TypeOf(Num{}), []string{"N"}},
		{adt.Kw(reflect.TypeOf(BinOp{}), map[string]any{"Op": "+"}), []string{"Left", "Right"}},
	} {
		names, err := adt.Bindings(x.pattern)
		if err != nil {
			t.Errorf("%d: unexpected error %v", i, err)
			continue
		}
		if !reflect.DeepEqual(names, x.expected) {
			t.Errorf("%d: expected bindings %v for %v, are %v", i, x.expected, x.pattern, names)
		}
	}
}

func TestBindingsOfInvalidPatterns(t *testing.T) {
	for _, pattern := range []any{
		List,
		rest,
		[]any{rest, a},
		map[string]any{"k": rest},
		Cons.Must(adt.Rest("r"), Nil.Must()),
	} {
		if _, err := adt.Bindings(pattern); !errors.Is(err, adt.ErrInvalidPattern) {
			t.Errorf("expected %v to be invalid, error is %v", pattern, err)
		}
	}
}

// The names a pattern declares have to be the names it captures, in the same order.
func TestBindingsAgreeWithMatch(t *testing.T) {
	value := map[string]any{
		"list":  list(1, 2, 3),
		"pairs": []any{[]int{1, 2}, []int{3, 4}, []int{5, 6}},
		"text":  "2022-01-31",
	}
	pattern := map[string]any{
		"text":  regexp.MustCompile(`(?P<year>\d{4})-(?P<month>\d{2})`),
		"list":  []any{a, Cons},
		"pairs": []any{[]any{b, adt.Wildcard}, adt.Rest("others")},
	}
	names, err := adt.Bindings(pattern)
	if err != nil {
		t.Fatal(err)
	}
	caps, err := adt.Match(pattern, value)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, caps.Names()) {
		t.Errorf("expected declared names %v to equal captured names %v", names, caps.Names())
	}
	expected := []string{"a", "head", "tail", "b", "others", "year", "month"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("expected names %v, are %v", expected, names)
	}
}
