package adt

import (
	"fmt"

	"github.com/benbjohnson/immutable"
)

// Action is the code of a case. It is called with the Captures of the match if the
// pattern of the case binds at least one name, and with the matched value otherwise.
type Action[R any] func(arg any) (R, error)

// Const returns an action which ignores its argument and produces r.
func Const[R any](r R) Action[R] {
	return func(any) (R, error) {
		return r, nil
	}
}

// Captured adapts a function on captures to an action. If the pattern of the case
// binds no names, f receives empty captures.
func Captured[R any](f func(Captures) (R, error)) Action[R] {
	return func(arg any) (R, error) {
		caps, _ := arg.(Captures)
		return f(caps)
	}
}

// Case ties a pattern to an action. Name is used for diagnostics only.
type Case[R any] struct {
	Name    string
	Pattern any
	Action  Action[R]
}

// On is a shortcut for an unnamed case.
func On[R any](pattern any, action Action[R]) Case[R] {
	return Case[R]{Pattern: pattern, Action: action}
}

// --- Case tables -----------------------------------------------------------

// Cases is an ordered, immutable list of cases. Dispatching a value runs the action
// of the first case whose pattern matches; later cases are not tried.
type Cases[R any] struct {
	name  string
	cases *immutable.List // of *frozenCase[R]
}

// frozenCase is a case together with the names its pattern binds.
type frozenCase[R any] struct {
	Case[R]
	bindings []string
}

// NewCases creates a case table. The binding names of every pattern are extracted
// once and kept for the lifetime of the table. Patterns which are structurally
// invalid or bind a name more than once are rejected with an *InvalidPatternUse.
func NewCases[R any](name string, cases ...Case[R]) (*Cases[R], error) {
	b := immutable.NewListBuilder(immutable.NewList())
	for i, c := range cases {
		if c.Name == "" {
			c.Name = fmt.Sprintf("#%d", i)
		}
		if c.Action == nil {
			return nil, invalid(c.Pattern, "case %s of %s has no action", c.Name, name)
		}
		names, err := Bindings(c.Pattern)
		if err != nil {
			if ip, ok := err.(*InvalidPatternUse); ok {
				return nil, invalid(ip.Pattern, "case %s of %s: %s", c.Name, name, ip.Reason)
			}
			return nil, err
		}
		if dups := duplicates(names); len(dups) > 0 {
			return nil, invalid(c.Pattern, "case %s of %s binds %v more than once", c.Name, name, dups)
		}
		b.Append(&frozenCase[R]{Case: c, bindings: names})
	}
	table := &Cases[R]{name: name, cases: b.List()}
	tracer().Debugf("created case table %s with %d cases", name, table.Len())
	return table, nil
}

// MustCases is like NewCases, but panics if a case is invalid.
func MustCases[R any](name string, cases ...Case[R]) *Cases[R] {
	table, err := NewCases(name, cases...)
	if err != nil {
		panic(err)
	}
	return table
}

// Name returns the name of the case table.
func (t *Cases[R]) Name() string {
	return t.name
}

func (t *Cases[R]) String() string {
	return t.name
}

// Len returns the number of cases.
func (t *Cases[R]) Len() int {
	return t.cases.Len()
}

// Case returns the i-th case.
func (t *Cases[R]) Case(i int) Case[R] {
	return t.at(i).Case
}

// Bindings returns the names the i-th case passes to its action, in order.
func (t *Cases[R]) Bindings(i int) []string {
	return append([]string(nil), t.at(i).bindings...)
}

func (t *Cases[R]) at(i int) *frozenCase[R] {
	return t.cases.Get(i).(*frozenCase[R])
}

// Dispatch tries the cases in order and returns the result of the action of the
// first case matching value. If no case matches, Dispatch returns a *CasesExhausted.
// Match failures of single cases never surface; errors returned by the action do.
func (t *Cases[R]) Dispatch(value any) (R, error) {
	var zero R
	itr := t.cases.Iterator()
	for !itr.Done() {
		_, x := itr.Next()
		c := x.(*frozenCase[R])
		caps, err := Match(c.Pattern, value)
		if err != nil {
			if _, ok := err.(*MatchFailed); ok {
				continue
			}
			return zero, err
		}
		tracer().Debugf("%s: case %s matches %s", t.name, c.Name, describe(value))
		if len(c.bindings) == 0 {
			return c.Action(value)
		}
		return c.Action(caps.project(c.bindings))
	}
	tracer().Debugf("%s: no case for %s", t.name, describe(value))
	return zero, &CasesExhausted{Table: t.name, Value: value}
}
