package adt_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/adt"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// length is a recursive function over Lists, written as a case table.
var length *adt.Cases[int]

func init() {
	length = adt.MustCases("length",
		adt.Case[int]{Name: "empty", Pattern: Nil, Action: adt.Const(0)},
		adt.Case[int]{Name: "cons", Pattern: Cons.Must(adt.Wildcard, adt.Bind("tail")),
			Action: adt.Captured(func(c adt.Captures) (int, error) {
				n, err := length.Dispatch(c.Value("tail"))
				return n + 1, err
			})},
	)
}

func TestDispatchRecursive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt")
	defer teardown()
	//
	n, err := length.Dispatch(list(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestFirstMatchWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt")
	defer teardown()
	//
	table := adt.MustCases("first",
		adt.On(Cons, adt.Const("act1")),
		adt.On(Cons.Must(1, adt.Wildcard), adt.Const("act2")),
	)
	for i := 0; i < 3; i++ {
		r, err := table.Dispatch(list(1))
		require.NoError(t, err)
		assert.Equal(t, "act1", r)
	}
}

func TestCasesExhausted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt")
	defer teardown()
	//
	table := adt.MustCases("numbers", adt.On(1, adt.Const("one")), adt.On(2, adt.Const("two")))
	_, err := table.Dispatch(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, adt.ErrCasesExhausted))
	assert.False(t, errors.Is(err, adt.ErrMatchFailed), "match failures must not leak out of dispatch")
	var ce *adt.CasesExhausted
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "numbers", ce.Table)
	assert.Equal(t, 3, ce.Value)
	t.Logf("error = %v", err)
}

func TestActionArgument(t *testing.T) {
	var got []any
	record := adt.Action[bool](func(arg any) (bool, error) {
		got = append(got, arg)
		return true, nil
	})
	table := adt.MustCases("args",
		adt.On(Nil, record),
		adt.On([]any{1, adt.Wildcard}, record),
		adt.On([]any{adt.Bind("x"), adt.Bind("y")}, record),
	)
	for _, v := range []any{Nil.Must(), []int{1, 5}, []int{2, 3}} {
		_, err := table.Dispatch(v)
		require.NoError(t, err)
	}
	require.Len(t, got, 3)
	assert.Equal(t, Nil.Must(), got[0], "pattern without bindings receives the value")
	assert.Equal(t, []int{1, 5}, got[1], "pattern with wildcards only receives the value")
	caps, ok := got[2].(adt.Captures)
	require.True(t, ok, "pattern with bindings receives captures")
	assert.Equal(t, []string{"x", "y"}, caps.Names())
	assert.Equal(t, map[string]any{"x": 2, "y": 3}, caps.Map())
}

func TestCaseBindingsAreFrozen(t *testing.T) {
	table := adt.MustCases("shape",
		adt.On(map[string]any{"b": b, "a": a}, adt.Const(0)),
		adt.On(Cons, adt.Const(1)),
	)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"a", "b"}, table.Bindings(0))
	assert.Equal(t, []string{"head", "tail"}, table.Bindings(1))
	assert.Equal(t, "#1", table.Case(1).Name)
}

func TestInvalidCases(t *testing.T) {
	_, err := adt.NewCases("dups", adt.On([]any{a, a}, adt.Const(0)))
	assert.True(t, errors.Is(err, adt.ErrInvalidPattern), "duplicate names are rejected")
	_, err = adt.NewCases("rest", adt.On([]any{rest, a}, adt.Const(0)))
	assert.True(t, errors.Is(err, adt.ErrInvalidPattern), "misplaced rest binding is rejected")
	_, err = adt.NewCases("generic", adt.On(List, adt.Const(0)))
	assert.True(t, errors.Is(err, adt.ErrInvalidPattern), "generic sum type is rejected")
	_, err = adt.NewCases[int]("noaction", adt.Case[int]{Pattern: 1})
	assert.True(t, errors.Is(err, adt.ErrInvalidPattern), "missing action is rejected")
	assert.Panics(t, func() {
		adt.MustCases("dups", adt.On([]any{a, a}, adt.Const(0)))
	})
}

func TestActionErrorsSurface(t *testing.T) {
	boom := errors.New("boom")
	table := adt.MustCases("failing",
		adt.On[int](a, func(any) (int, error) { return 0, boom }),
		adt.On(adt.Wildcard, adt.Const(1)),
	)
	_, err := table.Dispatch("x")
	assert.Equal(t, boom, err, "errors of actions are returned as is, no further case is tried")
}

func TestDispatchMixedShapes(t *testing.T) {
	describe := adt.MustCases("describe",
		adt.On(Nil, adt.Const("empty list")),
		adt.On(Cons, adt.Captured(func(c adt.Captures) (string, error) {
			return fmt.Sprintf("list starting with %v", c.Value("head")), nil
		})),
		adt.On(map[string]any{"name": adt.Bind("name")}, adt.Captured(func(c adt.Captures) (string, error) {
			return fmt.Sprintf("record named %v", c.Value("name")), nil
		})),
		adt.On([]any{adt.Bind("first"), adt.Rest("more")}, adt.Captured(func(c adt.Captures) (string, error) {
			more, _ := adt.Capture[[]any](c, "more")
			return fmt.Sprintf("sequence of %d", len(more)+1), nil
		})),
		adt.On(adt.Wildcard, adt.Const("something")),
	)
	for value, expected := range map[any]string{
		Nil.Must(): "empty list",
		list(4):    "list starting with 4",
		"a string": "something",
	} {
		r, err := describe.Dispatch(value)
		require.NoError(t, err)
		assert.Equal(t, expected, r)
	}
	r, _ := describe.Dispatch(map[string]string{"name": "Alice", "age": "30"})
	assert.Equal(t, "record named Alice", r)
	r, _ = describe.Dispatch([]float64{1, 2, 3})
	assert.Equal(t, "sequence of 3", r)
}
