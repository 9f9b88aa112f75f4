package either_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/npillmayer/adt"
	"github.com/npillmayer/adt/either"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEitherMatchConstructor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt.either")
	defer teardown()
	//
	one := either.Left(1)
	t.Logf("one = %v", one)
	if !either.IsLeft(one) || either.IsRight(one) {
		t.Errorf("expected %v to be a Left value, isn't", one)
	}
	two := either.Right("2")
	if !either.IsRight(two) {
		t.Errorf("expected %v to be a Right value, isn't", two)
	}
}

func TestEitherFold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt.either")
	defer teardown()
	//
	count := func(e any) int {
		n, err := either.Fold(e,
			func(x any) int { return x.(int) },
			func(x any) int { return Atoi(x.(string)) })
		if err != nil {
			t.Fatal(err)
		}
		return n
	}
	if n := count(either.Left(1)); n != 1 {
		t.Errorf("expected count(Left 1) to be 1, is %d", n)
	}
	if n := count(either.Right("2")); n != 2 {
		t.Errorf("expected count(Right \"2\") to be 2, is %d", n)
	}
}

func TestEitherFoldNonEither(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt.either")
	defer teardown()
	//
	_, err := either.Fold(42, func(any) int { return 0 }, func(any) int { return 1 })
	if !errors.Is(err, adt.ErrCasesExhausted) {
		t.Errorf("expected folding 42 to exhaust cases, error is %v", err)
	}
}

func TestEitherMapRight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt.either")
	defer teardown()
	//
	inc := func(x any) any { return x.(int) + 1 }
	r, err := either.MapRight(inc, either.Right(41))
	if err != nil || !r.Equal(either.Right(42)) {
		t.Errorf("expected Right 42, is %v (%v)", r, err)
	}
	l := either.Left("boom")
	if r, _ := either.MapRight(inc, l); r != l {
		t.Errorf("expected Left to pass unchanged, is %v", r)
	}
}

func TestEitherVariants(t *testing.T) {
	vs := either.Type.Variants()
	if len(vs) != 2 || vs[0] != either.LeftVariant || vs[1] != either.RightVariant {
		t.Errorf("expected Either to have variants [Left Right], has %v", vs)
	}
}

// ---------------------------------------------------------------------------

func Atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}
