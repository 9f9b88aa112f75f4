/*
Package either defines the sum type

	type Either = Left value | Right value

with the machinery of package adt. By convention Left holds failures and Right
holds successful results.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package either

import (
	"github.com/npillmayer/adt"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adt.either'.
func tracer() tracing.Trace {
	return tracing.Select("adt.either")
}

// Type is the sum type Either.
var Type = adt.NewSumType("Either")

var (
	// LeftVariant is the constructor of Left values.
	LeftVariant = Type.Variant("Left", adt.F("value", adt.Anything))
	// RightVariant is the constructor of Right values.
	RightVariant = Type.Variant("Right", adt.F("value", adt.Anything))
)

// Left wraps x as a Left value.
func Left(x any) *adt.Instance {
	return LeftVariant.Must(x)
}

// Right wraps x as a Right value.
func Right(x any) *adt.Instance {
	return RightVariant.Must(x)
}

// IsLeft is true if e is a Left value.
func IsLeft(e any) bool {
	return adt.Matches(LeftVariant, e)
}

// IsRight is true if e is a Right value.
func IsRight(e any) bool {
	return adt.Matches(RightVariant, e)
}

// side is the unpacked form of an Either.
type side struct {
	right bool
	value any
}

var sides = adt.MustCases("either",
	adt.Case[side]{Name: "left", Pattern: LeftVariant, Action: adt.Captured(func(c adt.Captures) (side, error) {
		return side{value: c.Value("value")}, nil
	})},
	adt.Case[side]{Name: "right", Pattern: RightVariant, Action: adt.Captured(func(c adt.Captures) (side, error) {
		return side{right: true, value: c.Value("value")}, nil
	})},
)

// Fold applies onLeft or onRight to the value held by e. It fails with
// adt.ErrCasesExhausted if e is not an Either.
func Fold[R any](e any, onLeft func(any) R, onRight func(any) R) (R, error) {
	s, err := sides.Dispatch(e)
	if err != nil {
		tracer().Errorf("cannot fold %v: %v", e, err)
		var zero R
		return zero, err
	}
	if s.right {
		return onRight(s.value), nil
	}
	return onLeft(s.value), nil
}

// MapRight applies f to the value of a Right and returns Left values unchanged.
func MapRight(f func(any) any, e *adt.Instance) (*adt.Instance, error) {
	return Fold(e, func(any) *adt.Instance { return e }, func(x any) *adt.Instance {
		return Right(f(x))
	})
}
